// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/ChainSafe/gossamer-offences/dot/rpc/modules"
	"github.com/ChainSafe/gossamer-offences/dot/rpc/subscription"
	"github.com/ChainSafe/gossamer-offences/internal/httpserver"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/websocket"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// ErrServerDoneBeforeReady is returned when the server stops
// before signalling it is ready.
var ErrServerDoneBeforeReady = errors.New("rpc server terminated before being ready")

// HTTPServer gateway for RPC server
type HTTPServer struct {
	rpcServer    *rpc.Server // Actual RPC call handler
	server       *httpserver.Server
	serverConfig *HTTPServerConfig
	upgrader     websocket.Upgrader
	wsConnsMu    sync.Mutex
	wsConns      map[*websocket.Conn]struct{}
	cancel       context.CancelFunc
	done         chan error
}

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	LogLvl          log.Level
	Address         string
	EquivocationAPI modules.EquivocationAPI
	HeaderAPI       modules.HeaderAPI
	StakingAPI      modules.StakingAPI
	// Broadcaster, when set, serves offence subscriptions on /ws.
	Broadcaster *subscription.OffenceBroadcaster
	// External allows requests from hosts other than localhost.
	External bool
}

// NewHTTPServer creates a new http server and registers the offences rpc module
func NewHTTPServer(cfg *HTTPServerConfig) (*HTTPServer, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	h := &HTTPServer{
		rpcServer:    rpc.NewServer(),
		serverConfig: cfg,
		wsConns:      make(map[*websocket.Conn]struct{}),
		done:         make(chan error),
	}

	module := modules.NewOffencesModule(cfg.EquivocationAPI, cfg.HeaderAPI, cfg.StakingAPI)
	err := h.rpcServer.RegisterService(module, "offences")
	if err != nil {
		return nil, fmt.Errorf("registering offences module: %w", err)
	}

	// DotUpCodec maps JSON-RPC methods of the form module_method
	// to gorilla's Module.Method form.
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json;charset=UTF-8")
	h.rpcServer.RegisterValidateRequestFunc(rpcValidator(cfg, validator.New()))

	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return cfg.External || isLocal(r.RemoteAddr)
		},
	}

	r := mux.NewRouter()
	r.Handle("/", h.rpcServer).Methods(http.MethodPost)
	if cfg.Broadcaster != nil {
		r.HandleFunc("/ws", h.serveWS)
	}

	h.server = httpserver.New("rpc", cfg.Address, r, logger)
	return h, nil
}

// Start starts the rpc http server and returns once it is listening.
func (h *HTTPServer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	ready := make(chan struct{})

	go h.server.Run(ctx, ready, h.done)

	select {
	case <-ready:
		logger.Infof("rpc server listening at http://%s", h.server.GetAddress())
		return nil
	case err := <-h.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop stops the server and closes the websocket connections
func (h *HTTPServer) Stop() error {
	h.cancel()
	err := <-h.done

	h.wsConnsMu.Lock()
	defer h.wsConnsMu.Unlock()
	for ws := range h.wsConns {
		closeErr := ws.Close()
		if closeErr != nil {
			logger.Debugf("closing websocket connection: %s", closeErr)
		}
		delete(h.wsConns, ws)
	}

	return err
}

// Address returns the address the server listens on.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}

func (h *HTTPServer) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("websocket upgrade failed: %s", err)
		return
	}

	h.wsConnsMu.Lock()
	h.wsConns[ws] = struct{}{}
	h.wsConnsMu.Unlock()

	wsc := subscription.NewWSConn(ws, h.serverConfig.Broadcaster)
	go func() {
		wsc.HandleConn()

		h.wsConnsMu.Lock()
		defer h.wsConnsMu.Unlock()
		if _, ok := h.wsConns[ws]; !ok {
			return
		}
		delete(h.wsConns, ws)
		err := ws.Close()
		if err != nil {
			logger.Debugf("closing websocket connection: %s", err)
		}
	}()
}
