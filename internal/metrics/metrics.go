// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/ChainSafe/gossamer-offences/internal/httpserver"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// ErrServerDoneBeforeReady is returned when the server stops
// before signalling it is ready.
var ErrServerDoneBeforeReady = errors.New("metrics server terminated before being ready")

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer creates a metrics server serving the metrics
// gathered by gatherer on the /metrics path.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
		done:   make(chan error),
	}
}

// Start starts the metrics server and returns once it is listening.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics available at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop stops the metrics server.
func (s *Server) Stop() (err error) {
	s.cancel()
	return <-s.done
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// SetLogLevel sets the level of the metrics server logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
