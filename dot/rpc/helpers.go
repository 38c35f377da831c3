// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/rpc/v2"
	"github.com/jpillora/ipfilter"
)

// LocalhostFilter creates a ipfilter object for localhost
func LocalhostFilter() *ipfilter.IPFilter {
	return ipfilter.New(ipfilter.Options{
		BlockByDefault: true,
		AllowedIPs:     []string{"127.0.0.1", "::1"},
	})
}

// LocalRequestOnly HTTP handler to restrict to only local connections
func LocalRequestOnly(r *rpc.RequestInfo, _ interface{}) error {
	if !isLocal(r.Request.RemoteAddr) {
		return errors.New("external HTTP request refused")
	}
	return nil
}

func isLocal(remoteAddr string) bool {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		logger.Debugf("unable to parse IP of %s: %s", remoteAddr, err)
		return false
	}
	return LocalhostFilter().Allowed(ip)
}

func rpcValidator(cfg *HTTPServerConfig, validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		err := validate.Struct(v)
		if err != nil {
			return err
		}

		if !cfg.External {
			return LocalRequestOnly(r, v)
		}

		return nil
	}
}
