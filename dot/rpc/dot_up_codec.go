// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// DotUpCodec for overridding default jsonCodec
type DotUpCodec struct{}

// NewDotUpCodec for creating instance of DocUpCodec
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{}
}

// NewRequest is overridden to inject our own codec
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	outerCR := &DotUpCodecRequest{}
	jsonCR := json2.NewCodec().NewRequest(r)
	outerCR.CodecRequest = jsonCR.(*json2.CodecRequest)
	return outerCR
}

// DotUpCodecRequest decodes and encodes a single request. UpCodecRequest
// implements gorilla/rpc.CodecRequest interface primarily by embedding
// the CodecRequest from gorilla/rpc/json. By selectively adding
// CodecRequest methods to UpCodecRequest, we can modify that behaviour
// while maintaining all the other remaining CodecRequest methods.
type DotUpCodecRequest struct {
	*json2.CodecRequest
}

// Method returns the decoded method as a string of the form "Service.Method"
// from the JSON-RPC form "service_method".
func (c *DotUpCodecRequest) Method() (string, error) {
	m, err := c.CodecRequest.Method()
	if err != nil || len(m) <= 1 {
		return m, err
	}

	service, method, found := strings.Cut(m, "_")
	if !found {
		return m, nil
	}

	r, n := utf8.DecodeRuneInString(method)
	if !unicode.IsLower(r) {
		return m, nil
	}
	return service + "." + string(unicode.ToUpper(r)) + method[n:], nil
}
