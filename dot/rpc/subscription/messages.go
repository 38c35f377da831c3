// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
)

// JSON-RPC error codes
const (
	InvalidRequestCode    = -32600
	InvalidRequestMessage = "Invalid request"
	MethodNotFoundCode    = -32601
	MethodNotFoundMessage = "Method not found"
)

type websocketMessage struct {
	ID     float64     `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

// BaseResponseJSON for base json response
type BaseResponseJSON struct {
	Jsonrpc string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  SubscriptionParams `json:"params"`
}

// SubscriptionParams for json param response
type SubscriptionParams struct {
	Result         interface{} `json:"result"`
	SubscriptionID uint32      `json:"subscription"`
}

func newSubscriptionResponse(method string, subID uint32, result interface{}) BaseResponseJSON {
	return BaseResponseJSON{
		Jsonrpc: "2.0",
		Method:  method,
		Params: SubscriptionParams{
			Result:         result,
			SubscriptionID: subID,
		},
	}
}

// ResponseJSON for json subscription responses
type ResponseJSON struct {
	Jsonrpc string  `json:"jsonrpc"`
	Result  uint32  `json:"result"`
	ID      float64 `json:"id"`
}

func newSubscriptionResponseJSON(subID uint32, reqID float64) ResponseJSON {
	return ResponseJSON{
		Jsonrpc: "2.0",
		Result:  subID,
		ID:      reqID,
	}
}

// BooleanResponse for responses that return boolean values
type BooleanResponse struct {
	JSONRPC string  `json:"jsonrpc"`
	Result  bool    `json:"result"`
	ID      float64 `json:"id"`
}

func newBooleanResponseJSON(value bool, reqID float64) BooleanResponse {
	return BooleanResponse{
		JSONRPC: "2.0",
		Result:  value,
		ID:      reqID,
	}
}

// ErrorResponseJSON json for error responses
type ErrorResponseJSON struct {
	Jsonrpc string            `json:"jsonrpc"`
	Error   *ErrorMessageJSON `json:"error"`
	ID      float64           `json:"id"`
}

// ErrorMessageJSON json for error messages
type ErrorMessageJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newErrorResponseJSON(code int, message string, reqID float64) ErrorResponseJSON {
	return ErrorResponseJSON{
		Jsonrpc: "2.0",
		Error: &ErrorMessageJSON{
			Code:    code,
			Message: message,
		},
		ID: reqID,
	}
}

// OffenceJSON is the notification sent for an applied offence report
type OffenceJSON struct {
	Kind      string   `json:"kind"`
	TimeSlot  uint64   `json:"timeSlot"`
	Session   uint32   `json:"session"`
	Offenders []string `json:"offenders"`
	Reslashed []string `json:"reslashed,omitempty"`
	Fraction  string   `json:"fraction"`
}

func newOffenceJSON(event offences.OffenceEvent) OffenceJSON {
	return OffenceJSON{
		Kind:      event.Kind.String(),
		TimeSlot:  event.TimeSlot,
		Session:   uint32(event.SessionIndex),
		Offenders: authorities(event.Offenders),
		Reslashed: authorities(event.Reslashed),
		Fraction:  event.Fraction.String(),
	}
}

func authorities(offenders []types.IdentificationTuple) []string {
	if offenders == nil {
		return nil
	}
	ids := make([]string, len(offenders))
	for i, offender := range offenders {
		ids[i] = offender.Authority.String()
	}
	return ids
}
