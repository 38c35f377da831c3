// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
)

// OffenceEvent records an applied offence report.
type OffenceEvent struct {
	Kind         types.Kind
	TimeSlot     uint64
	SessionIndex types.SessionIndex
	// Offenders are the offenders newly reported.
	Offenders []types.IdentificationTuple
	// Reslashed are the offenders reported earlier for the same kind and time slot,
	// slashed again with the fraction of the larger concurrent set.
	Reslashed []types.IdentificationTuple
	// Fraction is the slash fraction applied to every concurrent offender.
	Fraction types.Perbill
}

func (e OffenceEvent) String() string {
	return fmt.Sprintf("kind=%s time slot=%d session=%d offenders=%d reslashed=%d fraction=%s",
		e.Kind, e.TimeSlot, e.SessionIndex, len(e.Offenders), len(e.Reslashed), e.Fraction)
}

// EventChannel is an EventSink sending events on a buffered channel.
// Events are dropped when the channel is full.
type EventChannel struct {
	ch chan OffenceEvent
}

// NewEventChannel returns an event channel with the given buffer size.
func NewEventChannel(size int) *EventChannel {
	return &EventChannel{ch: make(chan OffenceEvent, size)}
}

// HandleOffence sends the event on the channel if it has room.
func (c *EventChannel) HandleOffence(event OffenceEvent) {
	select {
	case c.ch <- event:
	default:
		logger.Warnf("dropping offence event: %s", event)
	}
}

// Events returns the receiving end of the channel.
func (c *EventChannel) Events() <-chan OffenceEvent {
	return c.ch
}

// MultiSink is an EventSink handing every event to each of its sinks in order.
type MultiSink []EventSink

// HandleOffence hands the event to every sink.
func (m MultiSink) HandleOffence(event OffenceEvent) {
	for _, sink := range m {
		sink.HandleOffence(event)
	}
}
