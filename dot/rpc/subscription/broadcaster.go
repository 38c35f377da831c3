// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"sync"

	"github.com/ChainSafe/gossamer-offences/lib/offences"
)

const listenerBufferSize = 16

// OffenceBroadcaster is an offences.EventSink fanning out every offence
// event to the channels subscribed.
type OffenceBroadcaster struct {
	mu        sync.RWMutex
	listeners map[chan offences.OffenceEvent]struct{}
}

var _ offences.EventSink = (*OffenceBroadcaster)(nil)

// NewOffenceBroadcaster creates a broadcaster without subscribers.
func NewOffenceBroadcaster() *OffenceBroadcaster {
	return &OffenceBroadcaster{
		listeners: make(map[chan offences.OffenceEvent]struct{}),
	}
}

// Subscribe returns a new buffered channel receiving offence events.
func (b *OffenceBroadcaster) Subscribe() chan offences.OffenceEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan offences.OffenceEvent, listenerBufferSize)
	b.listeners[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes the channel.
func (b *OffenceBroadcaster) Unsubscribe(ch chan offences.OffenceEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[ch]; !ok {
		return
	}
	delete(b.listeners, ch)
	close(ch)
}

// HandleOffence sends the event to every subscribed channel,
// dropping it for the channels which are full.
func (b *OffenceBroadcaster) HandleOffence(event offences.OffenceEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.listeners {
		select {
		case ch <- event:
		default:
			logger.Warnf("offence listener is full, dropping event: %s", event)
		}
	}
}

// Len returns the number of subscribed channels.
func (b *OffenceBroadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
