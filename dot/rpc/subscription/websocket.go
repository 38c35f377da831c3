// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// RPC methods
const (
	offencesSubscribeOffences   = "offences_subscribeOffences"
	offencesUnsubscribeOffences = "offences_unsubscribeOffences"
	offencesOffence             = "offences_offence"
)

var (
	errUnknownParamSubscribeID = errors.New("invalid params format type")
	errCannotParseID           = errors.New("could not parse param id")
	errCannotFindListener      = errors.New("could not find listener")
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc/subscription"))

// WSConn struct to hold WebSocket Connection references
type WSConn struct {
	Wsconn        *websocket.Conn
	Broadcaster   *OffenceBroadcaster
	mu            sync.Mutex
	Subscriptions map[uint32]*OffenceListener
}

// NewWSConn creates a websocket connection handler
// subscribing to the broadcaster.
func NewWSConn(conn *websocket.Conn, broadcaster *OffenceBroadcaster) *WSConn {
	return &WSConn{
		Wsconn:        conn,
		Broadcaster:   broadcaster,
		Subscriptions: make(map[uint32]*OffenceListener),
	}
}

// HandleConn handles messages received on the websocket connection
// until it fails to read, then stops all its listeners.
func (c *WSConn) HandleConn() {
	defer c.stopListeners()

	for {
		_, mbytes, err := c.Wsconn.ReadMessage()
		if err != nil {
			logger.Debugf("websocket failed to read message: %s", err)
			return
		}

		logger.Tracef("websocket message received: %s", string(mbytes))

		msg := new(websocketMessage)
		err = json.Unmarshal(mbytes, msg)
		if err != nil || msg.Method == "" {
			c.safeSend(newErrorResponseJSON(InvalidRequestCode, InvalidRequestMessage, 0))
			continue
		}

		switch msg.Method {
		case offencesSubscribeOffences:
			listener := c.newOffenceListener()
			c.safeSend(newSubscriptionResponseJSON(listener.subID, msg.ID))
			listener.Listen()
		case offencesUnsubscribeOffences:
			err = c.unsubscribe(msg.Params)
			if err != nil {
				logger.Debugf("failed to unsubscribe: %s", err)
				if errors.Is(err, errUnknownParamSubscribeID) {
					c.safeSend(newErrorResponseJSON(InvalidRequestCode, InvalidRequestMessage, msg.ID))
					continue
				}
				c.safeSend(newBooleanResponseJSON(false, msg.ID))
				continue
			}
			c.safeSend(newBooleanResponseJSON(true, msg.ID))
		default:
			c.safeSend(newErrorResponseJSON(MethodNotFoundCode, MethodNotFoundMessage, msg.ID))
		}
	}
}

func (c *WSConn) newOffenceListener() *OffenceListener {
	listener := &OffenceListener{
		wsconn:  c,
		subID:   c.generateID(),
		channel: c.Broadcaster.Subscribe(),
		cancel:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	c.Subscriptions[listener.subID] = listener
	return listener
}

// generateID returns a random subscription id unused by the connection.
func (c *WSConn) generateID() uint32 {
	var uid uuid.UUID
	for {
		uid = uuid.New()
		if _, ok := c.Subscriptions[uid.ID()]; !ok {
			break
		}
	}
	return uid.ID()
}

func (c *WSConn) unsubscribe(params interface{}) error {
	subscribeID, err := parseSubscribeID(params)
	if err != nil {
		return err
	}

	listener, ok := c.Subscriptions[subscribeID]
	if !ok {
		return fmt.Errorf("subscriber id %d: %w", subscribeID, errCannotFindListener)
	}
	delete(c.Subscriptions, subscribeID)
	listener.Stop()
	return nil
}

func (c *WSConn) stopListeners() {
	for id, listener := range c.Subscriptions {
		delete(c.Subscriptions, id)
		listener.Stop()
	}
}

func (c *WSConn) safeSend(msg interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.Wsconn.WriteJSON(msg)
	if err != nil {
		logger.Debugf("failed to write websocket message: %s", err)
	}
}

func parseSubscribeID(p interface{}) (uint32, error) {
	params, ok := p.([]interface{})
	if !ok || len(params) == 0 {
		return 0, errUnknownParamSubscribeID
	}

	switch v := params[0].(type) {
	case float64:
		return uint32(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errCannotParseID, err)
		}
		return uint32(id), nil
	default:
		return 0, errUnknownParamSubscribeID
	}
}

// OffenceListener forwards offence events to a websocket subscription.
type OffenceListener struct {
	wsconn  *WSConn
	subID   uint32
	channel chan offences.OffenceEvent
	cancel  chan struct{}
	done    chan struct{}
}

// Listen starts forwarding events in a goroutine.
func (l *OffenceListener) Listen() {
	go func() {
		defer close(l.done)
		for {
			select {
			case <-l.cancel:
				return
			case event, ok := <-l.channel:
				if !ok {
					return
				}
				l.wsconn.safeSend(newSubscriptionResponse(offencesOffence, l.subID, newOffenceJSON(event)))
			}
		}
	}()
}

// Stop stops forwarding events and unsubscribes from the broadcaster.
func (l *OffenceListener) Stop() {
	close(l.cancel)
	<-l.done
	l.wsconn.Broadcaster.Unsubscribe(l.channel)
}

// SetLogLevel sets the level of the subscription logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
