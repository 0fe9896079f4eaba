// Copyright (c) 2023 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Eclipse Public License 2.0 which is available at
// https://www.eclipse.org/legal/epl-2.0, or the Apache License, Version 2.0
// which is available at https://www.apache.org/licenses/LICENSE-2.0.
//
// SPDX-License-Identifier: EPL-2.0 OR Apache-2.0

package stream

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	// EventsPath is the path of the websocket event stream.
	EventsPath = "/events"

	writeTimeout = 10 * time.Second
)

// Server exposes the event stream over websocket, the latest connected client is the only subscriber.
type Server struct {
	address  string
	stream   api.EventStream
	upgrader websocket.Upgrader

	lock          sync.Mutex
	httpServer    *http.Server
	listener      net.Listener
	subscriptions map[api.EventSubscription]struct{}
}

// NewServer creates a websocket event stream server for the given address.
func NewServer(address string, stream api.EventStream) *Server {
	return &Server{
		address: address,
		stream:  stream,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		subscriptions: map[api.EventSubscription]struct{}{},
	}
}

// Handler returns the HTTP handler serving the event stream.
func (server *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(EventsPath, server.handleEvents)
	return mux
}

// Start starts listening for websocket clients.
func (server *Server) Start() error {
	server.lock.Lock()
	defer server.lock.Unlock()

	if server.httpServer != nil {
		return errors.New("event stream server already started")
	}
	listener, err := net.Listen("tcp", server.address)
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %s", server.address)
	}
	server.listener = listener
	server.httpServer = &http.Server{Handler: server.Handler(), ReadHeaderTimeout: writeTimeout}
	go func(httpServer *http.Server) {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.ErrorErr(err, "event stream server stopped")
		}
	}(server.httpServer)
	logger.Info("event stream available at ws://%s%s", listener.Addr(), EventsPath)
	return nil
}

// Addr returns the address the server listens on, nil if not started.
func (server *Server) Addr() net.Addr {
	server.lock.Lock()
	defer server.lock.Unlock()

	if server.listener == nil {
		return nil
	}
	return server.listener.Addr()
}

// Stop closes the listener and the connected clients and waits for the active requests within the given context.
func (server *Server) Stop(ctx context.Context) error {
	server.lock.Lock()
	httpServer := server.httpServer
	server.httpServer = nil
	server.listener = nil
	subscriptions := server.subscriptions
	server.subscriptions = map[api.EventSubscription]struct{}{}
	server.lock.Unlock()

	// hijacked websocket connections are not closed by Shutdown
	for subscription := range subscriptions {
		subscription.Unsubscribe()
	}

	if httpServer == nil {
		return nil
	}
	return httpServer.Shutdown(ctx)
}

func (server *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := server.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnErr(err, "event stream upgrade of %s failed", r.RemoteAddr)
		return
	}
	logger.Debug("event stream client %s connected", r.RemoteAddr)

	subscription := server.stream.Subscribe()
	server.track(subscription, true)
	defer server.track(subscription, false)

	go readPump(conn, subscription)
	writePump(conn, subscription)
	logger.Debug("event stream client %s disconnected", r.RemoteAddr)
}

func (server *Server) track(subscription api.EventSubscription, active bool) {
	server.lock.Lock()
	defer server.lock.Unlock()

	if active {
		server.subscriptions[subscription] = struct{}{}
	} else {
		delete(server.subscriptions, subscription)
	}
}

// readPump discards incoming messages and detaches the subscription once the client goes away
func readPump(conn *websocket.Conn, subscription api.EventSubscription) {
	defer subscription.Unsubscribe()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump writes stream records until the subscription is retired or a write fails
func writePump(conn *websocket.Conn, subscription api.EventSubscription) {
	defer conn.Close()
	for event := range subscription.Events() {
		record := types.ToStreamRecord(event)
		if record == nil {
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(record); err != nil {
			logger.DebugErr(err, "cannot write stream record")
			subscription.Unsubscribe()
			return
		}
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "event stream closed"))
}
