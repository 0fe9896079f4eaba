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

package events

import (
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

// DefaultBufferSize is the capacity of a subscription used when no positive size is configured.
const DefaultBufferSize = 64

type broadcaster struct {
	lock       sync.Mutex
	current    *subscription
	bufferSize int
}

type subscription struct {
	owner  *broadcaster
	events chan *types.UpdateEvent
	closed bool
}

// NewBroadcaster creates a single-subscriber event stream, events published without a subscriber are dropped.
func NewBroadcaster(bufferSize int) api.EventStream {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &broadcaster{bufferSize: bufferSize}
}

// Subscribe replaces the current subscriber, the new subscription receives a listen event first.
func (broadcaster *broadcaster) Subscribe() api.EventSubscription {
	broadcaster.lock.Lock()
	defer broadcaster.lock.Unlock()

	if broadcaster.current != nil {
		logger.Debug("replacing the current event stream subscriber")
		broadcaster.current.retire()
	}
	sub := &subscription{
		owner:  broadcaster,
		events: make(chan *types.UpdateEvent, broadcaster.bufferSize),
	}
	sub.events <- types.NewListenEvent()
	broadcaster.current = sub
	return sub
}

// Publish delivers the event to the current subscriber without blocking.
func (broadcaster *broadcaster) Publish(event *types.UpdateEvent) {
	if event == nil {
		return
	}
	broadcaster.lock.Lock()
	defer broadcaster.lock.Unlock()

	if broadcaster.current == nil {
		logger.Trace("no event stream subscriber, dropping %s", event)
		return
	}
	select {
	case broadcaster.current.events <- event:
	default:
		logger.Warn("event stream subscriber is not keeping up, dropping %s", event)
	}
}

func (sub *subscription) Events() <-chan *types.UpdateEvent {
	return sub.events
}

// Unsubscribe detaches the subscription, it has no effect if the subscription was already replaced.
func (sub *subscription) Unsubscribe() {
	sub.owner.lock.Lock()
	defer sub.owner.lock.Unlock()

	if sub.owner.current == sub {
		sub.owner.current = nil
	}
	sub.retire()
}

// must be called with the owner lock held
func (sub *subscription) retire() {
	if !sub.closed {
		sub.closed = true
		close(sub.events)
	}
}
