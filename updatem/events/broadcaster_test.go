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
	"testing"

	"github.com/eclipse-kanto/suota-update-manager/api/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(events <-chan *types.UpdateEvent) []*types.UpdateEvent {
	var result []*types.UpdateEvent
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return result
			}
			result = append(result, event)
		default:
			return result
		}
	}
}

func TestSubscribeEnqueuesListenFirst(t *testing.T) {
	stream := NewBroadcaster(8)
	sub := stream.Subscribe()
	stream.Publish(types.NewProgressEvent(10))

	received := drain(sub.Events())
	require.Len(t, received, 2)
	assert.Equal(t, types.EventListen, received[0].Kind)
	assert.Equal(t, 10.0, received[1].Percent)
}

func TestPublishWithoutSubscriber(t *testing.T) {
	stream := NewBroadcaster(8)
	assert.NotPanics(t, func() {
		stream.Publish(types.NewProgressEvent(10))
		stream.Publish(nil)
	})

	sub := stream.Subscribe()
	received := drain(sub.Events())
	require.Len(t, received, 1)
	assert.Equal(t, types.EventListen, received[0].Kind)
}

func TestSubscribeReplacesPrevious(t *testing.T) {
	stream := NewBroadcaster(8)
	first := stream.Subscribe()
	second := stream.Subscribe()
	stream.Publish(types.NewProgressEvent(55))

	firstEvents := []*types.UpdateEvent{}
	for event := range first.Events() {
		firstEvents = append(firstEvents, event)
	}
	require.Len(t, firstEvents, 1)
	assert.Equal(t, types.EventListen, firstEvents[0].Kind)

	secondEvents := drain(second.Events())
	require.Len(t, secondEvents, 2)
	assert.Equal(t, types.EventListen, secondEvents[0].Kind)
	assert.Equal(t, 55.0, secondEvents[1].Percent)

	// unsubscribing a retired subscription keeps the current one
	first.Unsubscribe()
	stream.Publish(types.NewProgressEvent(60))
	secondEvents = drain(second.Events())
	require.Len(t, secondEvents, 1)
	assert.Equal(t, 60.0, secondEvents[0].Percent)
}

func TestPublishNeverBlocks(t *testing.T) {
	stream := NewBroadcaster(2)
	sub := stream.Subscribe()
	for i := 1; i <= 10; i++ {
		stream.Publish(types.NewProgressEvent(float64(i * 10)))
	}
	received := drain(sub.Events())
	require.Len(t, received, 2)
	assert.Equal(t, types.EventListen, received[0].Kind)
	assert.Equal(t, 10.0, received[1].Percent)
}

func TestUnsubscribe(t *testing.T) {
	stream := NewBroadcaster(0)
	sub := stream.Subscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()

	stream.Publish(types.NewProgressEvent(10))
	received := []*types.UpdateEvent{}
	for event := range sub.Events() {
		received = append(received, event)
	}
	require.Len(t, received, 1)
	assert.Equal(t, types.EventListen, received[0].Kind)
}
