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

package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConnectionConfig(t *testing.T) {
	t.Run("test_defaults", func(t *testing.T) {
		internal := newInternalConnectionConfig(NewDefaultConfig())
		assert.Equal(t, &internalConnectionConfig{
			Broker:             "tcp://localhost:1883",
			KeepAlive:          20 * time.Second,
			DisconnectTimeout:  250 * time.Millisecond,
			ConnectTimeout:     30 * time.Second,
			AcknowledgeTimeout: 15 * time.Second,
			SubscribeTimeout:   15 * time.Second,
			UnsubscribeTimeout: 5 * time.Second,
		}, internal)
	})

	t.Run("test_invalid_and_empty_durations", func(t *testing.T) {
		config := NewDefaultConfig()
		config.KeepAlive = "often"
		config.ConnectTimeout = ""
		config.SubscribeTimeout = "-1s"
		config.AcknowledgeTimeout = "500ms"
		internal := newInternalConnectionConfig(config)
		assert.Equal(t, 20*time.Second, internal.KeepAlive)
		assert.Equal(t, 30*time.Second, internal.ConnectTimeout)
		assert.Equal(t, 15*time.Second, internal.SubscribeTimeout)
		assert.Equal(t, 500*time.Millisecond, internal.AcknowledgeTimeout)
	})
}
