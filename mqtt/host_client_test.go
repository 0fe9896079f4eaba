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
	"errors"
	"testing"
	"time"

	mqttmocks "github.com/eclipse-kanto/suota-update-manager/mqtt/mock"
	"github.com/eclipse-kanto/suota-update-manager/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const testDomain = "test-domain"

var testConnectionConfig = &internalConnectionConfig{
	ConnectTimeout:     5 * time.Second,
	AcknowledgeTimeout: 2 * time.Second,
	SubscribeTimeout:   3 * time.Second,
	UnsubscribeTimeout: 4 * time.Second,
	DisconnectTimeout:  250 * time.Millisecond,
}

func newTestHostClient(pahoClient *mqttmocks.MockClient) *hostClient {
	return &hostClient{
		mqttClient: &mqttClient{
			mqttPrefix: domainAsTopic(testDomain),
			mqttConfig: testConnectionConfig,
			pahoClient: pahoClient,
		},
		domain: testDomain,
	}
}

func TestDomainAsTopic(t *testing.T) {
	assert.Equal(t, "testdomainsuota", domainAsTopic(testDomain))
	assert.Equal(t, "devicesuota", domainAsTopic("device"))
	assert.Equal(t, "suota", domainAsTopic("suota"))
}

func TestHostConnect(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	mockHandler := mocks.NewMockHostHandler(mockCtrl)

	t.Run("test_connect", func(t *testing.T) {
		client := newTestHostClient(mockPaho)
		mockPaho.EXPECT().Connect().Return(mockToken)
		mockToken.EXPECT().WaitTimeout(5 * time.Second).Return(true)
		mockToken.EXPECT().Error().Return(nil)

		assert.NoError(t, client.Connect(mockHandler))
		assert.Equal(t, mockHandler, client.getHandler())
	})

	t.Run("test_connect_timeout", func(t *testing.T) {
		client := newTestHostClient(mockPaho)
		mockPaho.EXPECT().Connect().Return(mockToken)
		mockToken.EXPECT().WaitTimeout(5 * time.Second).Return(false)

		assert.EqualError(t, client.Connect(mockHandler), "[testdomainsuota] connect timed out")
	})

	t.Run("test_connect_error", func(t *testing.T) {
		client := newTestHostClient(mockPaho)
		mockPaho.EXPECT().Connect().Return(mockToken)
		mockToken.EXPECT().WaitTimeout(5 * time.Second).Return(true)
		mockToken.EXPECT().Error().Return(errors.New("not authorized"))

		assert.EqualError(t, client.Connect(mockHandler), "not authorized")
	})
}

func TestHostDisconnect(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	client := newTestHostClient(mockPaho)
	client.setHandler(mocks.NewMockHostHandler(mockCtrl))

	mockPaho.EXPECT().Unsubscribe("testdomainsuota/installupdate", "testdomainsuota/platformversion",
		"testdomainsuota/events/listen", "testdomainsuota/events/cancel", "testdomainsuota/lifecycle",
		"testdomainsuota/cancel").Return(mockToken)
	mockToken.EXPECT().WaitTimeout(4 * time.Second).Return(false)
	mockPaho.EXPECT().Disconnect(uint(250))

	client.Disconnect()
	assert.Nil(t, client.getHandler())
}

func TestHostOnConnect(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	client := newTestHostClient(mockPaho)

	mockPaho.EXPECT().SubscribeMultiple(map[string]byte{
		"testdomainsuota/installupdate":   1,
		"testdomainsuota/platformversion": 1,
		"testdomainsuota/events/listen":   1,
		"testdomainsuota/events/cancel":   1,
		"testdomainsuota/lifecycle":       1,
		"testdomainsuota/cancel":          1,
	}, gomock.Any()).Return(mockToken)
	mockToken.EXPECT().WaitTimeout(3 * time.Second).Return(true)
	mockToken.EXPECT().Error().Return(nil)

	client.onConnect(mockPaho)
}

func TestHostHandleRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockHandler := mocks.NewMockHostHandler(mockCtrl)
	client := newTestHostClient(mockPaho)
	client.setHandler(mockHandler)

	payload := []byte(`{"activityId":"testActivityId"}`)
	tests := map[string]func() *gomock.Call{
		"installupdate":   func() *gomock.Call { return mockHandler.EXPECT().HandleInstallUpdate(payload) },
		"platformversion": func() *gomock.Call { return mockHandler.EXPECT().HandlePlatformVersion(payload) },
		"events/listen":   func() *gomock.Call { return mockHandler.EXPECT().HandleListen(payload) },
		"events/cancel":   func() *gomock.Call { return mockHandler.EXPECT().HandleCancelListen(payload) },
		"lifecycle":       func() *gomock.Call { return mockHandler.EXPECT().HandleLifecycle(payload) },
		"cancel":          func() *gomock.Call { return mockHandler.EXPECT().HandleCancel(payload) },
	}
	for suffix, expect := range tests {
		t.Run("test_"+suffix, func(t *testing.T) {
			mockMessage := mqttmocks.NewMockMessage(mockCtrl)
			mockMessage.EXPECT().Topic().Return("testdomainsuota/" + suffix).AnyTimes()
			mockMessage.EXPECT().Payload().Return(payload)
			expect().Return(errors.New("handler error"))

			client.handleRequest(mockPaho, mockMessage)
		})
	}

	t.Run("test_unknown_topic", func(t *testing.T) {
		mockMessage := mqttmocks.NewMockMessage(mockCtrl)
		mockMessage.EXPECT().Topic().Return("testdomainsuota/unknown").AnyTimes()
		client.handleRequest(mockPaho, mockMessage)
	})

	t.Run("test_no_handler", func(t *testing.T) {
		client.setHandler(nil)
		mockMessage := mqttmocks.NewMockMessage(mockCtrl)
		mockMessage.EXPECT().Topic().Return("testdomainsuota/installupdate").AnyTimes()
		client.handleRequest(mockPaho, mockMessage)
	})
}

func TestHostPublish(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPaho := mqttmocks.NewMockClient(mockCtrl)
	mockToken := mqttmocks.NewMockToken(mockCtrl)
	client := newTestHostClient(mockPaho)
	payload := []byte(`{"progress":55}`)

	t.Run("test_publish_event", func(t *testing.T) {
		mockPaho.EXPECT().Publish("testdomainsuota/events", byte(1), false, payload).Return(mockToken)
		mockToken.EXPECT().WaitTimeout(2 * time.Second).Return(true)
		mockToken.EXPECT().Error().Return(nil)
		assert.NoError(t, client.PublishEvent(payload))
	})

	t.Run("test_publish_install_update_response", func(t *testing.T) {
		mockPaho.EXPECT().Publish("testdomainsuota/installupdate/response", byte(1), false, payload).Return(mockToken)
		mockToken.EXPECT().WaitTimeout(2 * time.Second).Return(true)
		mockToken.EXPECT().Error().Return(nil)
		assert.NoError(t, client.PublishInstallUpdateResponse(payload))
	})

	t.Run("test_publish_platform_version_timeout", func(t *testing.T) {
		mockPaho.EXPECT().Publish("testdomainsuota/platformversion/response", byte(1), false, payload).Return(mockToken)
		mockToken.EXPECT().WaitTimeout(2 * time.Second).Return(false)
		assert.Error(t, client.PublishPlatformVersion(payload))
	})
}
