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
	"strings"
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	suffixInstallUpdate           = "/installupdate"
	suffixInstallUpdateResponse   = "/installupdate/response"
	suffixPlatformVersion         = "/platformversion"
	suffixPlatformVersionResponse = "/platformversion/response"
	suffixEvents                  = "/events"
	suffixEventsListen            = "/events/listen"
	suffixEventsCancel            = "/events/cancel"
	suffixLifecycle               = "/lifecycle"
	suffixCancel                  = "/cancel"
)

type hostClient struct {
	*mqttClient
	domain string

	handlerLock sync.RWMutex
	handler     api.HostHandler
}

// NewHostClient instantiates a new client for the requests of the host application using the provided configuration options.
func NewHostClient(domain string, config *ConnectionConfig) (api.HostClient, error) {
	client := &hostClient{domain: domain}
	mqttClient, err := newMQTTClient(domainAsTopic(domain), config, client.onConnect)
	if err != nil {
		return nil, err
	}
	client.mqttClient = mqttClient
	return client, nil
}

// Domain returns the name of the domain that is handled by this client.
func (client *hostClient) Domain() string {
	return client.domain
}

// Connect connects the client to the MQTT broker, the request topics are subscribed on each (re)connect.
func (client *hostClient) Connect(handler api.HostHandler) error {
	client.setHandler(handler)
	return client.connect()
}

// Disconnect disconnects the client from the MQTT broker.
func (client *hostClient) Disconnect() {
	if err := client.unsubscribe(client.requestTopics()...); err != nil {
		logger.WarnErr(err, "[%s] error unsubscribing from host requests", client.Domain())
	} else {
		logger.Debug("[%s] unsubscribed from host requests", client.Domain())
	}
	client.disconnect()
	client.setHandler(nil)
}

func (client *hostClient) requestTopics() []string {
	return []string{
		client.topic(suffixInstallUpdate),
		client.topic(suffixPlatformVersion),
		client.topic(suffixEventsListen),
		client.topic(suffixEventsCancel),
		client.topic(suffixLifecycle),
		client.topic(suffixCancel),
	}
}

func (client *hostClient) onConnect(mqttClient pahomqtt.Client) {
	if err := client.subscribe(client.handleRequest, client.requestTopics()...); err != nil {
		logger.ErrorErr(err, "[%s] error subscribing for host requests", client.Domain())
	} else {
		logger.Debug("[%s] subscribed for host requests", client.Domain())
	}
}

func (client *hostClient) setHandler(handler api.HostHandler) {
	client.handlerLock.Lock()
	defer client.handlerLock.Unlock()
	client.handler = handler
}

func (client *hostClient) getHandler() api.HostHandler {
	client.handlerLock.RLock()
	defer client.handlerLock.RUnlock()
	return client.handler
}

func (client *hostClient) handleRequest(mqttClient pahomqtt.Client, message pahomqtt.Message) {
	handler := client.getHandler()
	if handler == nil {
		logger.Warn("[%s] no handler for message on topic '%s'", client.Domain(), message.Topic())
		return
	}
	var (
		name   string
		handle func([]byte) error
	)
	switch message.Topic() {
	case client.topic(suffixInstallUpdate):
		name, handle = "install update", handler.HandleInstallUpdate
	case client.topic(suffixPlatformVersion):
		name, handle = "platform version", handler.HandlePlatformVersion
	case client.topic(suffixEventsListen):
		name, handle = "events listen", handler.HandleListen
	case client.topic(suffixEventsCancel):
		name, handle = "events cancel", handler.HandleCancelListen
	case client.topic(suffixLifecycle):
		name, handle = "lifecycle", handler.HandleLifecycle
	case client.topic(suffixCancel):
		name, handle = "cancel", handler.HandleCancel
	default:
		logger.Warn("[%s] unexpected message on topic '%s'", client.Domain(), message.Topic())
		return
	}
	logger.Debug("[%s] received %s request", client.Domain(), name)
	if err := handle(message.Payload()); err != nil {
		logger.ErrorErr(err, "[%s] error processing %s request", client.Domain(), name)
	}
}

// PublishInstallUpdateResponse sends the given raw bytes as install update response.
func (client *hostClient) PublishInstallUpdateResponse(response []byte) error {
	logger.Debug("[%s] publishing install update response '%s'", client.Domain(), response)
	return client.publish(client.topic(suffixInstallUpdateResponse), false, response)
}

// PublishPlatformVersion sends the given raw bytes as platform version response.
func (client *hostClient) PublishPlatformVersion(version []byte) error {
	logger.Debug("[%s] publishing platform version '%s'", client.Domain(), version)
	return client.publish(client.topic(suffixPlatformVersionResponse), false, version)
}

// PublishEvent sends the given raw bytes as event stream record.
func (client *hostClient) PublishEvent(event []byte) error {
	if logger.IsTraceEnabled() {
		logger.Trace("[%s] publishing event '%s'", client.Domain(), event)
	}
	return client.publish(client.topic(suffixEvents), false, event)
}

func domainAsTopic(domain string) string {
	domain = strings.ReplaceAll(domain, "-", "")
	if strings.HasSuffix(domain, "suota") {
		return domain
	}
	return domain + "suota"
}
