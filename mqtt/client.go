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
	"fmt"

	"github.com/eclipse-kanto/suota-update-manager/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const qos = 1

type mqttClient struct {
	mqttPrefix string
	mqttConfig *internalConnectionConfig
	pahoClient pahomqtt.Client
}

func newMQTTClient(prefix string, config *ConnectionConfig, onConnect pahomqtt.OnConnectHandler) (*mqttClient, error) {
	internalConfig := newInternalConnectionConfig(config)
	pahoClient, err := newPahoClient(internalConfig, onConnect)
	if err != nil {
		return nil, err
	}
	return &mqttClient{
		mqttPrefix: prefix,
		mqttConfig: internalConfig,
		pahoClient: pahoClient,
	}, nil
}

func newPahoClient(config *internalConnectionConfig, onConnect pahomqtt.OnConnectHandler) (pahomqtt.Client, error) {
	clientOptions := pahomqtt.NewClientOptions().
		SetClientID(uuid.New().String()).
		AddBroker(config.Broker).
		SetKeepAlive(config.KeepAlive).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetProtocolVersion(4).
		SetConnectTimeout(config.ConnectTimeout).
		SetOnConnectHandler(onConnect).
		SetUsername(config.Username).
		SetPassword(config.Password)

	if config.CACert != "" {
		tlsConfig, err := NewTLSConfig(config)
		if err != nil {
			return nil, err
		}
		clientOptions.SetTLSConfig(tlsConfig)
	}
	return pahomqtt.NewClient(clientOptions), nil
}

func (client *mqttClient) topic(topicSuffix string) string {
	return client.mqttPrefix + topicSuffix
}

func (client *mqttClient) connect() error {
	token := client.pahoClient.Connect()
	if !token.WaitTimeout(client.mqttConfig.ConnectTimeout) {
		return fmt.Errorf("[%s] connect timed out", client.mqttPrefix)
	}
	return token.Error()
}

func (client *mqttClient) disconnect() {
	client.pahoClient.Disconnect(uint(client.mqttConfig.DisconnectTimeout.Milliseconds()))
}

func (client *mqttClient) subscribe(handler pahomqtt.MessageHandler, topics ...string) error {
	topicsMap := make(map[string]byte, len(topics))
	for _, topic := range topics {
		topicsMap[topic] = qos
	}
	logger.Debug("subscribing for '%s' topics", topics)
	token := client.pahoClient.SubscribeMultiple(topicsMap, handler)
	if !token.WaitTimeout(client.mqttConfig.SubscribeTimeout) {
		return errors.Errorf("cannot subscribe for topics '%s' in '%v'", topics, client.mqttConfig.SubscribeTimeout)
	}
	return token.Error()
}

func (client *mqttClient) unsubscribe(topics ...string) error {
	logger.Debug("unsubscribing from '%s' topics", topics)
	token := client.pahoClient.Unsubscribe(topics...)
	if !token.WaitTimeout(client.mqttConfig.UnsubscribeTimeout) {
		return errors.Errorf("cannot unsubscribe from topics '%s' in '%v'", topics, client.mqttConfig.UnsubscribeTimeout)
	}
	return token.Error()
}

func (client *mqttClient) publish(topic string, retained bool, message []byte) error {
	logger.Trace("publishing to topic '%s'", topic)
	token := client.pahoClient.Publish(topic, qos, retained, message)
	if !token.WaitTimeout(client.mqttConfig.AcknowledgeTimeout) {
		return errors.Errorf("cannot publish to topic '%s' in '%v'", topic, client.mqttConfig.AcknowledgeTimeout)
	}
	return token.Error()
}
