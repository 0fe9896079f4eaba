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
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api/util"
)

const (
	// default mqtt connection config
	defaultBroker             = "tcp://localhost:1883"
	defaultKeepAlive          = "20s"
	defaultDisconnectTimeout  = "250ms"
	defaultUsername           = ""
	defaultPassword           = ""
	defaultConnectTimeout     = "30s"
	defaultAcknowledgeTimeout = "15s"
	defaultSubscribeTimeout   = "15s"
	defaultUnsubscribeTimeout = "5s"
	defaultCACert             = ""
	defaultCert               = ""
	defaultKey                = ""
)

// ConnectionConfig represents the mqtt client connection config
type ConnectionConfig struct {
	Broker             string `json:"broker,omitempty" yaml:"broker,omitempty"`
	KeepAlive          string `json:"keepAlive,omitempty" yaml:"keepAlive,omitempty"`
	DisconnectTimeout  string `json:"disconnectTimeout,omitempty" yaml:"disconnectTimeout,omitempty"`
	Username           string `json:"username,omitempty" yaml:"username,omitempty"`
	Password           string `json:"password,omitempty" yaml:"password,omitempty"`
	ConnectTimeout     string `json:"connectTimeout,omitempty" yaml:"connectTimeout,omitempty"`
	AcknowledgeTimeout string `json:"acknowledgeTimeout,omitempty" yaml:"acknowledgeTimeout,omitempty"`
	SubscribeTimeout   string `json:"subscribeTimeout,omitempty" yaml:"subscribeTimeout,omitempty"`
	UnsubscribeTimeout string `json:"unsubscribeTimeout,omitempty" yaml:"unsubscribeTimeout,omitempty"`
	CACert             string `json:"caCert" yaml:"caCert"`
	Cert               string `json:"cert" yaml:"cert"`
	Key                string `json:"key" yaml:"key"`
}

type internalConnectionConfig struct {
	Broker             string
	KeepAlive          time.Duration
	DisconnectTimeout  time.Duration
	Username           string
	Password           string
	ConnectTimeout     time.Duration
	AcknowledgeTimeout time.Duration
	SubscribeTimeout   time.Duration
	UnsubscribeTimeout time.Duration
	CACert             string
	Cert               string
	Key                string
}

// NewDefaultConfig returns a default mqtt client connection config instance
func NewDefaultConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Broker:             defaultBroker,
		KeepAlive:          defaultKeepAlive,
		DisconnectTimeout:  defaultDisconnectTimeout,
		Username:           defaultUsername,
		Password:           defaultPassword,
		ConnectTimeout:     defaultConnectTimeout,
		AcknowledgeTimeout: defaultAcknowledgeTimeout,
		SubscribeTimeout:   defaultSubscribeTimeout,
		UnsubscribeTimeout: defaultUnsubscribeTimeout,
		CACert:             defaultCACert,
		Cert:               defaultCert,
		Key:                defaultKey,
	}
}

func newInternalConnectionConfig(config *ConnectionConfig) *internalConnectionConfig {
	return &internalConnectionConfig{
		Broker:             config.Broker,
		KeepAlive:          parseDuration("keepAlive", config.KeepAlive, defaultKeepAlive),
		DisconnectTimeout:  parseDuration("disconnectTimeout", config.DisconnectTimeout, defaultDisconnectTimeout),
		Username:           config.Username,
		Password:           config.Password,
		ConnectTimeout:     parseDuration("connectTimeout", config.ConnectTimeout, defaultConnectTimeout),
		AcknowledgeTimeout: parseDuration("acknowledgeTimeout", config.AcknowledgeTimeout, defaultAcknowledgeTimeout),
		SubscribeTimeout:   parseDuration("subscribeTimeout", config.SubscribeTimeout, defaultSubscribeTimeout),
		UnsubscribeTimeout: parseDuration("unsubscribeTimeout", config.UnsubscribeTimeout, defaultUnsubscribeTimeout),
		CACert:             config.CACert,
		Cert:               config.Cert,
		Key:                config.Key,
	}
}

func parseDuration(property, value, defaultValue string) time.Duration {
	def, _ := time.ParseDuration(defaultValue)
	return util.ParseDuration(property, value, def, def)
}
