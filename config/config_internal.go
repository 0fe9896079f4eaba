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

package config

import (
	"github.com/eclipse-kanto/suota-update-manager/api/types"
)

const (
	// default log config
	logFileDefault       = ""
	logLevelDefault      = "INFO"
	logFileSizeDefault   = 2
	logFileCountDefault  = 5
	logFileMaxAgeDefault = 28

	domainDefault                = "device"
	resolverDefault              = "bluez"
	bluetoothAdapterDefault      = "hci0"
	connectTimeoutDefault        = "30s"
	confirmationTimeoutDefault   = "2m"
	eventBufferSizeDefault       = 64
	lifecycleThresholdDefault    = "STARTED"
	initialLifecycleStateDefault = "CREATED"
	streamAddressDefault         = ""
	libraryTopicDefault          = "suota"
	progressReportDefault        = "0s"
)

// Config represents the SUOTA Update Manager configuration.
type Config struct {
	*BaseConfig            `yaml:",inline"`
	Suota                  *types.SuotaParameters `json:"suota,omitempty" yaml:"suota,omitempty"`
	Resolver               string                 `json:"resolver,omitempty" yaml:"resolver,omitempty"`
	BluetoothAdapter       string                 `json:"bluetoothAdapter,omitempty" yaml:"bluetoothAdapter,omitempty"`
	ConnectTimeout         string                 `json:"connectTimeout,omitempty" yaml:"connectTimeout,omitempty"`
	ConfirmationTimeout    string                 `json:"confirmationTimeout,omitempty" yaml:"confirmationTimeout,omitempty"`
	EventBufferSize        int                    `json:"eventBufferSize,omitempty" yaml:"eventBufferSize,omitempty"`
	LifecycleThreshold     string                 `json:"lifecycleThreshold,omitempty" yaml:"lifecycleThreshold,omitempty"`
	InitialLifecycleState  string                 `json:"initialLifecycleState,omitempty" yaml:"initialLifecycleState,omitempty"`
	StreamAddress          string                 `json:"streamAddress,omitempty" yaml:"streamAddress,omitempty"`
	LibraryTopic           string                 `json:"libraryTopic,omitempty" yaml:"libraryTopic,omitempty"`
	ProgressReportInterval string                 `json:"progressReportInterval,omitempty" yaml:"progressReportInterval,omitempty"`
}

// NewDefaultConfig creates a configuration filled with the default values.
func NewDefaultConfig() *Config {
	suota := types.DefaultSuotaParameters()
	return &Config{
		BaseConfig:             DefaultDomainConfig(domainDefault),
		Suota:                  &suota,
		Resolver:               resolverDefault,
		BluetoothAdapter:       bluetoothAdapterDefault,
		ConnectTimeout:         connectTimeoutDefault,
		ConfirmationTimeout:    confirmationTimeoutDefault,
		EventBufferSize:        eventBufferSizeDefault,
		LifecycleThreshold:     lifecycleThresholdDefault,
		InitialLifecycleState:  initialLifecycleStateDefault,
		StreamAddress:          streamAddressDefault,
		LibraryTopic:           libraryTopicDefault,
		ProgressReportInterval: progressReportDefault,
	}
}

// LoadConfig loads a new configuration instance using flags and config file (if set).
func LoadConfig(version string) (*Config, error) {
	configFilePath := ParseConfigFilePath()
	config := NewDefaultConfig()
	if configFilePath != "" {
		if err := LoadConfigFromFile(configFilePath, config); err != nil {
			return nil, err
		}
	}
	if config.Suota == nil {
		suota := types.DefaultSuotaParameters()
		config.Suota = &suota
	}
	parseFlags(config, version)
	return config, nil
}
