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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/mqtt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// BaseConfig represents the common, reusable configuration that holds logger options and MQTT connection parameters.
type BaseConfig struct {
	Log    *logger.LogConfig      `json:"log,omitempty" yaml:"log,omitempty"`
	MQTT   *mqtt.ConnectionConfig `json:"connection,omitempty" yaml:"connection,omitempty"`
	Domain string                 `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// DefaultDomainConfig creates a new configuration filled with default values for all config properties and domain name set to the given parameter.
func DefaultDomainConfig(domain string) *BaseConfig {
	return &BaseConfig{
		Log: &logger.LogConfig{
			LogFile:       logFileDefault,
			LogLevel:      logLevelDefault,
			LogFileSize:   logFileSizeDefault,
			LogFileCount:  logFileCountDefault,
			LogFileMaxAge: logFileMaxAgeDefault,
		},
		MQTT:   mqtt.NewDefaultConfig(),
		Domain: domain,
	}
}

// LoadConfigFromFile reads the file contents and unmarshal them into the given config structure.
// Files with .yaml or .yml extension are read as YAML, all others as JSON.
func LoadConfigFromFile(filePath string, config interface{}) error {
	if config == nil {
		return errors.New("no configuration to load into")
	}
	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(file, config)
	default:
		err = json.Unmarshal(file, config)
	}
	return errors.Wrapf(err, "cannot parse configuration file %s", filePath)
}
