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
	"flag"
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/eclipse-kanto/suota-update-manager/api/types"

	"github.com/stretchr/testify/assert"
)

func TestSetupFlags(t *testing.T) {
	cfg := NewDefaultConfig()
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	SetupAllUpdateManagerFlags(flagSet, cfg)

	tests := map[string]struct {
		flag         string
		expectedType string
	}{
		"test_flags_log_level":                    {flag: "log-level", expectedType: reflect.String.String()},
		"test_flags_log_file":                     {flag: "log-file", expectedType: reflect.String.String()},
		"test_flags_log_file_size":                {flag: "log-file-size", expectedType: reflect.Int.String()},
		"test_flags_log_file_count":               {flag: "log-file-count", expectedType: reflect.Int.String()},
		"test_flags_log_file_max_age":             {flag: "log-file-max-age", expectedType: reflect.Int.String()},
		"test_flags_mqtt_conn_broker":             {flag: "mqtt-conn-broker", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_keep_alive":         {flag: "mqtt-conn-keep-alive", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_disconnect_timeout": {flag: "mqtt-conn-disconnect-timeout", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_username":           {flag: "mqtt-conn-username", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_password":           {flag: "mqtt-conn-password", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_connect_timeout":    {flag: "mqtt-conn-connect-timeout", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_ack_timeout":        {flag: "mqtt-conn-ack-timeout", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_sub_timeout":        {flag: "mqtt-conn-sub-timeout", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_unsub_timeout":      {flag: "mqtt-conn-unsub-timeout", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_root_ca":            {flag: "mqtt-conn-root-ca", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_client_cert":        {flag: "mqtt-conn-client-cert", expectedType: reflect.String.String()},
		"test_flags_mqtt_conn_client_key":         {flag: "mqtt-conn-client-key", expectedType: reflect.String.String()},
		"test_flags_domain":                       {flag: "domain", expectedType: reflect.String.String()},
		"test_flags_resolver":                     {flag: "resolver", expectedType: reflect.String.String()},
		"test_flags_bluetooth_adapter":            {flag: "bluetooth-adapter", expectedType: reflect.String.String()},
		"test_flags_connect_timeout":              {flag: "connect-timeout", expectedType: reflect.String.String()},
		"test_flags_confirmation_timeout":         {flag: "confirmation-timeout", expectedType: reflect.String.String()},
		"test_flags_event_buffer_size":            {flag: "event-buffer-size", expectedType: reflect.Int.String()},
		"test_flags_lifecycle_threshold":          {flag: "lifecycle-threshold", expectedType: reflect.String.String()},
		"test_flags_initial_lifecycle_state":      {flag: "initial-lifecycle-state", expectedType: reflect.String.String()},
		"test_flags_stream_address":               {flag: "stream-address", expectedType: reflect.String.String()},
		"test_flags_library_topic":                {flag: "library-topic", expectedType: reflect.String.String()},
		"test_flags_progress_report_interval":     {flag: "progress-report-interval", expectedType: reflect.String.String()},
		"test_flags_suota_block_size":             {flag: "suota-block-size", expectedType: reflect.Int.String()},
		"test_flags_suota_sck_gpio":               {flag: "suota-sck-gpio", expectedType: reflect.Int.String()},
		"test_flags_suota_cs_gpio":                {flag: "suota-cs-gpio", expectedType: reflect.Int.String()},
		"test_flags_suota_miso_gpio":              {flag: "suota-miso-gpio", expectedType: reflect.Int.String()},
		"test_flags_suota_mosi_gpio":              {flag: "suota-mosi-gpio", expectedType: reflect.Int.String()},
		"test_flags_suota_image_bank":             {flag: "suota-image-bank", expectedType: "value"},
	}
	for testName, testCase := range tests {
		t.Run(testName, func(t *testing.T) {
			testFlag := flagSet.Lookup(testCase.flag)
			if testFlag == nil {
				t.Fatalf("flag %s, not found", testCase.flag)
			}
			flagType, _ := flag.UnquoteUsage(testFlag)
			if flagType != testCase.expectedType {
				t.Errorf("incorrect type: %s for flag %s, expecting: %s", flagType, testFlag.Name, testCase.expectedType)
			}
		})
	}
}

func TestParseConfigFilePath(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	testPath := "/some/path/file"

	t.Run("test_cfg_file_default", func(t *testing.T) {
		os.Args = []string{oldArgs[0]}
		assert.Equal(t, "", ParseConfigFilePath())
	})
	t.Run("test_cfg_file_overridden", func(t *testing.T) {
		os.Args = []string{oldArgs[0], fmt.Sprintf("--%s=%s", configFileFlagID, testPath)}
		assert.Equal(t, testPath, ParseConfigFilePath())
	})
	t.Run("test_cfg_file_separate_arg", func(t *testing.T) {
		os.Args = []string{oldArgs[0], "-" + configFileFlagID, testPath}
		assert.Equal(t, testPath, ParseConfigFilePath())
	})
	t.Run("test_cfg_file_missing_value", func(t *testing.T) {
		os.Args = []string{oldArgs[0], "--" + configFileFlagID}
		assert.Equal(t, "", ParseConfigFilePath())
	})
}

func TestParseFlags(t *testing.T) {
	testVersion := "testVersion"

	t.Run("test_flags_override_config_file", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()

		os.Args = []string{oldArgs[0],
			fmt.Sprintf("--%s=%s", configFileFlagID, "../config/testdata/config.json"),
			"--connect-timeout=1m",
			"--suota-block-size", "64",
			"--suota-miso-gpio=0x07",
			"--suota-image-bank=2",
			"--stream-address=",
		}
		cfg, err := LoadConfig(testVersion)
		assert.NoError(t, err)

		expected := expectedFileConfig()
		expected.ConnectTimeout = "1m"
		expected.Suota.BlockSize = 64
		expected.Suota.DataInGPIO = 0x07
		expected.Suota.ImageBank = types.ImageBank2
		expected.StreamAddress = ""
		assert.Equal(t, expected, cfg)
	})
	t.Run("test_defaults_without_flags", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()

		os.Args = []string{oldArgs[0]}
		cfg, err := LoadConfig(testVersion)
		assert.NoError(t, err)
		assert.Equal(t, NewDefaultConfig(), cfg)
	})
	t.Run("test_env_overrides_default", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()
		t.Setenv("LIFECYCLE_THRESHOLD", "RESUMED")
		t.Setenv("SUOTA_IMAGE_BANK", "1")
		t.Setenv("EVENT_BUFFER_SIZE", "not-a-number")

		os.Args = []string{oldArgs[0]}
		cfg, err := LoadConfig(testVersion)
		assert.NoError(t, err)
		assert.Equal(t, "RESUMED", cfg.LifecycleThreshold)
		assert.Equal(t, types.ImageBank1, cfg.Suota.ImageBank)
		assert.Equal(t, 64, cfg.EventBufferSize)
	})
	t.Run("test_null_suota_section", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()
		cfgFile := t.TempDir() + "/config.json"
		assert.NoError(t, os.WriteFile(cfgFile, []byte(`{"suota": null}`), 0644))

		os.Args = []string{oldArgs[0], "--" + configFileFlagID, cfgFile}
		cfg, err := LoadConfig(testVersion)
		assert.NoError(t, err)
		assert.Equal(t, types.DefaultSuotaParameters(), *cfg.Suota)
	})
	t.Run("test_invalid_config_file", func(t *testing.T) {
		oldArgs := os.Args
		defer func() { os.Args = oldArgs }()

		os.Args = []string{oldArgs[0], "--" + configFileFlagID, "../config/testdata/invalid.json"}
		_, err := LoadConfig(testVersion)
		assert.Error(t, err)
	})
}

func TestImageBankValue(t *testing.T) {
	bank := types.ImageBankOldest
	value := (*imageBankValue)(&bank)
	assert.NoError(t, value.Set("0x02"))
	assert.Equal(t, types.ImageBank2, bank)
	assert.Equal(t, "2", value.String())
	assert.Error(t, value.Set("second"))
}
