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

package app

import (
	"context"
	"testing"

	"github.com/eclipse-kanto/suota-update-manager/config"
	"github.com/eclipse-kanto/suota-update-manager/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitComponents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockClient := mocks.NewMockHostClient(mockCtrl)
	mockLibrary := mocks.NewMockLibraryClient(mockCtrl)
	mockResolver := mocks.NewMockDeviceResolver(mockCtrl)

	t.Run("test_init_without_stream_server", func(t *testing.T) {
		comps, err := initComponents(config.NewDefaultConfig(), "1.0.0", mockClient, mockLibrary, mockResolver)
		require.NoError(t, err)
		assert.NotNil(t, comps.agent)
		assert.Equal(t, mockLibrary, comps.library)
		assert.Nil(t, comps.server)
	})
	t.Run("test_init_with_stream_server", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.StreamAddress = "127.0.0.1:0"
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		require.NoError(t, err)
		assert.NotNil(t, comps.server)
	})
	t.Run("test_init_invalid_lifecycle_threshold", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.LifecycleThreshold = "FOREGROUND"
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		assert.Error(t, err)
		assert.Nil(t, comps)
	})
	t.Run("test_init_invalid_suota_parameters", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.Suota.BlockSize = 0
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		assert.Error(t, err)
		assert.Nil(t, comps)
	})
}

func TestStartStopComponents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockClient := mocks.NewMockHostClient(mockCtrl)
	mockLibrary := mocks.NewMockLibraryClient(mockCtrl)
	mockResolver := mocks.NewMockDeviceResolver(mockCtrl)

	cfg := config.NewDefaultConfig()
	cfg.StreamAddress = "127.0.0.1:0"

	t.Run("test_start_stop", func(t *testing.T) {
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		require.NoError(t, err)

		mockLibrary.EXPECT().Connect().Return(nil)
		mockClient.EXPECT().Connect(gomock.Any()).Return(nil)
		require.NoError(t, startComponents(context.Background(), comps))
		assert.NotNil(t, comps.server.Addr())

		mockClient.EXPECT().Disconnect()
		mockLibrary.EXPECT().Disconnect()
		stopComponents(comps)
	})
	t.Run("test_start_library_error", func(t *testing.T) {
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		require.NoError(t, err)

		mockLibrary.EXPECT().Connect().Return(errors.New("broker unavailable"))
		assert.EqualError(t, startComponents(context.Background(), comps), "broker unavailable")
	})
	t.Run("test_start_agent_error", func(t *testing.T) {
		comps, err := initComponents(cfg, "1.0.0", mockClient, mockLibrary, mockResolver)
		require.NoError(t, err)

		mockLibrary.EXPECT().Connect().Return(nil)
		mockClient.EXPECT().Connect(gomock.Any()).Return(errors.New("connection refused"))
		assert.EqualError(t, startComponents(context.Background(), comps), "connection refused")
	})
}
