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

package adapter

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/test"
	"github.com/eclipse-kanto/suota-update-manager/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "test-session"

func newTestAdapter(t *testing.T, mockCtrl *gomock.Controller, bufferSize int) (Adapter, *mocks.MockUpdateLibrary, api.LibraryCallback) {
	provider := mocks.NewMockUpdateLibraryProvider(mockCtrl)
	handle := mocks.NewMockDeviceHandle(mockCtrl)
	library := mocks.NewMockUpdateLibrary(mockCtrl)

	var callback api.LibraryCallback
	handle.EXPECT().Address().Return(test.DeviceAddress).AnyTimes()
	provider.EXPECT().NewSession(handle, gomock.Any()).DoAndReturn(
		func(_ api.DeviceHandle, cb api.LibraryCallback) (api.UpdateLibrary, error) {
			callback = cb
			return library, nil
		})

	adapter, err := New(testSessionID, provider, handle, bufferSize)
	require.NoError(t, err)
	require.NotNil(t, callback)
	return adapter, library, callback
}

func TestCallbacksToEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	adapter, library, callback := newTestAdapter(t, mockCtrl, 16)
	library.EXPECT().Close().Return(nil)
	defer adapter.Close()

	callback.OnConnectionStateChange(true)
	callback.OnDeviceReady()
	callback.OnUploadProgress(10)
	callback.OnSuotaLog("SEND_BLOCK", "BLOCK", "Sending block 1 of 3")
	callback.OnPendingReboot("reboot required")
	callback.OnFailure(0x04)
	callback.OnSuccess(12.4, 9.1)
	callback.OnConnectionStateChange(false)

	events := adapter.Events()
	event := test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventLog, event.Kind)
	assert.Equal(t, "Connected to AA:BB:CC:DD:EE:FF", event.Log.Message)

	assert.Equal(t, types.EventReady, test.ExpectEvent(t, events, test.Interval).Kind)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventProgress, event.Kind)
	assert.Equal(t, 10.0, event.Percent)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, &types.LogEntry{Stage: "SEND_BLOCK", Level: "BLOCK", Message: "Sending block 1 of 3"}, event.Log)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventPendingConfirmation, event.Kind)
	assert.Equal(t, "reboot required", event.Reason)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventFailure, event.Kind)
	assert.Equal(t, types.ErrorCode("CrcMismatch"), event.Error.Code)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventSuccess, event.Kind)
	assert.Equal(t, &types.ElapsedMetrics{TotalElapsedSeconds: 12.4, ImageUploadElapsedSeconds: 9.1}, event.Metrics)

	event = test.ExpectEvent(t, events, test.Interval)
	assert.Equal(t, types.EventFailure, event.Kind)
	assert.Equal(t, types.ErrorConnectionLost, event.Error.Code)
}

func TestCommandsInOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	adapter, library, _ := newTestAdapter(t, mockCtrl, 16)
	params := types.DefaultSuotaParameters()
	firmware := &types.FirmwareFile{Path: test.FilePath, Name: test.FileName}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	gomock.InOrder(
		library.EXPECT().Connect().Return(nil),
		library.EXPECT().Initialize(params).Return(nil),
		library.EXPECT().StartUpdate(firmware).DoAndReturn(func(*types.FirmwareFile) error {
			wg.Done()
			return nil
		}),
		library.EXPECT().Close().Return(nil),
	)

	adapter.Connect()
	adapter.Configure(params)
	adapter.StartUpload(firmware)
	test.AssertWithTimeout(t, wg, test.Interval)
	adapter.Close()
	test.AssertNoEvent(t, adapter.Events(), 50*time.Millisecond)
}

func TestCommandFailures(t *testing.T) {
	t.Run("test_error_to_library_failure", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		adapter, library, _ := newTestAdapter(t, mockCtrl, 16)
		library.EXPECT().Connect().Return(errors.New("gatt error"))
		library.EXPECT().Close().Return(nil)
		defer adapter.Close()

		adapter.Connect()
		event := test.ExpectEvent(t, adapter.Events(), test.Interval)
		assert.Equal(t, types.EventFailure, event.Kind)
		assert.Equal(t, types.ErrorLibraryFailure, event.Error.Code)
		assert.Equal(t, "connect failed: gatt error", event.Error.Message)
	})

	t.Run("test_update_error_kept", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		adapter, library, _ := newTestAdapter(t, mockCtrl, 16)
		library.EXPECT().StartUpdate(gomock.Any()).Return(types.NewLibraryError(0xfffb))
		library.EXPECT().Close().Return(nil)
		defer adapter.Close()

		adapter.StartUpload(&types.FirmwareFile{Path: test.FilePath, Name: test.FileName})
		event := test.ExpectEvent(t, adapter.Events(), test.Interval)
		assert.Equal(t, types.ErrorCode("FirmwareLoadFailed"), event.Error.Code)
	})

	t.Run("test_panic_to_library_failure", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		adapter, library, _ := newTestAdapter(t, mockCtrl, 16)
		library.EXPECT().Initialize(gomock.Any()).DoAndReturn(func(types.SuotaParameters) error {
			panic("boom")
		})
		library.EXPECT().Close().Return(nil)
		defer adapter.Close()

		adapter.Configure(types.DefaultSuotaParameters())
		event := test.ExpectEvent(t, adapter.Events(), test.Interval)
		assert.Equal(t, types.ErrorLibraryFailure, event.Error.Code)
		assert.Equal(t, "configure failed: panic: boom", event.Error.Message)
	})

	t.Run("test_abort", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		adapter, library, _ := newTestAdapter(t, mockCtrl, 16)
		library.EXPECT().Abort().Return(errors.New("not connected"))
		library.EXPECT().Close().Return(nil)
		defer adapter.Close()

		adapter.Cancel()
		event := test.ExpectEvent(t, adapter.Events(), test.Interval)
		assert.Equal(t, "abort failed: not connected", event.Error.Message)
	})
}

func TestCallbacksAfterClose(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	adapter, library, callback := newTestAdapter(t, mockCtrl, 1)
	library.EXPECT().Close().Return(errors.New("already closed"))

	adapter.Close()
	adapter.Close()

	assert.NotPanics(t, func() {
		callback.OnUploadProgress(10)
		callback.OnSuccess(1, 1)
		adapter.Connect()
		adapter.Cancel()
	})
	test.AssertNoEvent(t, adapter.Events(), 50*time.Millisecond)
}

func TestFullBufferUnblockedByClose(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	adapter, library, callback := newTestAdapter(t, mockCtrl, 1)
	library.EXPECT().Close().Return(nil)

	callback.OnUploadProgress(10)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		callback.OnUploadProgress(20)
	}()
	adapter.Close()
	test.AssertWithTimeout(t, wg, test.Interval)
}

func TestNewSessionFailures(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mocks.NewMockUpdateLibraryProvider(mockCtrl)
	handle := mocks.NewMockDeviceHandle(mockCtrl)
	handle.EXPECT().Address().Return(test.DeviceAddress).AnyTimes()

	t.Run("test_error", func(t *testing.T) {
		provider.EXPECT().NewSession(handle, gomock.Any()).Return(nil, errors.New("no broker"))
		_, err := New(testSessionID, provider, handle, 0)
		var updateErr *types.UpdateError
		require.True(t, errors.As(err, &updateErr))
		assert.Equal(t, types.ErrorLibraryFailure, updateErr.Code)
	})

	t.Run("test_panic", func(t *testing.T) {
		provider.EXPECT().NewSession(handle, gomock.Any()).DoAndReturn(
			func(api.DeviceHandle, api.LibraryCallback) (api.UpdateLibrary, error) {
				panic("boom")
			})
		_, err := New(testSessionID, provider, handle, 0)
		var updateErr *types.UpdateError
		require.True(t, errors.As(err, &updateErr))
		assert.Equal(t, "create session failed: boom", updateErr.Message)
	})

	t.Run("test_nil_session", func(t *testing.T) {
		provider.EXPECT().NewSession(handle, gomock.Any()).Return(nil, nil)
		_, err := New(testSessionID, provider, handle, 0)
		assert.Error(t, err)
	})
}
