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

package api

import (
	"context"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
)

// DeviceHandle references a resolved remote device, it must be released once the update session is over.
type DeviceHandle interface {
	ID() string
	Address() string
	Release() error
}

// DeviceResolver resolves a remote device identifier to a handle.
// Errors are reported as *types.UpdateError with ErrorDeviceNotFound or ErrorBluetoothUnavailable code.
type DeviceResolver interface {
	Resolve(ctx context.Context, deviceID string) (DeviceHandle, error)
}

// LibraryCallback defines the callback surface of the updater library
type LibraryCallback interface {
	OnDeviceReady()
	OnUploadProgress(percent float32)
	OnSuotaLog(state, logType, message string)
	OnPendingReboot(reason string)
	OnSuccess(totalElapsedSeconds, imageUploadElapsedSeconds float64)
	OnFailure(code int)
	OnConnectionStateChange(connected bool)
}

// UpdateLibrary defines the commands of an updater library session bound to a single remote device
type UpdateLibrary interface {
	Connect() error
	Initialize(params types.SuotaParameters) error
	StartUpdate(firmware *types.FirmwareFile) error
	Abort() error
	Close() error
}

// UpdateLibraryProvider creates updater library sessions.
type UpdateLibraryProvider interface {
	NewSession(handle DeviceHandle, callback LibraryCallback) (UpdateLibrary, error)
}
