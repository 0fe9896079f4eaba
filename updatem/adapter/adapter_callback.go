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
	"fmt"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

func (adapter *libraryAdapter) OnDeviceReady() {
	adapter.emit(types.NewReadyEvent())
}

func (adapter *libraryAdapter) OnUploadProgress(percent float32) {
	adapter.emit(types.NewProgressEvent(float64(percent)))
}

func (adapter *libraryAdapter) OnSuotaLog(state, logType, message string) {
	adapter.emit(types.NewLogEvent(state, logType, message))
}

func (adapter *libraryAdapter) OnPendingReboot(reason string) {
	adapter.emit(types.NewPendingConfirmationEvent(reason))
}

func (adapter *libraryAdapter) OnSuccess(totalElapsedSeconds, imageUploadElapsedSeconds float64) {
	adapter.emit(types.NewSuccessEvent(totalElapsedSeconds, imageUploadElapsedSeconds))
}

func (adapter *libraryAdapter) OnFailure(code int) {
	adapter.emit(types.NewFailureEvent(types.NewLibraryError(code)))
}

func (adapter *libraryAdapter) OnConnectionStateChange(connected bool) {
	if connected {
		logger.Info("[%s] connected to %s", adapter.sessionID, adapter.address)
		adapter.emit(types.NewLogEvent(ConnectionStage, connectionLevel, fmt.Sprintf("Connected to %s", adapter.address)))
		return
	}
	logger.Warn("[%s] connection to %s lost", adapter.sessionID, adapter.address)
	adapter.emit(types.NewFailureEvent(types.NewUpdateErrorf(types.ErrorConnectionLost, "Connection to %s lost", adapter.address)))
}
