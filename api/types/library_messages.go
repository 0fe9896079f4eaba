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

package types

// LibraryCommandType defines the command sent to a remote updater library
type LibraryCommandType string

const (
	// LibraryCommandConnect requests the connection to the remote device.
	LibraryCommandConnect LibraryCommandType = "connect"
	// LibraryCommandConfigure applies the SUOTA parameters.
	LibraryCommandConfigure LibraryCommandType = "configure"
	// LibraryCommandStart starts the firmware upload.
	LibraryCommandStart LibraryCommandType = "start"
	// LibraryCommandAbort aborts the firmware upload.
	LibraryCommandAbort LibraryCommandType = "abort"
	// LibraryCommandDisconnect closes the updater library session.
	LibraryCommandDisconnect LibraryCommandType = "disconnect"
)

// LibraryCommand is the payload of a remote updater library command.
type LibraryCommand struct {
	Command    LibraryCommandType `json:"command"`
	Parameters *SuotaParameters   `json:"parameters,omitempty"`
	Firmware   *FirmwareFile      `json:"firmware,omitempty"`
}

// LibraryCallbackType defines the callback received from a remote updater library
type LibraryCallbackType string

const (
	// LibraryCallbackReady reports that the remote device is ready.
	LibraryCallbackReady LibraryCallbackType = "ready"
	// LibraryCallbackProgress reports the upload progress.
	LibraryCallbackProgress LibraryCallbackType = "progress"
	// LibraryCallbackLog reports a SUOTA protocol log entry.
	LibraryCallbackLog LibraryCallbackType = "log"
	// LibraryCallbackPendingReboot reports that a reboot confirmation is required.
	LibraryCallbackPendingReboot LibraryCallbackType = "pendingReboot"
	// LibraryCallbackSuccess reports a successful update.
	LibraryCallbackSuccess LibraryCallbackType = "success"
	// LibraryCallbackFailure reports a failed update.
	LibraryCallbackFailure LibraryCallbackType = "failure"
	// LibraryCallbackConnection reports a connection state change.
	LibraryCallbackConnection LibraryCallbackType = "connection"
)

// LibraryCallbackMessage is the payload of a remote updater library callback.
type LibraryCallbackMessage struct {
	Callback                  LibraryCallbackType `json:"callback"`
	Percent                   float32             `json:"percent,omitempty"`
	State                     string              `json:"state,omitempty"`
	LogType                   string              `json:"type,omitempty"`
	Message                   string              `json:"message,omitempty"`
	Reason                    string              `json:"reason,omitempty"`
	TotalElapsedSeconds       float64             `json:"totalElapsedSeconds,omitempty"`
	ImageUploadElapsedSeconds float64             `json:"imageUploadElapsedSeconds,omitempty"`
	Code                      int                 `json:"code,omitempty"`
	Connected                 bool                `json:"connected,omitempty"`
}
