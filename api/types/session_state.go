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

// SessionState defines the state of an update session
type SessionState string

const (
	// SessionIdle denotes that no update session is active.
	SessionIdle SessionState = "IDLE"
	// SessionResolving denotes that the remote device handle is being resolved.
	SessionResolving SessionState = "RESOLVING"
	// SessionConnecting denotes that the connection to the remote device is being established.
	SessionConnecting SessionState = "CONNECTING"
	// SessionAwaitingReady denotes that the remote device is connected and its readiness is awaited.
	SessionAwaitingReady SessionState = "AWAITING_READY"
	// SessionConfiguring denotes that the update parameters are being applied.
	SessionConfiguring SessionState = "CONFIGURING"
	// SessionUploading denotes that the firmware image is being uploaded.
	SessionUploading SessionState = "UPLOADING"
	// SessionAwaitingConfirmation denotes that a user confirmation is being coordinated with the host application.
	SessionAwaitingConfirmation SessionState = "AWAITING_CONFIRMATION"
	// SessionSucceeded denotes a successfully completed update session.
	SessionSucceeded SessionState = "SUCCEEDED"
	// SessionFailed denotes a failed update session.
	SessionFailed SessionState = "FAILED"
	// SessionCancelled denotes a cancelled update session.
	SessionCancelled SessionState = "CANCELLED"
)

// IsTerminal returns true for the succeeded, failed and cancelled states.
func (state SessionState) IsTerminal() bool {
	return state == SessionSucceeded || state == SessionFailed || state == SessionCancelled
}

// IsActive returns true if the state occupies the update session slot.
func (state SessionState) IsActive() bool {
	return state != SessionIdle && !state.IsTerminal()
}
