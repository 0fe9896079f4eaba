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

// StreamRecord is the wire form of a streamed event, exactly one field is set.
type StreamRecord struct {
	Event               EventKind          `json:"event,omitempty"`
	Progress            *float64           `json:"progress,omitempty"`
	Log                 *LogEntry          `json:"log,omitempty"`
	PendingConfirmation *ConfirmationToken `json:"pendingConfirmation,omitempty"`
}

// ToStreamRecord converts the event to its stream record, events that are resolved through the request boundary return nil.
func ToStreamRecord(event *UpdateEvent) *StreamRecord {
	if event == nil {
		return nil
	}
	switch event.Kind {
	case EventListen:
		return &StreamRecord{Event: EventListen}
	case EventProgress:
		percent := event.Percent
		return &StreamRecord{Progress: &percent}
	case EventLog:
		if event.Log == nil {
			return nil
		}
		return &StreamRecord{Log: event.Log}
	case EventPendingConfirmation:
		if event.Token == nil {
			return &StreamRecord{PendingConfirmation: &ConfirmationToken{Reason: event.Reason}}
		}
		return &StreamRecord{PendingConfirmation: event.Token}
	default:
		return nil
	}
}

// ErrorPayload is the wire form of an UpdateError.
type ErrorPayload struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	LibraryCode *int      `json:"libraryCode,omitempty"`
}

// InstallUpdateResponse is the reply to an install update request.
type InstallUpdateResponse struct {
	Success bool           `json:"success,omitempty"`
	Outcome *UpdateOutcome `json:"outcome,omitempty"`
	Error   *ErrorPayload  `json:"error,omitempty"`
}

// ToInstallUpdateResponse converts the terminal result of an update session to its reply.
func ToInstallUpdateResponse(result *UpdateResult) *InstallUpdateResponse {
	if result == nil {
		return &InstallUpdateResponse{Error: &ErrorPayload{Code: ErrorInternalInvariantViolation, Message: "update session has no result"}}
	}
	if result.Succeeded() {
		return &InstallUpdateResponse{Success: true, Outcome: result.Outcome}
	}
	return &InstallUpdateResponse{Error: ToErrorPayload(result.Error)}
}

// ToErrorPayload converts the given error to its wire form.
func ToErrorPayload(err *UpdateError) *ErrorPayload {
	if err == nil {
		return &ErrorPayload{Code: ErrorUnknownFailure, Message: "unknown failure"}
	}
	payload := &ErrorPayload{Code: err.Code, Message: err.Message}
	if err.LibraryCode != 0 {
		code := err.LibraryCode
		payload.LibraryCode = &code
	}
	return payload
}

// LifecycleChange is the payload of a host lifecycle notification.
type LifecycleChange struct {
	State LifecycleState `json:"state"`
}
