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

import "fmt"

// EventKind defines the kind of an update event
type EventKind string

const (
	// EventListen acknowledges a new event stream subscription.
	EventListen EventKind = "listen"
	// EventReady denotes that the remote device is ready to be configured.
	EventReady EventKind = "ready"
	// EventProgress reports the image upload progress.
	EventProgress EventKind = "progress"
	// EventLog reports an updater library log entry.
	EventLog EventKind = "log"
	// EventPendingConfirmation denotes that a user confirmation (e.g. manual reboot) is required.
	EventPendingConfirmation EventKind = "pendingConfirmation"
	// EventSuccess denotes that the update completed successfully.
	EventSuccess EventKind = "success"
	// EventFailure denotes that the update failed.
	EventFailure EventKind = "failure"
)

// LogEntry holds the details of an updater library log event.
type LogEntry struct {
	Stage   string `json:"stage"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ElapsedMetrics holds the timing of a successful update.
type ElapsedMetrics struct {
	TotalElapsedSeconds       float64 `json:"totalElapsedSeconds"`
	ImageUploadElapsedSeconds float64 `json:"imageUploadElapsedSeconds"`
}

// UpdateEvent is a tagged variant, Kind determines which of the other fields is set.
type UpdateEvent struct {
	Kind    EventKind
	Percent float64
	Log     *LogEntry
	Reason  string
	Token   *ConfirmationToken
	Metrics *ElapsedMetrics
	Error   *UpdateError
}

// NewListenEvent creates a listen acknowledgement event.
func NewListenEvent() *UpdateEvent {
	return &UpdateEvent{Kind: EventListen}
}

// NewReadyEvent creates a device ready event.
func NewReadyEvent() *UpdateEvent {
	return &UpdateEvent{Kind: EventReady}
}

// NewProgressEvent creates an upload progress event.
func NewProgressEvent(percent float64) *UpdateEvent {
	return &UpdateEvent{Kind: EventProgress, Percent: percent}
}

// NewLogEvent creates a log event.
func NewLogEvent(stage, level, message string) *UpdateEvent {
	return &UpdateEvent{Kind: EventLog, Log: &LogEntry{Stage: stage, Level: level, Message: message}}
}

// NewPendingConfirmationEvent creates a pending confirmation event with the given reason, the token is assigned later on by the session.
func NewPendingConfirmationEvent(reason string) *UpdateEvent {
	return &UpdateEvent{Kind: EventPendingConfirmation, Reason: reason}
}

// NewSuccessEvent creates a success event with the given elapsed metrics.
func NewSuccessEvent(totalElapsedSeconds, imageUploadElapsedSeconds float64) *UpdateEvent {
	return &UpdateEvent{
		Kind: EventSuccess,
		Metrics: &ElapsedMetrics{
			TotalElapsedSeconds:       totalElapsedSeconds,
			ImageUploadElapsedSeconds: imageUploadElapsedSeconds,
		},
	}
}

// NewFailureEvent creates a failure event for the given error.
func NewFailureEvent(err *UpdateError) *UpdateEvent {
	return &UpdateEvent{Kind: EventFailure, Error: err}
}

// IsTerminal returns true for success and failure events.
func (event *UpdateEvent) IsTerminal() bool {
	return event.Kind == EventSuccess || event.Kind == EventFailure
}

func (event *UpdateEvent) String() string {
	switch event.Kind {
	case EventProgress:
		return fmt.Sprintf("%s(%.1f)", event.Kind, event.Percent)
	case EventLog:
		if event.Log != nil {
			return fmt.Sprintf("%s(%s/%s: %s)", event.Kind, event.Log.Stage, event.Log.Level, event.Log.Message)
		}
	case EventSuccess:
		if event.Metrics != nil {
			return fmt.Sprintf("%s(%.1f, %.1f)", event.Kind, event.Metrics.TotalElapsedSeconds, event.Metrics.ImageUploadElapsedSeconds)
		}
	case EventFailure:
		if event.Error != nil {
			return fmt.Sprintf("%s(%s)", event.Kind, event.Error)
		}
	}
	return string(event.Kind)
}
