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

import (
	"strings"
)

// UpdateRequest defines the payload of an install update request.
type UpdateRequest struct {
	FilePath string `json:"path"`
	FileName string `json:"fileName"`
	DeviceID string `json:"remoteId"`
}

// Validate checks that all request fields are set.
func (request *UpdateRequest) Validate() error {
	if request == nil {
		return NewUpdateError(ErrorInvalidRequest, "update request is missing")
	}
	if strings.TrimSpace(request.FilePath) == "" {
		return NewUpdateError(ErrorInvalidRequest, "firmware file path is not set")
	}
	if strings.TrimSpace(request.FileName) == "" {
		return NewUpdateError(ErrorInvalidRequest, "firmware file name is not set")
	}
	if strings.TrimSpace(request.DeviceID) == "" {
		return NewUpdateError(ErrorInvalidRequest, "remote device identifier is not set")
	}
	return nil
}

// Firmware returns the firmware file referenced by the request.
func (request *UpdateRequest) Firmware() *FirmwareFile {
	return &FirmwareFile{
		Path: request.FilePath,
		Name: request.FileName,
	}
}

// UpdateOutcome holds the metrics of a successfully completed update session.
type UpdateOutcome struct {
	SessionID                 string  `json:"sessionId"`
	TotalElapsedSeconds       float64 `json:"totalElapsedSeconds"`
	ImageUploadElapsedSeconds float64 `json:"imageUploadElapsedSeconds"`
}

// UpdateResult is the terminal resolution of an update request, exactly one of Outcome and Error is set.
type UpdateResult struct {
	Outcome *UpdateOutcome
	Error   *UpdateError
}

// Succeeded returns true if the result carries an outcome.
func (result *UpdateResult) Succeeded() bool {
	return result.Error == nil && result.Outcome != nil
}
