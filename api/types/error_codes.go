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
	"fmt"
)

// ErrorCode defines the stable machine code of an update failure.
type ErrorCode string

const (
	// ErrorBusy denotes that another update session is active.
	ErrorBusy ErrorCode = "Busy"
	// ErrorBluetoothUnavailable denotes that no usable Bluetooth adapter is present.
	ErrorBluetoothUnavailable ErrorCode = "BluetoothUnavailable"
	// ErrorDeviceNotFound denotes that the remote device identifier cannot be resolved.
	ErrorDeviceNotFound ErrorCode = "DeviceNotFound"
	// ErrorConnectionLost denotes that the link to the remote device dropped.
	ErrorConnectionLost ErrorCode = "ConnectionLost"
	// ErrorLibraryFailure denotes that an updater library operation could not be invoked.
	ErrorLibraryFailure ErrorCode = "LibraryFailure"
	// ErrorTimeout denotes that the connection to the remote device was not established in time.
	ErrorTimeout ErrorCode = "Timeout"
	// ErrorCancelled denotes that the update session was cancelled.
	ErrorCancelled ErrorCode = "Cancelled"
	// ErrorInternalInvariantViolation denotes an unexpected internal state.
	ErrorInternalInvariantViolation ErrorCode = "InternalInvariantViolation"
	// ErrorInvalidRequest denotes an update request with missing fields.
	ErrorInvalidRequest ErrorCode = "InvalidRequest"
	// ErrorUnknownFailure denotes an updater library error code that is not known.
	ErrorUnknownFailure ErrorCode = "UnknownFailure"
)

// UpdateError defines a typed update failure with a stable code and a human-readable message.
type UpdateError struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	LibraryCode int       `json:"libraryCode,omitempty"`
}

// NewUpdateError creates an UpdateError with the given code and message.
func NewUpdateError(code ErrorCode, message string) *UpdateError {
	return &UpdateError{Code: code, Message: message}
}

// NewUpdateErrorf creates an UpdateError with the given code and formatted message.
func NewUpdateErrorf(code ErrorCode, format string, args ...interface{}) *UpdateError {
	return &UpdateError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (err *UpdateError) Error() string {
	return fmt.Sprintf("%s: %s", err.Code, err.Message)
}

type libraryError struct {
	code    ErrorCode
	message string
}

// updater library error codes, SUOTA protocol codes are below 0x100 and application codes above
var libraryErrors = map[int]libraryError{
	0x01: {"SpotaServiceStarted", "SPOTA service started instead of SUOTA."},
	0x03: {"ServiceExit", "Forced exit of SUOTA service."},
	0x04: {"CrcMismatch", "Patch Data CRC mismatch."},
	0x05: {"PatchLengthError", "Received patch Length not equal to PATCH_LEN characteristic value."},
	0x06: {"ExternalMemoryError", "Writing to external device failed."},
	0x07: {"InternalMemoryError", "Not enough internal memory space for patch."},
	0x08: {"InvalidMemoryType", "Invalid memory device."},
	0x09: {"ApplicationError", "Application error."},
	0x11: {"InvalidImageBank", "Invalid image bank."},
	0x12: {"InvalidImageHeader", "Invalid image header."},
	0x13: {"InvalidImageSize", "Invalid image size."},
	0x14: {"InvalidProductHeader", "Invalid product header."},
	0x15: {"SameImageError", "Same Image Error."},
	0x16: {"ExternalMemoryReadError", "Failed to read from external memory device."},

	0xffff: {"SuotaNotSupported", "The remote device does not support SUOTA."},
	0xfffe: {"ServiceDiscoveryError", "Error discovering services."},
	0xfffd: {"GattOperationError", "Communication error."},
	0xfffc: {"MtuRequestFailed", "Failed to request MTU size."},
	0xfffb: {"FirmwareLoadFailed", "Failed to load the firmware file."},
	0xfffa: {"InvalidFirmwareCrc", "Firmware validation failed."},
	0xfff9: {"UploadTimeout", "File upload timeout."},
	0xfff8: {"ProtocolError", "Unexpected protocol behavior."},
	0xfff7: {"NotConnected", "Not connected to a BLE device to perform SUOTA."},
}

// NewLibraryError maps the given updater library error code to an UpdateError.
// Codes that are not part of the table are reported as ErrorUnknownFailure.
func NewLibraryError(libraryCode int) *UpdateError {
	known, ok := libraryErrors[libraryCode]
	if !ok {
		return &UpdateError{
			Code:        ErrorUnknownFailure,
			Message:     fmt.Sprintf("Unknown error code 0x%x.", libraryCode),
			LibraryCode: libraryCode,
		}
	}
	return &UpdateError{
		Code:        known.code,
		Message:     known.message,
		LibraryCode: libraryCode,
	}
}

// IsLibraryErrorCode returns true if the given code is part of the updater library error table.
func IsLibraryErrorCode(code ErrorCode) bool {
	for _, known := range libraryErrors {
		if known.code == code {
			return true
		}
	}
	return false
}
