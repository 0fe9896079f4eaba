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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRequestValidate(t *testing.T) {
	tests := map[string]struct {
		request *UpdateRequest
		valid   bool
	}{
		"test_valid":          {request: testRequest, valid: true},
		"test_nil":            {request: nil},
		"test_no_path":        {request: &UpdateRequest{FileName: "fw.img", DeviceID: "AA:BB:CC:DD:EE:FF"}},
		"test_no_file_name":   {request: &UpdateRequest{FilePath: "/tmp/fw.img", DeviceID: "AA:BB:CC:DD:EE:FF"}},
		"test_blank_deviceid": {request: &UpdateRequest{FilePath: "/tmp/fw.img", FileName: "fw.img", DeviceID: "  "}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.request.Validate()
			if test.valid {
				assert.NoError(t, err)
				return
			}
			var updateErr *UpdateError
			require.True(t, errors.As(err, &updateErr))
			assert.Equal(t, ErrorInvalidRequest, updateErr.Code)
		})
	}
}

func TestUpdateRequestFirmware(t *testing.T) {
	assert.Equal(t, &FirmwareFile{Path: "/tmp/fw.img", Name: "fw.img"}, testRequest.Firmware())
}

func TestUpdateResultSucceeded(t *testing.T) {
	assert.True(t, (&UpdateResult{Outcome: &UpdateOutcome{}}).Succeeded())
	assert.False(t, (&UpdateResult{Error: NewUpdateError(ErrorBusy, "busy")}).Succeeded())
	assert.False(t, (&UpdateResult{}).Succeeded())
}
