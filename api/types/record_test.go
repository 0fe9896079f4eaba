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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStreamRecord(t *testing.T) {
	token := &ConfirmationToken{ID: "token-id", SessionID: "session-id", Reason: "reboot"}
	pending := NewPendingConfirmationEvent("reboot")
	pending.Token = token

	tests := map[string]struct {
		event    *UpdateEvent
		expected string
	}{
		"test_listen":               {event: NewListenEvent(), expected: `{"event":"listen"}`},
		"test_progress":             {event: NewProgressEvent(55), expected: `{"progress":55}`},
		"test_progress_zero":        {event: NewProgressEvent(0), expected: `{"progress":0}`},
		"test_log":                  {event: NewLogEvent("SEND_BLOCK", "BLOCK", "block 1"), expected: `{"log":{"stage":"SEND_BLOCK","level":"BLOCK","message":"block 1"}}`},
		"test_pending_confirmation": {event: pending, expected: `{"pendingConfirmation":{"token":"token-id","reason":"reboot"}}`},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			bytes, err := json.Marshal(ToStreamRecord(test.event))
			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(bytes))
		})
	}

	t.Run("test_not_streamed", func(t *testing.T) {
		assert.Nil(t, ToStreamRecord(nil))
		assert.Nil(t, ToStreamRecord(NewReadyEvent()))
		assert.Nil(t, ToStreamRecord(NewSuccessEvent(12.4, 9.1)))
		assert.Nil(t, ToStreamRecord(NewFailureEvent(NewLibraryError(0x04))))
	})
}

func TestToInstallUpdateResponse(t *testing.T) {
	t.Run("test_success", func(t *testing.T) {
		bytes, err := json.Marshal(ToInstallUpdateResponse(&UpdateResult{Outcome: &UpdateOutcome{SessionID: "s", TotalElapsedSeconds: 12.4, ImageUploadElapsedSeconds: 9.1}}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"outcome":{"sessionId":"s","totalElapsedSeconds":12.4,"imageUploadElapsedSeconds":9.1}}`, string(bytes))
	})

	t.Run("test_library_failure", func(t *testing.T) {
		bytes, err := json.Marshal(ToInstallUpdateResponse(&UpdateResult{Error: NewLibraryError(0x04)}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":{"code":"CrcMismatch","message":"Patch Data CRC mismatch.","libraryCode":4}}`, string(bytes))
	})

	t.Run("test_busy", func(t *testing.T) {
		bytes, err := json.Marshal(ToInstallUpdateResponse(&UpdateResult{Error: NewUpdateError(ErrorBusy, "update in progress")}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":{"code":"Busy","message":"update in progress"}}`, string(bytes))
	})

	t.Run("test_nil_result", func(t *testing.T) {
		response := ToInstallUpdateResponse(nil)
		assert.Equal(t, ErrorInternalInvariantViolation, response.Error.Code)
	})
}

func TestUpdateEventString(t *testing.T) {
	assert.Equal(t, "progress(55.0)", NewProgressEvent(55).String())
	assert.Equal(t, "success(12.4, 9.1)", NewSuccessEvent(12.4, 9.1).String())
	assert.Equal(t, "failure(CrcMismatch: Patch Data CRC mismatch.)", NewFailureEvent(NewLibraryError(0x04)).String())
	assert.Equal(t, "ready", NewReadyEvent().String())
	assert.True(t, NewSuccessEvent(1, 1).IsTerminal())
	assert.False(t, NewReadyEvent().IsTerminal())
}
