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
	"time"
)

// Envelope wraps every message exchanged over the host bridge and the remote updater library topics.
type Envelope struct {
	ActivityID string      `json:"activityId"`
	Timestamp  int64       `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// FromEnvelope decodes the raw bytes as Envelope, the payload is unmarshalled into the given parameter.
func FromEnvelope(bytes []byte, payload interface{}) (*Envelope, error) {
	envelope := &Envelope{Payload: payload}
	if err := json.Unmarshal(bytes, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}

// ToEnvelope encodes the given activity ID and payload as Envelope, stamped with the current time in milliseconds.
func ToEnvelope(activityID string, payload interface{}) ([]byte, error) {
	return json.Marshal(&Envelope{
		ActivityID: activityID,
		Timestamp:  time.Now().UnixMilli(),
		Payload:    payload,
	})
}
