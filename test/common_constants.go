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

package test

import (
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
)

//ActivityID test constant
const ActivityID = "testActivityId"

//Interval test constant
const Interval = 1 * time.Second

//FilePath test constant
const FilePath = "/tmp/fw.img"

//FileName test constant
const FileName = "fw.img"

//DeviceAddress test constant
const DeviceAddress = "AA:BB:CC:DD:EE:FF"

// NewRequest returns a new update request for the test firmware and device
func NewRequest() *types.UpdateRequest {
	return &types.UpdateRequest{
		FilePath: FilePath,
		FileName: FileName,
		DeviceID: DeviceAddress,
	}
}
