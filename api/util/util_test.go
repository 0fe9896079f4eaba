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

package util

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	defDuration := time.Duration(30) * time.Second
	emptyValue := time.Duration(400)

	tests := []struct {
		property string
		value    string
		expected time.Duration
	}{
		{"testValidDuration", "2m", time.Duration(2) * time.Minute},
		{"testValidDurationZero", "0s", time.Duration(0)},
		{"testValidDurationMillis", "10ms", time.Duration(10) * time.Millisecond},
		{"testInvalidDuration", "HalfMinute", defDuration},
		{"testNegativeDuration", "-10s", defDuration},
		{"testEmptyDuration", "", emptyValue},
	}

	for _, test := range tests {
		result := ParseDuration(test.property, test.value, defDuration, emptyValue)
		assert.Equal(t, test.expected, result, test.property)
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		percent  float64
		lastMax  float64
		expected float64
	}{
		{10, 0, 10},
		{55, 10, 55},
		{40, 55, 55},
		{120, 55, 100},
		{-5, 0, 0},
		{100, 100, 100},
		{math.NaN(), 60, 60},
		{math.Inf(1), 60, 100},
		{math.Inf(-1), 60, 60},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ClampProgress(test.percent, test.lastMax), "%v after %v", test.percent, test.lastMax)
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", NormalizeAddress(" aa:bb:cc:dd:ee:ff "))
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", NormalizeAddress("AA_BB_CC_DD_EE_FF"))
	assert.Equal(t, "AABBCCDDEEFF", AddressToTopic("aa:bb:cc:dd:ee:ff"))
}
