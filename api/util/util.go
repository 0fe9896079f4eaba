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
	"strings"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/logger"
)

// ParseDuration converts the given string as time duration value, or returns defValue in case of an error or emptyValue if property is not set.
func ParseDuration(property, strValue string, defValue, emptyValue time.Duration) time.Duration {
	if strValue == "" {
		logger.Warn("Duration for property '%s' not set, using value %v", property, emptyValue)
		return emptyValue
	}
	duration, err := time.ParseDuration(strValue)
	if err != nil {
		logger.Warn("Cannot parse duration for property '%s': %v, using default value %v", property, strValue, defValue)
		return defValue
	}
	if duration < 0 {
		logger.Warn("Negative duration for property '%s': %v, using default value %v", property, strValue, defValue)
		return defValue
	}
	return duration
}

// ClampProgress bounds the given percent to [0, 100] and to the last reported maximum.
// NaN is reported as the last maximum.
func ClampProgress(percent, lastMax float64) float64 {
	if math.IsNaN(percent) {
		return lastMax
	}
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent < lastMax {
		return lastMax
	}
	return percent
}

// NormalizeAddress returns the upper-case, colon-separated form of a Bluetooth device address.
func NormalizeAddress(address string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(address), "_", ":"))
}

// AddressToTopic returns the topic segment for a Bluetooth device address.
func AddressToTopic(address string) string {
	return strings.ReplaceAll(NormalizeAddress(address), ":", "")
}
