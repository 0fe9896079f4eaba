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
	"sync"
	"testing"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
)

// AssertWithTimeout asserts that an operation is completed within a certain period of time
func AssertWithTimeout(t *testing.T, waitGroup *sync.WaitGroup, testTimeout time.Duration) {
	testWaitChan := make(chan struct{})
	go func() {
		defer close(testWaitChan)
		waitGroup.Wait()
	}()
	select {
	case <-testWaitChan:
		return // completed normally
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for ", testTimeout)
	}
}

// ExpectEvent receives the next update event or fails the test after the given timeout
func ExpectEvent(t *testing.T, events <-chan *types.UpdateEvent, testTimeout time.Duration) *types.UpdateEvent {
	t.Helper()
	select {
	case event, ok := <-events:
		if !ok {
			t.Fatal("event channel closed")
		}
		return event
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for event after ", testTimeout)
	}
	return nil
}

// AssertNoEvent asserts that no update event is received within the given period of time
func AssertNoEvent(t *testing.T, events <-chan *types.UpdateEvent, wait time.Duration) {
	t.Helper()
	select {
	case event, ok := <-events:
		if ok {
			t.Fatal("unexpected event ", event)
		}
	case <-time.After(wait):
	}
}

// ExpectResult receives the update result or fails the test after the given timeout
func ExpectResult(t *testing.T, results <-chan *types.UpdateResult, testTimeout time.Duration) *types.UpdateResult {
	t.Helper()
	select {
	case result := <-results:
		return result
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for result after ", testTimeout)
	}
	return nil
}
