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

package agent

import (
	"sync"
	"testing"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api/types"

	"github.com/stretchr/testify/assert"
)

type recordCollector struct {
	lock     sync.Mutex
	progress []float64
}

func (collector *recordCollector) publish(record *types.StreamRecord) {
	collector.lock.Lock()
	defer collector.lock.Unlock()
	collector.progress = append(collector.progress, *record.Progress)
}

func (collector *recordCollector) reported() []float64 {
	collector.lock.Lock()
	defer collector.lock.Unlock()
	return append([]float64{}, collector.progress...)
}

func TestProgressNotifierThrottles(t *testing.T) {
	collector := &recordCollector{}
	notifier := newProgressNotifier(100*time.Millisecond, collector.publish)
	defer notifier.stop()

	notifier.set(10)
	notifier.set(20)
	notifier.set(30)
	assert.Equal(t, []float64{10}, collector.reported())

	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]float64{10, 30}, collector.reported())
	}, interval, 10*time.Millisecond)
}

func TestProgressNotifierKeepsIntervalAfterDeferredReport(t *testing.T) {
	collector := &recordCollector{}
	notifier := newProgressNotifier(200*time.Millisecond, collector.publish)
	defer notifier.stop()

	notifier.set(10)
	notifier.set(20)
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]float64{10, 20}, collector.reported())
	}, interval, 10*time.Millisecond)

	// the deferred report starts a new interval
	notifier.set(30)
	assert.Equal(t, []float64{10, 20}, collector.reported())
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]float64{10, 20, 30}, collector.reported())
	}, interval, 10*time.Millisecond)

	t.Run("test_report_after_quiet_interval", func(t *testing.T) {
		time.Sleep(400 * time.Millisecond)
		notifier.set(40)
		assert.Equal(t, []float64{10, 20, 30, 40}, collector.reported())
	})
}

func TestProgressNotifierFlush(t *testing.T) {
	collector := &recordCollector{}
	notifier := newProgressNotifier(interval, collector.publish)
	defer notifier.stop()

	notifier.set(10)
	notifier.set(40)
	notifier.flush()
	assert.Equal(t, []float64{10, 40}, collector.reported())

	t.Run("test_flush_without_pending", func(t *testing.T) {
		notifier.flush()
		assert.Equal(t, []float64{10, 40}, collector.reported())
	})
	t.Run("test_report_after_flush", func(t *testing.T) {
		notifier.set(50)
		assert.Equal(t, []float64{10, 40, 50}, collector.reported())
	})
}

func TestProgressNotifierStop(t *testing.T) {
	collector := &recordCollector{}
	notifier := newProgressNotifier(50*time.Millisecond, collector.publish)

	notifier.set(10)
	notifier.set(20)
	notifier.stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []float64{10}, collector.reported())
}
