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
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

// progressNotifier reports the first progress at once and then at most one progress per interval, always the latest one.
type progressNotifier struct {
	lock          sync.Mutex
	internalTimer *time.Timer
	generation    int
	interval      time.Duration

	publish func(record *types.StreamRecord)

	percent         float64
	reportedPercent float64
	pending         bool
}

func newProgressNotifier(interval time.Duration, publish func(record *types.StreamRecord)) *progressNotifier {
	return &progressNotifier{
		interval: interval,
		publish:  publish,
	}
}

func (t *progressNotifier) set(percent float64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	logger.Trace("progress updated from %.1f to %.1f", t.percent, percent)
	t.percent = percent
	t.pending = true
	if t.internalTimer == nil {
		t.report()
		t.startTimer()
	}
}

// flush reports the pending progress, if any, and restarts the interval
func (t *progressNotifier) flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.stopTimer()
	if t.pending {
		t.report()
	}
}

func (t *progressNotifier) stop() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.stopTimer()
	t.pending = false
}

// notifyEvent reports the latest pending progress and keeps the interval running until nothing is pending
func (t *progressNotifier) notifyEvent(generation int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.internalTimer == nil || generation != t.generation {
		return
	}
	if !t.pending || t.percent == t.reportedPercent {
		t.internalTimer = nil
		t.pending = false
		return
	}
	t.report()
	t.startTimer()
}

// must be called with the lock held
func (t *progressNotifier) report() {
	t.pending = false
	t.reportedPercent = t.percent
	percent := t.percent
	t.publish(&types.StreamRecord{Progress: &percent})
}

// must be called with the lock held
func (t *progressNotifier) startTimer() {
	t.generation++
	generation := t.generation
	t.internalTimer = time.AfterFunc(t.interval, func() {
		t.notifyEvent(generation)
	})
}

// must be called with the lock held
func (t *progressNotifier) stopTimer() {
	if t.internalTimer != nil {
		t.internalTimer.Stop()
		t.internalTimer = nil
	}
}
