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

package orchestration

import (
	"context"
	"sync"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/updatem/adapter"
)

type updateSession struct {
	id        string
	request   *types.UpdateRequest
	startTime time.Time

	ctx    context.Context
	cancel context.CancelFunc

	cancelLock      sync.Mutex
	cancelRequested bool

	stateLock sync.Mutex
	state     types.SessionState

	handle      api.DeviceHandle
	adapter     adapter.Adapter
	maxProgress float64
	uploadStart time.Time

	results     chan *types.UpdateResult
	resolveOnce sync.Once
}

func newUpdateSession(ctx context.Context, id string, request *types.UpdateRequest, results chan *types.UpdateResult) *updateSession {
	sessionCtx, cancel := context.WithCancel(ctx)
	return &updateSession{
		id:        id,
		request:   request,
		startTime: time.Now(),
		ctx:       sessionCtx,
		cancel:    cancel,
		state:     types.SessionIdle,
		results:   results,
	}
}

func (session *updateSession) setState(state types.SessionState) {
	session.stateLock.Lock()
	defer session.stateLock.Unlock()

	logger.Debug("[%s] %s -> %s", session.id, session.state, state)
	session.state = state
}

func (session *updateSession) getState() types.SessionState {
	session.stateLock.Lock()
	defer session.stateLock.Unlock()
	return session.state
}

func (session *updateSession) requestCancel() {
	session.cancelLock.Lock()
	session.cancelRequested = true
	session.cancelLock.Unlock()
	session.cancel()
}

// interruption returns the error for a done session context
func (session *updateSession) interruption() *types.UpdateError {
	session.cancelLock.Lock()
	defer session.cancelLock.Unlock()

	if session.cancelRequested {
		return types.NewUpdateError(types.ErrorCancelled, "Update cancelled")
	}
	return types.NewUpdateErrorf(types.ErrorCancelled, "Update interrupted: %v", session.ctx.Err())
}

// resolve delivers the result exactly once, later attempts are logged and dropped
func (session *updateSession) resolve(result *types.UpdateResult) bool {
	resolved := false
	session.resolveOnce.Do(func() {
		session.results <- result
		resolved = true
	})
	if !resolved {
		logger.Warn("[%s] session already resolved, dropping result", session.id)
	}
	return resolved
}
