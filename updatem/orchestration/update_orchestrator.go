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
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/config"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/updatem/confirmation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	connectTimeoutDefault      = 30 * time.Second
	confirmationTimeoutDefault = 2 * time.Minute
)

type updateOrchestrator struct {
	sessionLock sync.Mutex
	session     *updateSession

	lifecycleLock  sync.Mutex
	lifecycleState types.LifecycleState

	resolver    api.DeviceResolver
	provider    api.UpdateLibraryProvider
	stream      api.EventStream
	coordinator api.ConfirmationCoordinator

	params              types.SuotaParameters
	connectTimeout      time.Duration
	confirmationTimeout time.Duration
	eventBufferSize     int
}

// NewUpdateOrchestrator creates a new single-flight update orchestrator.
// The SUOTA parameters and lifecycle states of the given configuration are validated once here.
func NewUpdateOrchestrator(cfg *config.Config, resolver api.DeviceResolver, provider api.UpdateLibraryProvider,
	stream api.EventStream) (api.UpdateOrchestrator, error) {
	params := types.DefaultSuotaParameters()
	if cfg.Suota != nil {
		params = *cfg.Suota
	}
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid SUOTA parameters")
	}
	threshold, err := types.ParseLifecycleState(cfg.LifecycleThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "invalid lifecycle threshold")
	}
	initialState, err := types.ParseLifecycleState(cfg.InitialLifecycleState)
	if err != nil {
		return nil, errors.Wrap(err, "invalid initial lifecycle state")
	}
	logger.Debug("using SUOTA parameters: %s", params)

	return &updateOrchestrator{
		lifecycleState:      initialState,
		resolver:            resolver,
		provider:            provider,
		stream:              stream,
		coordinator:         confirmation.NewCoordinator(newStreamPresenter(stream), threshold),
		params:              params,
		connectTimeout:      util.ParseDuration("connect-timeout", cfg.ConnectTimeout, connectTimeoutDefault, connectTimeoutDefault),
		confirmationTimeout: util.ParseDuration("confirmation-timeout", cfg.ConfirmationTimeout, confirmationTimeoutDefault, confirmationTimeoutDefault),
		eventBufferSize:     cfg.EventBufferSize,
	}, nil
}

// StartUpdate accepts the request and drives its update session in a separate goroutine.
// Invalid requests and requests arriving while another session is active are resolved immediately.
func (orchestrator *updateOrchestrator) StartUpdate(ctx context.Context, request *types.UpdateRequest) <-chan *types.UpdateResult {
	results := make(chan *types.UpdateResult, 1)
	if err := request.Validate(); err != nil {
		results <- &types.UpdateResult{Error: toUpdateError(err, types.ErrorInvalidRequest)}
		return results
	}
	session, err := orchestrator.acquireSession(ctx, request, results)
	if err != nil {
		logger.Warn("rejecting update of %s: %v", request.DeviceID, err)
		results <- &types.UpdateResult{Error: err}
		return results
	}
	logger.Info("[%s] starting update of %s with firmware %s", session.id, request.DeviceID, request.FilePath)
	go orchestrator.run(session)
	return results
}

// InstallUpdate starts an update session and waits for its result.
func (orchestrator *updateOrchestrator) InstallUpdate(ctx context.Context, request *types.UpdateRequest) (*types.UpdateOutcome, error) {
	result := <-orchestrator.StartUpdate(ctx, request)
	if !result.Succeeded() {
		return nil, result.Error
	}
	return result.Outcome, nil
}

// Cancel requests the active session to abort, the session resolves as cancelled at its next safe point.
func (orchestrator *updateOrchestrator) Cancel() error {
	orchestrator.sessionLock.Lock()
	defer orchestrator.sessionLock.Unlock()

	if orchestrator.session == nil {
		return errors.New("no active update session")
	}
	logger.Info("[%s] cancel requested", orchestrator.session.id)
	orchestrator.session.requestCancel()
	return nil
}

func (orchestrator *updateOrchestrator) ActiveSession() (string, bool) {
	orchestrator.sessionLock.Lock()
	defer orchestrator.sessionLock.Unlock()

	if orchestrator.session == nil {
		return "", false
	}
	return orchestrator.session.id, true
}

// SetLifecycleState records the host application lifecycle state and re-offers deferred confirmations.
func (orchestrator *updateOrchestrator) SetLifecycleState(state types.LifecycleState) {
	orchestrator.lifecycleLock.Lock()
	previous := orchestrator.lifecycleState
	orchestrator.lifecycleState = state
	orchestrator.lifecycleLock.Unlock()

	logger.Debug("host application lifecycle state changed from %s to %s", previous, state)
	orchestrator.coordinator.OnLifecycleChange(state)
}

func (orchestrator *updateOrchestrator) currentLifecycleState() types.LifecycleState {
	orchestrator.lifecycleLock.Lock()
	defer orchestrator.lifecycleLock.Unlock()
	return orchestrator.lifecycleState
}

func (orchestrator *updateOrchestrator) acquireSession(ctx context.Context, request *types.UpdateRequest,
	results chan *types.UpdateResult) (*updateSession, *types.UpdateError) {
	orchestrator.sessionLock.Lock()
	defer orchestrator.sessionLock.Unlock()

	if orchestrator.session != nil {
		return nil, types.NewUpdateErrorf(types.ErrorBusy, "update session %s is in progress", orchestrator.session.id)
	}
	orchestrator.session = newUpdateSession(ctx, uuid.New().String(), request, results)
	return orchestrator.session, nil
}

func (orchestrator *updateOrchestrator) releaseSession(session *updateSession) {
	orchestrator.sessionLock.Lock()
	defer orchestrator.sessionLock.Unlock()

	if orchestrator.session == session {
		orchestrator.session = nil
	}
}

func toUpdateError(err error, defaultCode types.ErrorCode) *types.UpdateError {
	var updateErr *types.UpdateError
	if errors.As(err, &updateErr) {
		return updateErr
	}
	return types.NewUpdateError(defaultCode, err.Error())
}
