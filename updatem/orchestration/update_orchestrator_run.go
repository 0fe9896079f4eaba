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
	"fmt"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/updatem/adapter"
)

type offerResult struct {
	outcome types.OfferOutcome
	err     error
}

func (orchestrator *updateOrchestrator) run(session *updateSession) {
	var result *types.UpdateResult
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[%s] unexpected failure: %v", session.id, r)
			result = failed(types.NewUpdateErrorf(types.ErrorInternalInvariantViolation, "Unexpected failure: %v", r))
		}
		orchestrator.finish(session, result)
	}()
	result = orchestrator.drive(session)
}

func (orchestrator *updateOrchestrator) drive(session *updateSession) *types.UpdateResult {
	// resolving may already open the link, the connect timeout covers it as well
	connectDeadline := time.Now().Add(orchestrator.connectTimeout)
	session.setState(types.SessionResolving)
	handle, err := orchestrator.resolveDevice(session, connectDeadline)
	if err != nil {
		return failed(err)
	}
	session.handle = handle

	session.setState(types.SessionConnecting)
	libraryAdapter, adapterErr := adapter.New(session.id, orchestrator.provider, handle, orchestrator.eventBufferSize)
	if adapterErr != nil {
		return failed(toUpdateError(adapterErr, types.ErrorLibraryFailure))
	}
	session.adapter = libraryAdapter
	libraryAdapter.Connect()

	connectTimer := time.NewTimer(time.Until(connectDeadline))
	defer connectTimer.Stop()
	for {
		select {
		case <-session.ctx.Done():
			libraryAdapter.Cancel()
			return failed(session.interruption())
		case <-connectTimer.C:
			libraryAdapter.Cancel()
			return failed(types.NewUpdateErrorf(types.ErrorTimeout, "Connection to %s not established in %v", handle.Address(), orchestrator.connectTimeout))
		case event := <-libraryAdapter.Events():
			if result := orchestrator.handleEvent(session, event, connectTimer); result != nil {
				return result
			}
		}
	}
}

func (orchestrator *updateOrchestrator) resolveDevice(session *updateSession, deadline time.Time) (api.DeviceHandle, *types.UpdateError) {
	ctx, cancel := context.WithDeadline(session.ctx, deadline)
	defer cancel()

	handle, err := orchestrator.resolver.Resolve(ctx, session.request.DeviceID)
	if err != nil {
		if session.ctx.Err() != nil {
			return nil, session.interruption()
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, types.NewUpdateErrorf(types.ErrorTimeout, "Remote device %s not resolved in %v", session.request.DeviceID, orchestrator.connectTimeout)
		}
		return nil, toUpdateError(err, types.ErrorDeviceNotFound)
	}
	if handle == nil {
		return nil, types.NewUpdateErrorf(types.ErrorDeviceNotFound, "Remote device %s not found", session.request.DeviceID)
	}
	logger.Debug("[%s] resolved %s to %s", session.id, session.request.DeviceID, handle.Address())
	return handle, nil
}

// handleEvent applies a single adapter event to the session, a non-nil result terminates it
func (orchestrator *updateOrchestrator) handleEvent(session *updateSession, event *types.UpdateEvent, connectTimer *time.Timer) *types.UpdateResult {
	state := session.getState()
	logger.Trace("[%s] handling %s in state %s", session.id, event, state)

	switch event.Kind {
	case types.EventLog:
		if state == types.SessionConnecting && event.Log != nil && event.Log.Stage == adapter.ConnectionStage {
			session.setState(types.SessionAwaitingReady)
		}
		orchestrator.stream.Publish(event)
	case types.EventReady:
		if state != types.SessionConnecting && state != types.SessionAwaitingReady {
			logger.Warn("[%s] unexpected device ready in state %s, ignoring it", session.id, state)
			return nil
		}
		connectTimer.Stop()
		session.setState(types.SessionConfiguring)
		session.adapter.Configure(orchestrator.params)
		session.uploadStart = time.Now()
		session.adapter.StartUpload(session.request.Firmware())
		session.setState(types.SessionUploading)
	case types.EventProgress:
		if state != types.SessionUploading {
			logger.Warn("[%s] unexpected progress %.1f in state %s, dropping it", session.id, event.Percent, state)
			return nil
		}
		percent := util.ClampProgress(event.Percent, session.maxProgress)
		if percent != event.Percent {
			logger.Debug("[%s] progress %.1f clamped to %.1f", session.id, event.Percent, percent)
		}
		session.maxProgress = percent
		orchestrator.stream.Publish(types.NewProgressEvent(percent))
	case types.EventPendingConfirmation:
		if state != types.SessionUploading {
			logger.Warn("[%s] unexpected confirmation request in state %s, dropping it", session.id, state)
			return nil
		}
		return orchestrator.awaitConfirmation(session, event.Reason)
	case types.EventSuccess:
		if state != types.SessionUploading {
			return failed(types.NewUpdateErrorf(types.ErrorInternalInvariantViolation, "Success reported in state %s", state))
		}
		return succeeded(session, event.Metrics)
	case types.EventFailure:
		if event.Error == nil {
			return failed(types.NewUpdateError(types.ErrorUnknownFailure, "Failure reported without error"))
		}
		return failed(event.Error)
	default:
		logger.Warn("[%s] unexpected event %s, dropping it", session.id, event)
	}
	return nil
}

// awaitConfirmation offers the token off the session goroutine.
// The coordinator answers at once unless its presenter blocks, the confirmation timeout bounds that case.
func (orchestrator *updateOrchestrator) awaitConfirmation(session *updateSession, reason string) *types.UpdateResult {
	session.setState(types.SessionAwaitingConfirmation)
	token := types.NewConfirmationToken(session.id, reason)

	offered := make(chan offerResult, 1)
	go func() {
		outcome, err := orchestrator.coordinator.Offer(token, orchestrator.currentLifecycleState())
		offered <- offerResult{outcome: outcome, err: err}
	}()

	select {
	case offer := <-offered:
		if offer.err != nil {
			logger.ErrorErr(offer.err, "[%s] cannot offer confirmation %s", session.id, token.ID)
		} else {
			logger.Info("[%s] confirmation %s %s", session.id, token.ID, offer.outcome)
		}
	case <-time.After(orchestrator.confirmationTimeout):
		logger.Warn("[%s] confirmation %s not resolved in %v, continuing", session.id, token.ID, orchestrator.confirmationTimeout)
	case <-session.ctx.Done():
		session.adapter.Cancel()
		return failed(session.interruption())
	}
	session.setState(types.SessionUploading)
	return nil
}

func (orchestrator *updateOrchestrator) finish(session *updateSession, result *types.UpdateResult) {
	if result == nil {
		result = failed(types.NewUpdateError(types.ErrorInternalInvariantViolation, "Update session ended without result"))
	}
	session.setState(terminalState(result))

	if session.adapter != nil {
		session.adapter.Close()
	}
	if session.handle != nil {
		if err := releaseHandle(session.handle); err != nil {
			logger.WarnErr(err, "[%s] cannot release %s", session.id, session.handle.Address())
		}
	}
	orchestrator.coordinator.Discard(session.id)
	session.cancel()
	orchestrator.releaseSession(session)

	if result.Succeeded() {
		logger.Info("[%s] update of %s succeeded in %.1f seconds", session.id, session.request.DeviceID, result.Outcome.TotalElapsedSeconds)
	} else {
		logger.Error("[%s] update of %s failed: %v", session.id, session.request.DeviceID, result.Error)
	}
	session.resolve(result)
}

func releaseHandle(handle api.DeviceHandle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handle.Release()
}

func failed(err *types.UpdateError) *types.UpdateResult {
	return &types.UpdateResult{Error: err}
}

func succeeded(session *updateSession, metrics *types.ElapsedMetrics) *types.UpdateResult {
	outcome := &types.UpdateOutcome{SessionID: session.id}
	if metrics != nil {
		outcome.TotalElapsedSeconds = metrics.TotalElapsedSeconds
		outcome.ImageUploadElapsedSeconds = metrics.ImageUploadElapsedSeconds
	} else {
		outcome.TotalElapsedSeconds = time.Since(session.startTime).Seconds()
		outcome.ImageUploadElapsedSeconds = time.Since(session.uploadStart).Seconds()
	}
	return &types.UpdateResult{Outcome: outcome}
}

func terminalState(result *types.UpdateResult) types.SessionState {
	if result.Succeeded() {
		return types.SessionSucceeded
	}
	if result.Error != nil && result.Error.Code == types.ErrorCancelled {
		return types.SessionCancelled
	}
	return types.SessionFailed
}
