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

package confirmation

import (
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"

	"github.com/pkg/errors"
)

// ErrAlreadyPresented is returned when a token is offered after it was presented.
var ErrAlreadyPresented = errors.New("confirmation already presented")

type coordinator struct {
	lock      sync.Mutex
	presenter api.ConfirmationPresenter
	threshold types.LifecycleState

	deferred  map[string]*types.ConfirmationToken
	presented map[string]string
}

// NewCoordinator creates a coordinator that presents tokens only when the host application is at or above the given lifecycle threshold.
func NewCoordinator(presenter api.ConfirmationPresenter, threshold types.LifecycleState) api.ConfirmationCoordinator {
	return &coordinator{
		presenter: presenter,
		threshold: threshold,
		deferred:  map[string]*types.ConfirmationToken{},
		presented: map[string]string{},
	}
}

// Offer presents the token right away or retains it until the host application reaches the threshold state.
func (coordinator *coordinator) Offer(token *types.ConfirmationToken, state types.LifecycleState) (types.OfferOutcome, error) {
	if token == nil {
		return "", errors.New("confirmation token is missing")
	}
	coordinator.lock.Lock()
	defer coordinator.lock.Unlock()

	if _, ok := coordinator.presented[token.ID]; ok {
		return types.OfferPresented, ErrAlreadyPresented
	}
	if !state.IsAtLeast(coordinator.threshold) {
		logger.Debug("[%s] host application is %s, deferring confirmation %s", token.SessionID, state, token.ID)
		coordinator.deferred[token.ID] = token
		return types.OfferDeferred, nil
	}
	if err := coordinator.present(token); err != nil {
		return "", err
	}
	return types.OfferPresented, nil
}

// OnLifecycleChange presents all deferred tokens once the threshold state is reached.
func (coordinator *coordinator) OnLifecycleChange(state types.LifecycleState) {
	coordinator.lock.Lock()
	defer coordinator.lock.Unlock()

	if !state.IsAtLeast(coordinator.threshold) || len(coordinator.deferred) == 0 {
		return
	}
	for _, token := range coordinator.deferred {
		if err := coordinator.present(token); err != nil {
			logger.ErrorErr(err, "[%s] cannot present deferred confirmation %s", token.SessionID, token.ID)
		}
	}
}

// Discard drops all tokens of the given session, both deferred and presented.
func (coordinator *coordinator) Discard(sessionID string) {
	coordinator.lock.Lock()
	defer coordinator.lock.Unlock()

	for id, token := range coordinator.deferred {
		if token.SessionID == sessionID {
			logger.Debug("[%s] discarding deferred confirmation %s", sessionID, id)
			delete(coordinator.deferred, id)
		}
	}
	for id, owner := range coordinator.presented {
		if owner == sessionID {
			delete(coordinator.presented, id)
		}
	}
}

// must be called with the lock held, a failed presentation keeps the token deferred
func (coordinator *coordinator) present(token *types.ConfirmationToken) error {
	if err := coordinator.presenter.Present(token); err != nil {
		coordinator.deferred[token.ID] = token
		return errors.Wrapf(err, "cannot present confirmation %s", token.ID)
	}
	delete(coordinator.deferred, token.ID)
	coordinator.presented[token.ID] = token.SessionID
	logger.Info("[%s] confirmation %s presented", token.SessionID, token.ID)
	return nil
}
