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

package api

import (
	"context"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
)

// UpdateOrchestrator defines an interface for driving single-flight firmware update sessions
type UpdateOrchestrator interface {
	// StartUpdate returns promptly, the returned channel receives exactly one result.
	StartUpdate(ctx context.Context, request *types.UpdateRequest) <-chan *types.UpdateResult
	// InstallUpdate blocks until the update session resolves.
	InstallUpdate(ctx context.Context, request *types.UpdateRequest) (*types.UpdateOutcome, error)
	// Cancel cancels the active update session, if any.
	Cancel() error
	// ActiveSession returns the identifier of the active update session.
	ActiveSession() (string, bool)
	// SetLifecycleState notifies about a foreground lifecycle change of the host application.
	SetLifecycleState(state types.LifecycleState)
}

// EventPublisher defines a best-effort sink for update events
type EventPublisher interface {
	Publish(event *types.UpdateEvent)
}

// EventSubscription defines a single subscription to the update event stream
type EventSubscription interface {
	Events() <-chan *types.UpdateEvent
	Unsubscribe()
}

// EventStream defines a single-subscriber update event stream
type EventStream interface {
	EventPublisher
	Subscribe() EventSubscription
}

// ConfirmationPresenter presents a pending confirmation to the user of the host application.
type ConfirmationPresenter interface {
	Present(token *types.ConfirmationToken) error
}

// ConfirmationCoordinator defines the lifecycle-gated presentation of pending confirmations
type ConfirmationCoordinator interface {
	Offer(token *types.ConfirmationToken, state types.LifecycleState) (types.OfferOutcome, error)
	OnLifecycleChange(state types.LifecycleState)
	Discard(sessionID string)
}
