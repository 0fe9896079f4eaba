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

package types

import "github.com/google/uuid"

// ConfirmationToken represents a pending user confirmation that belongs to an update session.
type ConfirmationToken struct {
	ID        string `json:"token"`
	SessionID string `json:"-"`
	Reason    string `json:"reason,omitempty"`
}

// NewConfirmationToken creates a token with a unique ID for the given session.
func NewConfirmationToken(sessionID, reason string) *ConfirmationToken {
	return &ConfirmationToken{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Reason:    reason,
	}
}

// OfferOutcome defines the result of offering a confirmation token to the host application
type OfferOutcome string

const (
	// OfferPresented denotes that the confirmation was presented to the user.
	OfferPresented OfferOutcome = "PRESENTED"
	// OfferDeferred denotes that the confirmation is retained until the host application reaches the foreground.
	OfferDeferred OfferOutcome = "DEFERRED"
)
