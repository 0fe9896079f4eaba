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
	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"

	"github.com/pkg/errors"
)

// streamPresenter presents confirmations by publishing them to the event stream subscriber
type streamPresenter struct {
	stream api.EventStream
}

func newStreamPresenter(stream api.EventStream) api.ConfirmationPresenter {
	return &streamPresenter{stream: stream}
}

func (presenter *streamPresenter) Present(token *types.ConfirmationToken) error {
	if presenter.stream == nil {
		return errors.New("no event stream available")
	}
	event := types.NewPendingConfirmationEvent(token.Reason)
	event.Token = token
	presenter.stream.Publish(event)
	return nil
}
