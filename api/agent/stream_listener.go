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
	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

// streamListener forwards the events of a stream subscription to the host application
type streamListener struct {
	agent        *updateAgent
	activityID   string
	subscription api.EventSubscription
	progress     *progressNotifier
	done         chan struct{}
}

func newStreamListener(agent *updateAgent, activityID string, subscription api.EventSubscription) *streamListener {
	listener := &streamListener{
		agent:        agent,
		activityID:   activityID,
		subscription: subscription,
		done:         make(chan struct{}),
	}
	if agent.progressReportInterval > 0 {
		listener.progress = newProgressNotifier(agent.progressReportInterval, listener.publish)
	}
	go listener.pump()
	return listener
}

func (listener *streamListener) pump() {
	defer close(listener.done)
	for event := range listener.subscription.Events() {
		record := types.ToStreamRecord(event)
		if record == nil {
			logger.Trace("event %s is not streamed", event)
			continue
		}
		if listener.progress == nil {
			listener.publish(record)
			continue
		}
		if record.Progress != nil {
			listener.progress.set(*record.Progress)
			continue
		}
		listener.progress.flush()
		listener.publish(record)
	}
	logger.Debug("stream listener %s detached", listener.activityID)
}

func (listener *streamListener) publish(record *types.StreamRecord) {
	listener.agent.publishRecord(listener.activityID, record)
}

func (listener *streamListener) stop() {
	listener.subscription.Unsubscribe()
	if listener.progress != nil {
		listener.progress.stop()
	}
}
