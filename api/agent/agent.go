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
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

type updateAgentOption = func(agent *updateAgent)

// updateAgent bridges the requests of the host application to the update orchestrator.
type updateAgent struct {
	ctx          context.Context
	client       api.HostClient
	orchestrator api.UpdateOrchestrator
	stream       api.EventStream

	version                string
	progressReportInterval time.Duration

	listener *streamListener

	clientLock sync.Mutex
	listenLock sync.Mutex
}

// NewUpdateAgent instantiates an Update Agent instance.
func NewUpdateAgent(client api.HostClient, orchestrator api.UpdateOrchestrator, stream api.EventStream, options ...updateAgentOption) api.UpdateAgent {
	updateAgent := &updateAgent{
		client:       client,
		orchestrator: orchestrator,
		stream:       stream,
	}
	for _, option := range options {
		option(updateAgent)
	}
	return updateAgent
}

// Start method puts the Update Agent into operation.
// It will establish a connection to the MQTT broker and subscribe for incoming requests.
func (agent *updateAgent) Start(ctx context.Context) error {
	agent.clientLock.Lock()
	defer agent.clientLock.Unlock()

	logger.Debug("starting update agent...")
	agent.ctx = ctx
	if err := agent.client.Connect(agent); err != nil {
		return err
	}
	logger.Debug("started update agent.")
	return nil
}

// Stop method terminates the Update Agent operation, the active update session is cancelled.
func (agent *updateAgent) Stop() error {
	logger.Debug("stopping update agent...")
	agent.stopListener()

	agent.clientLock.Lock()
	defer agent.clientLock.Unlock()

	if _, active := agent.orchestrator.ActiveSession(); active {
		if err := agent.orchestrator.Cancel(); err != nil {
			logger.WarnErr(err, "cannot cancel the active update session")
		}
	}
	agent.client.Disconnect()
	logger.Debug("stopped update agent.")
	return nil
}

func (agent *updateAgent) HandleInstallUpdate(installUpdateBytes []byte) error {
	request := &types.UpdateRequest{}
	envelope, err := types.FromEnvelope(installUpdateBytes, request)
	if err != nil {
		return errors.Wrap(err, "cannot parse install update request")
	}
	logger.Debug("Received install update request, activity-id=%s, device=%s", envelope.ActivityID, request.DeviceID)
	go agent.installUpdate(envelope.ActivityID, request)
	return nil
}

func (agent *updateAgent) installUpdate(activityID string, request *types.UpdateRequest) {
	result := <-agent.orchestrator.StartUpdate(agent.context(), request)
	responseBytes, err := types.ToEnvelope(activityID, types.ToInstallUpdateResponse(result))
	if err != nil {
		logger.ErrorErr(err, "cannot create install update response, activity-id=%s", activityID)
		return
	}
	if err := agent.client.PublishInstallUpdateResponse(responseBytes); err != nil {
		logger.ErrorErr(err, "cannot publish install update response, activity-id=%s", activityID)
	}
}

func (agent *updateAgent) HandlePlatformVersion(platformVersionBytes []byte) error {
	envelope, err := types.FromEnvelope(platformVersionBytes, nil)
	if err != nil {
		return errors.Wrap(err, "cannot parse platform version request")
	}
	responseBytes, err := types.ToEnvelope(envelope.ActivityID, agent.platformVersion())
	if err != nil {
		return err
	}
	return errors.Wrap(agent.client.PublishPlatformVersion(responseBytes), "cannot publish platform version")
}

func (agent *updateAgent) platformVersion() string {
	version := agent.version
	if version == "" {
		version = runtime.Version()
	}
	return fmt.Sprintf("%s/%s %s", runtime.GOOS, runtime.GOARCH, version)
}

func (agent *updateAgent) HandleListen(listenBytes []byte) error {
	envelope, err := types.FromEnvelope(listenBytes, nil)
	if err != nil {
		return errors.Wrap(err, "cannot parse listen request")
	}
	logger.Debug("Received listen request, activity-id=%s", envelope.ActivityID)

	agent.listenLock.Lock()
	defer agent.listenLock.Unlock()

	if agent.listener != nil {
		agent.listener.stop()
	}
	agent.listener = newStreamListener(agent, envelope.ActivityID, agent.stream.Subscribe())
	return nil
}

func (agent *updateAgent) HandleCancelListen(cancelListenBytes []byte) error {
	envelope, err := types.FromEnvelope(cancelListenBytes, nil)
	if err != nil {
		return errors.Wrap(err, "cannot parse cancel listen request")
	}
	logger.Debug("Received cancel listen request, activity-id=%s", envelope.ActivityID)
	agent.stopListener()
	return nil
}

func (agent *updateAgent) stopListener() {
	agent.listenLock.Lock()
	defer agent.listenLock.Unlock()

	if agent.listener != nil {
		agent.listener.stop()
		agent.listener = nil
	}
}

func (agent *updateAgent) HandleLifecycle(lifecycleBytes []byte) error {
	change := &types.LifecycleChange{}
	if _, err := types.FromEnvelope(lifecycleBytes, change); err != nil {
		return errors.Wrap(err, "cannot parse lifecycle change")
	}
	agent.orchestrator.SetLifecycleState(change.State)
	return nil
}

func (agent *updateAgent) HandleCancel(cancelBytes []byte) error {
	envelope, err := types.FromEnvelope(cancelBytes, nil)
	if err != nil {
		return errors.Wrap(err, "cannot parse cancel request")
	}
	logger.Debug("Received cancel request, activity-id=%s", envelope.ActivityID)
	return agent.orchestrator.Cancel()
}

func (agent *updateAgent) publishRecord(activityID string, record *types.StreamRecord) {
	recordBytes, err := types.ToEnvelope(activityID, record)
	if err != nil {
		logger.ErrorErr(err, "cannot create stream record, activity-id=%s", activityID)
		return
	}
	if err := agent.client.PublishEvent(recordBytes); err != nil {
		logger.ErrorErr(err, "cannot publish stream record, activity-id=%s", activityID)
	}
}

func (agent *updateAgent) context() context.Context {
	agent.clientLock.Lock()
	defer agent.clientLock.Unlock()

	if agent.ctx == nil {
		return context.Background()
	}
	return agent.ctx
}
