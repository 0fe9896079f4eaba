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

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/agent"
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/config"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/stream"
	"github.com/eclipse-kanto/suota-update-manager/updatem/events"
	"github.com/eclipse-kanto/suota-update-manager/updatem/orchestration"
)

const streamShutdownTimeout = 5 * time.Second

type components struct {
	library api.LibraryClient
	agent   api.UpdateAgent
	server  *stream.Server
}

// Launch is the entry point for launching of the SUOTA Update Manager instance
func Launch(cfg *config.Config, version string, client api.HostClient, library api.LibraryClient, resolver api.DeviceResolver) error {
	comps, err := initComponents(cfg, version, client, library, resolver)
	if err != nil {
		logger.ErrorErr(err, "failed to init SUOTA Update Manager")
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = startComponents(ctx, comps); err != nil {
		logger.ErrorErr(err, "failed to start SUOTA Update Manager")
		stopComponents(comps)
		return err
	}
	logger.Debug("successfully started SUOTA Update Manager")

	var signalChan = make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-signalChan
	cancel()
	logger.Debug("received OS SIGNAL >> %d ! Will exit!", sig)
	stopComponents(comps)

	return nil
}

func initComponents(cfg *config.Config, version string, client api.HostClient, library api.LibraryClient,
	resolver api.DeviceResolver) (*components, error) {
	logger.Debug("creating SUOTA Update Manager instance")
	broadcaster := events.NewBroadcaster(cfg.EventBufferSize)
	orchestrator, err := orchestration.NewUpdateOrchestrator(cfg, resolver, library, broadcaster)
	if err != nil {
		return nil, err
	}
	comps := &components{
		library: library,
		agent: agent.NewUpdateAgent(client, orchestrator, broadcaster,
			agent.WithVersion(version),
			agent.WithProgressReportInterval(util.ParseDuration("progress-report-interval", cfg.ProgressReportInterval, 0, 0))),
	}
	if len(cfg.StreamAddress) > 0 {
		comps.server = stream.NewServer(cfg.StreamAddress, broadcaster)
	}
	return comps, nil
}

func startComponents(ctx context.Context, comps *components) error {
	logger.Debug("connecting to the updater library")
	if err := comps.library.Connect(); err != nil {
		return err
	}
	logger.Debug("starting SUOTA Update Manager")
	if err := comps.agent.Start(ctx); err != nil {
		return err
	}
	if comps.server != nil {
		logger.Debug("starting event stream server")
		return comps.server.Start()
	}
	return nil
}

func stopComponents(comps *components) {
	logger.Debug("stopping SUOTA Update Manager")
	if comps.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), streamShutdownTimeout)
		if err := comps.server.Stop(ctx); err != nil {
			logger.WarnErr(err, "error while stopping event stream server")
		}
		cancel()
	}
	if err := comps.agent.Stop(); err != nil {
		logger.WarnErr(err, "error while stopping SUOTA Update Manager")
	}
	comps.library.Disconnect()
	logger.Debug("stopping SUOTA Update Manager finished")
}
