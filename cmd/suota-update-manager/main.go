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

package main

import (
	"log"
	"os"

	"github.com/eclipse-kanto/suota-update-manager/ble"
	"github.com/eclipse-kanto/suota-update-manager/cmd/app"
	"github.com/eclipse-kanto/suota-update-manager/config"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/eclipse-kanto/suota-update-manager/mqtt"
)

var (
	version = "development"
)

func main() {
	cfg, err := config.LoadConfig(version)
	if err != nil {
		log.Fatal("failed to load local configuration: ", err)
	}

	loggerOut, err := logger.SetupLogger(cfg.Log, "[suota-update-manager]")
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
		return
	}
	defer loggerOut.Close()

	if err = launch(cfg); err != nil {
		logger.ErrorErr(err, "failed to init SUOTA Update Manager")
		loggerOut.Close()
		os.Exit(1)
	}
}

func launch(cfg *config.Config) error {
	client, err := mqtt.NewHostClient(cfg.Domain, cfg.MQTT)
	if err != nil {
		return err
	}
	library, err := mqtt.NewLibraryClient(cfg.LibraryTopic, cfg.MQTT)
	if err != nil {
		return err
	}
	resolver, err := ble.NewResolver(cfg.Resolver, cfg.BluetoothAdapter)
	if err != nil {
		return err
	}
	return app.Launch(cfg, version, client, library, resolver)
}
