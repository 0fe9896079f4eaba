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

// HostHandler defines functions for handling the requests of the host application
type HostHandler interface {
	HandleInstallUpdate([]byte) error
	HandlePlatformVersion([]byte) error
	HandleListen([]byte) error
	HandleCancelListen([]byte) error
	HandleLifecycle([]byte) error
	HandleCancel([]byte) error
}

// HostClient defines an interface for interacting with the host application
type HostClient interface {
	Domain() string

	Connect(HostHandler) error
	Disconnect()

	PublishInstallUpdateResponse([]byte) error
	PublishPlatformVersion([]byte) error
	PublishEvent([]byte) error
}

// LibraryClient defines an interface for reaching a remote updater library
type LibraryClient interface {
	UpdateLibraryProvider

	Connect() error
	Disconnect()
}
