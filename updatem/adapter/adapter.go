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

package adapter

import (
	"fmt"
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"

	"github.com/pkg/errors"
)

const (
	// DefaultEventBufferSize is the capacity of the adapter event channel used when no positive size is given.
	DefaultEventBufferSize = 64
	// ConnectionStage is the log stage of connection state changes.
	ConnectionStage = "CONNECTION"

	commandQueueSize = 8
	connectionLevel  = "INFO"
)

// Adapter converts the callbacks of an updater library session to an ordered stream of update events.
// Commands are executed off the caller goroutine, their failures are reported as failure events.
type Adapter interface {
	Events() <-chan *types.UpdateEvent

	Connect()
	Configure(params types.SuotaParameters)
	StartUpload(firmware *types.FirmwareFile)
	Cancel()
	Close()
}

type command struct {
	name string
	run  func(library api.UpdateLibrary) error
}

type libraryAdapter struct {
	sessionID string
	address   string
	library   api.UpdateLibrary

	events   chan *types.UpdateEvent
	commands chan *command

	emitLock  sync.Mutex
	closed    bool
	done      chan struct{}
	closeOnce sync.Once
	worker    sync.WaitGroup
}

// New creates an updater library session for the given device handle and starts the command worker.
func New(sessionID string, provider api.UpdateLibraryProvider, handle api.DeviceHandle, bufferSize int) (Adapter, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultEventBufferSize
	}
	adapter := &libraryAdapter{
		sessionID: sessionID,
		address:   handle.Address(),
		events:    make(chan *types.UpdateEvent, bufferSize),
		commands:  make(chan *command, commandQueueSize),
		done:      make(chan struct{}),
	}
	library, err := newSession(provider, handle, adapter)
	if err != nil {
		return nil, err
	}
	adapter.library = library
	adapter.worker.Add(1)
	go adapter.run()
	return adapter, nil
}

func newSession(provider api.UpdateLibraryProvider, handle api.DeviceHandle, callback api.LibraryCallback) (library api.UpdateLibrary, err error) {
	defer func() {
		if r := recover(); r != nil {
			library = nil
			err = types.NewUpdateErrorf(types.ErrorLibraryFailure, "create session failed: %v", r)
		}
	}()
	library, err = provider.NewSession(handle, callback)
	if err != nil {
		return nil, toUpdateError("create session", err)
	}
	if library == nil {
		return nil, types.NewUpdateError(types.ErrorLibraryFailure, "create session failed: no session returned")
	}
	return library, nil
}

func (adapter *libraryAdapter) Events() <-chan *types.UpdateEvent {
	return adapter.events
}

func (adapter *libraryAdapter) Connect() {
	adapter.enqueue(&command{name: "connect", run: func(library api.UpdateLibrary) error {
		return library.Connect()
	}})
}

func (adapter *libraryAdapter) Configure(params types.SuotaParameters) {
	adapter.enqueue(&command{name: "configure", run: func(library api.UpdateLibrary) error {
		return library.Initialize(params)
	}})
}

func (adapter *libraryAdapter) StartUpload(firmware *types.FirmwareFile) {
	adapter.enqueue(&command{name: "start upload", run: func(library api.UpdateLibrary) error {
		return library.StartUpdate(firmware)
	}})
}

// Cancel aborts the update without waiting for the queued commands.
func (adapter *libraryAdapter) Cancel() {
	if adapter.isClosed() {
		logger.Warn("[%s] adapter closed, ignoring command 'abort'", adapter.sessionID)
		return
	}
	go adapter.invoke(&command{name: "abort", run: func(library api.UpdateLibrary) error {
		return library.Abort()
	}})
}

// Close stops the command worker and closes the library session, late callbacks are dropped.
func (adapter *libraryAdapter) Close() {
	adapter.closeOnce.Do(func() {
		close(adapter.done)
		adapter.emitLock.Lock()
		adapter.closed = true
		adapter.emitLock.Unlock()

		adapter.worker.Wait()
		if err := protect(adapter.library.Close); err != nil {
			logger.ErrorErr(err, "[%s] cannot close updater library session", adapter.sessionID)
		}
	})
}

func (adapter *libraryAdapter) enqueue(cmd *command) {
	if adapter.isClosed() {
		logger.Warn("[%s] adapter closed, ignoring command '%s'", adapter.sessionID, cmd.name)
		return
	}
	select {
	case <-adapter.done:
		logger.Warn("[%s] adapter closed, ignoring command '%s'", adapter.sessionID, cmd.name)
	case adapter.commands <- cmd:
	}
}

func (adapter *libraryAdapter) isClosed() bool {
	select {
	case <-adapter.done:
		return true
	default:
		return false
	}
}

func (adapter *libraryAdapter) run() {
	defer adapter.worker.Done()
	for {
		select {
		case <-adapter.done:
			return
		case cmd := <-adapter.commands:
			adapter.invoke(cmd)
		}
	}
}

func (adapter *libraryAdapter) invoke(cmd *command) {
	logger.Debug("[%s] invoking updater library command '%s'", adapter.sessionID, cmd.name)
	err := protect(func() error {
		return cmd.run(adapter.library)
	})
	if err != nil {
		logger.ErrorErr(err, "[%s] updater library command '%s' failed", adapter.sessionID, cmd.name)
		adapter.emit(types.NewFailureEvent(toUpdateError(cmd.name, err)))
	}
}

// protect converts a panic of the given function to an error
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func toUpdateError(operation string, err error) *types.UpdateError {
	var updateErr *types.UpdateError
	if errors.As(err, &updateErr) {
		return updateErr
	}
	return types.NewUpdateErrorf(types.ErrorLibraryFailure, "%s failed: %v", operation, err)
}

func (adapter *libraryAdapter) emit(event *types.UpdateEvent) {
	adapter.emitLock.Lock()
	defer adapter.emitLock.Unlock()

	if adapter.closed {
		logger.Debug("[%s] adapter closed, dropping late event %s", adapter.sessionID, event)
		return
	}
	select {
	case adapter.events <- event:
	case <-adapter.done:
		logger.Debug("[%s] adapter closed, dropping late event %s", adapter.sessionID, event)
	}
}
