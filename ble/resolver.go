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

package ble

import (
	"context"
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"
)

const (
	// ResolverBlueZ resolves devices through the BlueZ D-Bus object tree.
	ResolverBlueZ = "bluez"
	// ResolverAdapter resolves devices through the native Bluetooth adapter.
	ResolverAdapter = "adapter"
	// ResolverStatic only validates the device address, the link is owned by the updater library.
	ResolverStatic = "static"

	// DefaultAdapterName is the Bluetooth adapter used when none is configured.
	DefaultAdapterName = "hci0"
)

var (
	errBluetoothUnavailable = types.NewUpdateError(types.ErrorBluetoothUnavailable, "Bluetooth not available")
	errDeviceNotFound       = types.NewUpdateError(types.ErrorDeviceNotFound, "Remote device not found")
)

// NewResolver creates the device resolver of the given kind.
func NewResolver(kind, adapterName string) (api.DeviceResolver, error) {
	if adapterName == "" {
		adapterName = DefaultAdapterName
	}
	switch kind {
	case ResolverBlueZ, "":
		return NewBlueZResolver(adapterName)
	case ResolverAdapter:
		return NewAdapterResolver(), nil
	case ResolverStatic:
		return NewStaticResolver(), nil
	default:
		return nil, errors.Errorf("unsupported device resolver '%s'", kind)
	}
}

// deviceHandle is the handle shared by all resolvers, release is invoked at most once.
type deviceHandle struct {
	id          string
	address     string
	releaseOnce sync.Once
	releaseErr  error
	release     func() error
}

func newDeviceHandle(id, address string, release func() error) *deviceHandle {
	return &deviceHandle{id: id, address: address, release: release}
}

func (handle *deviceHandle) ID() string {
	return handle.id
}

func (handle *deviceHandle) Address() string {
	return handle.address
}

func (handle *deviceHandle) Release() error {
	handle.releaseOnce.Do(func() {
		if handle.release == nil {
			return
		}
		logger.Debug("releasing device handle %s", handle.address)
		handle.releaseErr = handle.release()
	})
	return handle.releaseErr
}

// staticResolver accepts any well-formed device address without touching the Bluetooth stack.
type staticResolver struct{}

// NewStaticResolver creates a resolver that only normalizes and validates device addresses.
func NewStaticResolver() api.DeviceResolver {
	return staticResolver{}
}

func (staticResolver) Resolve(ctx context.Context, deviceID string) (api.DeviceHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	address, ok := parseAddress(deviceID)
	if !ok {
		return nil, errDeviceNotFound
	}
	return newDeviceHandle(deviceID, address, nil), nil
}

func parseAddress(deviceID string) (string, bool) {
	address := util.NormalizeAddress(deviceID)
	if len(address) != len("00:00:00:00:00:00") {
		return "", false
	}
	if _, err := bluetooth.ParseMAC(address); err != nil {
		return "", false
	}
	return address, true
}
