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
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"tinygo.org/x/bluetooth"
)

// peripheral is a connected remote device.
type peripheral interface {
	Disconnect() error
}

// centralAdapter is the subset of the Bluetooth adapter used for resolving devices.
type centralAdapter interface {
	Enable() error
	SetConnectHandler(handler func(address string, connected bool))
	Connect(address string) (peripheral, error)
}

type nativeAdapter struct {
	adapter *bluetooth.Adapter
}

func (native nativeAdapter) Enable() error {
	return native.adapter.Enable()
}

func (native nativeAdapter) SetConnectHandler(handler func(address string, connected bool)) {
	native.adapter.SetConnectHandler(func(device bluetooth.Device, connected bool) {
		handler(device.Address.String(), connected)
	})
}

func (native nativeAdapter) Connect(address string) (peripheral, error) {
	var addr bluetooth.Address
	addr.Set(address)
	device, err := native.adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, err
	}
	return &device, nil
}

type adapterResolver struct {
	adapter centralAdapter

	lock    sync.Mutex
	enabled bool
	links   map[string]peripheral
}

// NewAdapterResolver creates a resolver that connects remote devices through the default Bluetooth adapter.
func NewAdapterResolver() api.DeviceResolver {
	return newAdapterResolver(nativeAdapter{adapter: bluetooth.DefaultAdapter})
}

func newAdapterResolver(adapter centralAdapter) *adapterResolver {
	return &adapterResolver{adapter: adapter, links: map[string]peripheral{}}
}

func (resolver *adapterResolver) Resolve(ctx context.Context, deviceID string) (api.DeviceHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	address, ok := parseAddress(deviceID)
	if !ok {
		logger.Warn("invalid remote device address '%s'", deviceID)
		return nil, errDeviceNotFound
	}
	if err := resolver.enable(); err != nil {
		logger.ErrorErr(err, "cannot enable the Bluetooth adapter")
		return nil, errBluetoothUnavailable
	}
	device, err := resolver.connect(ctx, address)
	if err != nil {
		return nil, err
	}
	resolver.lock.Lock()
	resolver.links[address] = device
	resolver.lock.Unlock()
	return newDeviceHandle(deviceID, address, func() error {
		return resolver.disconnect(address)
	}), nil
}

func (resolver *adapterResolver) enable() error {
	resolver.lock.Lock()
	defer resolver.lock.Unlock()

	if resolver.enabled {
		return nil
	}
	if err := resolver.adapter.Enable(); err != nil {
		return err
	}
	resolver.adapter.SetConnectHandler(resolver.onConnectionChange)
	resolver.enabled = true
	return nil
}

func (resolver *adapterResolver) connect(ctx context.Context, address string) (peripheral, error) {
	type connectResult struct {
		device peripheral
		err    error
	}
	results := make(chan connectResult, 1)
	go func() {
		device, err := resolver.adapter.Connect(address)
		results <- connectResult{device: device, err: err}
	}()

	select {
	case result := <-results:
		if result.err != nil {
			logger.ErrorErr(result.err, "cannot connect to remote device %s", address)
			return nil, errDeviceNotFound
		}
		return result.device, nil
	case <-ctx.Done():
		go func() {
			if result := <-results; result.err == nil {
				if err := result.device.Disconnect(); err != nil {
					logger.WarnErr(err, "cannot disconnect abandoned link to %s", address)
				}
			}
		}()
		return nil, ctx.Err()
	}
}

func (resolver *adapterResolver) disconnect(address string) error {
	resolver.lock.Lock()
	device, ok := resolver.links[address]
	delete(resolver.links, address)
	resolver.lock.Unlock()

	if !ok {
		logger.Debug("link to %s already closed", address)
		return nil
	}
	return device.Disconnect()
}

func (resolver *adapterResolver) onConnectionChange(address string, connected bool) {
	address = util.NormalizeAddress(address)
	logger.Debug("remote device %s connected: %v", address, connected)
	if connected {
		return
	}
	resolver.lock.Lock()
	delete(resolver.links, address)
	resolver.lock.Unlock()
}
