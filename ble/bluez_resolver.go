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
	"strings"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/logger"
	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	bluezService  = "org.bluez"
	bluezRootPath = "/org/bluez/"
	adapterIface  = "org.bluez.Adapter1"
	deviceIface   = "org.bluez.Device1"
)

// objectLocator is the subset of the D-Bus connection used for resolving BlueZ objects.
type objectLocator interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
}

type bluezResolver struct {
	bus         objectLocator
	adapterName string
}

// NewBlueZResolver creates a resolver backed by the BlueZ objects exposed on the system bus.
func NewBlueZResolver(adapterName string) (api.DeviceResolver, error) {
	bus, err := dbus.SystemBus()
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to the system bus")
	}
	return newBlueZResolver(bus, adapterName), nil
}

func newBlueZResolver(bus objectLocator, adapterName string) *bluezResolver {
	return &bluezResolver{bus: bus, adapterName: adapterName}
}

func (resolver *bluezResolver) Resolve(ctx context.Context, deviceID string) (api.DeviceHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	address, ok := parseAddress(deviceID)
	if !ok {
		logger.Warn("invalid remote device address '%s'", deviceID)
		return nil, errDeviceNotFound
	}
	adapterPath := dbus.ObjectPath(bluezRootPath + resolver.adapterName)
	if !resolver.adapterPowered(adapterPath) {
		return nil, errBluetoothUnavailable
	}
	devicePath := adapterPath + dbus.ObjectPath("/dev_"+strings.ReplaceAll(address, ":", "_"))
	device := resolver.bus.Object(bluezService, devicePath)
	variant, err := device.GetProperty(deviceIface + ".Address")
	if err != nil {
		logger.DebugErr(err, "remote device %s is not known to adapter %s", address, resolver.adapterName)
		return nil, errDeviceNotFound
	}
	if known, ok := variant.Value().(string); !ok || !strings.EqualFold(known, address) {
		logger.Warn("remote device object %s reports unexpected address %v", devicePath, variant.Value())
		return nil, errDeviceNotFound
	}
	return newDeviceHandle(deviceID, address, func() error {
		return disconnectDevice(device)
	}), nil
}

func (resolver *bluezResolver) adapterPowered(adapterPath dbus.ObjectPath) bool {
	variant, err := resolver.bus.Object(bluezService, adapterPath).GetProperty(adapterIface + ".Powered")
	if err != nil {
		logger.ErrorErr(err, "cannot read the state of Bluetooth adapter %s", resolver.adapterName)
		return false
	}
	powered, ok := variant.Value().(bool)
	if !ok || !powered {
		logger.Warn("Bluetooth adapter %s is not powered", resolver.adapterName)
		return false
	}
	return true
}

func disconnectDevice(device dbus.BusObject) error {
	call := device.Call(deviceIface+".Disconnect", 0)
	if call.Err != nil {
		return errors.Wrapf(call.Err, "cannot disconnect %s", device.Path())
	}
	return nil
}
