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

package types

import "fmt"

// ImageBank defines the target memory bank of the firmware image
type ImageBank int

const (
	// ImageBankOldest lets the device select the bank holding the oldest image.
	ImageBankOldest ImageBank = 0x00
	// ImageBank1 selects the first image bank.
	ImageBank1 ImageBank = 0x01
	// ImageBank2 selects the second image bank.
	ImageBank2 ImageBank = 0x02
)

// SuotaParameters holds the deployment-fixed parameters applied once the remote device is ready.
type SuotaParameters struct {
	BlockSize      int       `json:"blockSize" yaml:"blockSize"`
	ClockGPIO      int       `json:"sckGpio" yaml:"sckGpio"`
	ChipSelectGPIO int       `json:"csGpio" yaml:"csGpio"`
	DataInGPIO     int       `json:"misoGpio" yaml:"misoGpio"`
	DataOutGPIO    int       `json:"mosiGpio" yaml:"mosiGpio"`
	ImageBank      ImageBank `json:"imageBank" yaml:"imageBank"`
}

// FirmwareFile references the firmware image to be uploaded.
type FirmwareFile struct {
	Path string `json:"path"`
	Name string `json:"fileName"`
}

// Default SUOTA parameters of the reference hardware.
const (
	DefaultBlockSize      = 240
	DefaultDataInGPIO     = 0x05
	DefaultDataOutGPIO    = 0x06
	DefaultChipSelectGPIO = 0x03
	DefaultClockGPIO      = 0x00
	DefaultImageBank      = ImageBankOldest
)

const maxGPIO = 0xff

// DefaultSuotaParameters returns the parameters of the reference hardware.
func DefaultSuotaParameters() SuotaParameters {
	return SuotaParameters{
		BlockSize:      DefaultBlockSize,
		ClockGPIO:      DefaultClockGPIO,
		ChipSelectGPIO: DefaultChipSelectGPIO,
		DataInGPIO:     DefaultDataInGPIO,
		DataOutGPIO:    DefaultDataOutGPIO,
		ImageBank:      DefaultImageBank,
	}
}

// Validate checks that the block size is positive, the GPIO pins are distinct bytes and the image bank is known.
func (params SuotaParameters) Validate() error {
	if params.BlockSize <= 0 {
		return fmt.Errorf("invalid block size %d, must be positive", params.BlockSize)
	}
	pins := map[string]int{
		"sck":  params.ClockGPIO,
		"cs":   params.ChipSelectGPIO,
		"miso": params.DataInGPIO,
		"mosi": params.DataOutGPIO,
	}
	used := make(map[int]string, len(pins))
	for _, name := range []string{"sck", "cs", "miso", "mosi"} {
		pin := pins[name]
		if pin < 0 || pin > maxGPIO {
			return fmt.Errorf("invalid %s GPIO 0x%02x, must be in range [0x00-0x%02x]", name, pin, maxGPIO)
		}
		if other, ok := used[pin]; ok {
			return fmt.Errorf("%s and %s GPIO must differ, both are 0x%02x", other, name, pin)
		}
		used[pin] = name
	}
	if params.ImageBank < ImageBankOldest || params.ImageBank > ImageBank2 {
		return fmt.Errorf("invalid image bank %d, must be one of 0 (oldest), 1 or 2", params.ImageBank)
	}
	return nil
}

func (params SuotaParameters) String() string {
	return fmt.Sprintf("block size=%d, sck=0x%02x, cs=0x%02x, miso=0x%02x, mosi=0x%02x, image bank=%d",
		params.BlockSize, params.ClockGPIO, params.ChipSelectGPIO, params.DataInGPIO, params.DataOutGPIO, params.ImageBank)
}
