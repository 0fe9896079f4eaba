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

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/logger"
)

const durationDesc = "Value should be a positive integer number followed by a unit suffix, such as '60s', '10m', etc"

// SetupAllUpdateManagerFlags adds all flags for the configuration of the SUOTA update manager
func SetupAllUpdateManagerFlags(flagSet *flag.FlagSet, cfg *Config) {
	SetupFlags(flagSet, cfg.BaseConfig)

	flagSet.StringVar(&cfg.Resolver, "resolver", EnvToString("RESOLVER", cfg.Resolver), "Specify the remote device resolver - possible values are bluez, adapter, static")
	flagSet.StringVar(&cfg.BluetoothAdapter, "bluetooth-adapter", EnvToString("BLUETOOTH_ADAPTER", cfg.BluetoothAdapter), "Specify the name of the Bluetooth adapter used by the bluez resolver")
	flagSet.StringVar(&cfg.ConnectTimeout, "connect-timeout", EnvToString("CONNECT_TIMEOUT", cfg.ConnectTimeout), "Specify the timeout for establishing the connection to the remote device. "+durationDesc)
	flagSet.StringVar(&cfg.ConfirmationTimeout, "confirmation-timeout", EnvToString("CONFIRMATION_TIMEOUT", cfg.ConfirmationTimeout), "Specify the time to wait for a pending reboot confirmation to be presented. "+durationDesc)
	flagSet.IntVar(&cfg.EventBufferSize, "event-buffer-size", int(EnvToInt("EVENT_BUFFER_SIZE", int64(cfg.EventBufferSize))), "Specify the capacity of the update event buffers")
	flagSet.StringVar(&cfg.LifecycleThreshold, "lifecycle-threshold", EnvToString("LIFECYCLE_THRESHOLD", cfg.LifecycleThreshold), "Specify the host lifecycle state at which pending confirmations are presented - possible values are CREATED, STARTED, RESUMED")
	flagSet.StringVar(&cfg.InitialLifecycleState, "initial-lifecycle-state", EnvToString("INITIAL_LIFECYCLE_STATE", cfg.InitialLifecycleState), "Specify the host lifecycle state assumed until the host reports one")
	flagSet.StringVar(&cfg.StreamAddress, "stream-address", EnvToString("STREAM_ADDRESS", cfg.StreamAddress), "Specify the address of the websocket event stream, e.g. ':8090'. The stream is disabled if not set")
	flagSet.StringVar(&cfg.ProgressReportInterval, "progress-report-interval", EnvToString("PROGRESS_REPORT_INTERVAL", cfg.ProgressReportInterval), "Specify the minimal interval between progress records published to the host application, '0s' publishes every progress. "+durationDesc)
	flagSet.StringVar(&cfg.LibraryTopic, "library-topic", EnvToString("LIBRARY_TOPIC", cfg.LibraryTopic), "Specify the MQTT topic prefix of the updater library agent")

	setupSuotaFlags(flagSet, cfg.Suota)
}

func setupSuotaFlags(flagSet *flag.FlagSet, params *types.SuotaParameters) {
	flagSet.IntVar(&params.BlockSize, "suota-block-size", int(EnvToInt("SUOTA_BLOCK_SIZE", int64(params.BlockSize))), "Specify the SUOTA block size in bytes")
	flagSet.IntVar(&params.ClockGPIO, "suota-sck-gpio", int(EnvToInt("SUOTA_SCK_GPIO", int64(params.ClockGPIO))), "Specify the SPI clock GPIO of the remote device")
	flagSet.IntVar(&params.ChipSelectGPIO, "suota-cs-gpio", int(EnvToInt("SUOTA_CS_GPIO", int64(params.ChipSelectGPIO))), "Specify the SPI chip select GPIO of the remote device")
	flagSet.IntVar(&params.DataInGPIO, "suota-miso-gpio", int(EnvToInt("SUOTA_MISO_GPIO", int64(params.DataInGPIO))), "Specify the SPI MISO GPIO of the remote device")
	flagSet.IntVar(&params.DataOutGPIO, "suota-mosi-gpio", int(EnvToInt("SUOTA_MOSI_GPIO", int64(params.DataOutGPIO))), "Specify the SPI MOSI GPIO of the remote device")
	params.ImageBank = types.ImageBank(EnvToInt("SUOTA_IMAGE_BANK", int64(params.ImageBank)))
	flagSet.Var((*imageBankValue)(&params.ImageBank), "suota-image-bank", "Specify the image bank - possible values are 0 (oldest), 1, 2")
}

type imageBankValue types.ImageBank

func (bank *imageBankValue) String() string {
	if bank == nil {
		return "0"
	}
	return strconv.Itoa(int(*bank))
}

func (bank *imageBankValue) Set(value string) error {
	parsed, err := strconv.ParseInt(value, 0, 0)
	if err != nil {
		return err
	}
	*bank = imageBankValue(parsed)
	return nil
}

func parseFlags(cfg *Config, version string) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flagSet := flag.CommandLine

	SetupAllUpdateManagerFlags(flagSet, cfg)

	fVersion := flagSet.Bool("version", false, "Prints current version and exits")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		logger.ErrorErr(err, "Cannot parse command flags")
	}

	if *fVersion {
		fmt.Println(version)
		os.Exit(0)
	}
}

func getFlagArgs(flag string) []string {
	args := os.Args[1:]
	flag1 := "-" + flag
	flag2 := "--" + flag
	for index, arg := range args {
		if strings.HasPrefix(arg, flag1+"=") || strings.HasPrefix(arg, flag2+"=") {
			return []string{arg}
		}
		if (arg == flag1 || arg == flag2) && index < len(args)-1 {
			return args[index : index+2]
		}
	}
	return []string{}
}
