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

package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"path/filepath"

	"github.com/eclipse-kanto/suota-update-manager/logger"

	"github.com/pkg/errors"
)

// NewTLSConfig creates the TLS configuration for a mutually authenticated broker connection.
func NewTLSConfig(settings *internalConnectionConfig) (*tls.Config, error) {
	if err := validateTLSConfig(settings); err != nil {
		return nil, errors.Wrap(err, "invalid TLS configuration provided")
	}

	caCert, err := os.ReadFile(settings.CACert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load CA")
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, errors.Errorf("failed to parse CA %s", settings.CACert)
	}

	cert, err := tls.LoadX509KeyPair(settings.Cert, settings.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load X509 key pair")
	}
	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		MaxVersion:   tls.VersionTLS13,
		CipherSuites: supportedCipherSuites(),
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{cert},
	}, nil
}

func supportedCipherSuites() []uint16 {
	suites := tls.CipherSuites()
	ids := make([]uint16, len(suites))
	for i := range suites {
		ids[i] = suites[i].ID
	}
	return ids
}

func validateTLSConfig(config *internalConnectionConfig) error {
	files := []struct {
		path, extension, description string
	}{
		{config.CACert, ".crt", "CA"},
		{config.Cert, ".cert", "certificate"},
		{config.Key, ".key", "certificate key"},
	}
	for _, file := range files {
		if err := validateTLSConfigFile(file.path, file.extension); err != nil {
			logger.ErrorErr(err, "problem accessing provided %s file %s", file.description, file.path)
			return err
		}
	}
	return nil
}

func validateTLSConfigFile(file, expectedFileExt string) error {
	if file == "" {
		return errors.Errorf("TLS configuration data is missing, file must be %s", expectedFileExt)
	}
	if !filepath.IsAbs(file) {
		return errors.Errorf("provided path must be absolute - %s", file)
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.Errorf("the provided path %s is a dir path - file is required", file)
	}
	if info.Size() == 0 {
		return errors.Errorf("file %s is empty", file)
	}
	return nil
}
