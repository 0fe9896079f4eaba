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

package agent

import (
	"time"
)

// WithVersion defines option for update agent to report the given version as part of the platform version
func WithVersion(version string) updateAgentOption {
	return func(agent *updateAgent) {
		agent.version = version
	}
}

// WithProgressReportInterval defines option for update agent to throttle the streamed progress for the given duration, e.g. if there are newer progress updates, only the latest progress will be sent
func WithProgressReportInterval(interval time.Duration) updateAgentOption {
	return func(agent *updateAgent) {
		agent.progressReportInterval = interval
	}
}
