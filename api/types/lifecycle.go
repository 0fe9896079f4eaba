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

import (
	"fmt"
	"strings"
)

// LifecycleState defines the foreground lifecycle state of the host application, states are ordered.
type LifecycleState int

const (
	// LifecycleDestroyed denotes a host application that is no longer usable.
	LifecycleDestroyed LifecycleState = iota
	// LifecycleInitialized denotes a host application that is constructed but not yet created.
	LifecycleInitialized
	// LifecycleCreated denotes a host application that is created but not visible.
	LifecycleCreated
	// LifecycleStarted denotes a visible host application.
	LifecycleStarted
	// LifecycleResumed denotes a visible host application that has the focus.
	LifecycleResumed
)

var lifecycleNames = []string{"DESTROYED", "INITIALIZED", "CREATED", "STARTED", "RESUMED"}

// ParseLifecycleState converts the given name to LifecycleState.
func ParseLifecycleState(name string) (LifecycleState, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, known := range lifecycleNames {
		if known == upper {
			return LifecycleState(i), nil
		}
	}
	return LifecycleDestroyed, fmt.Errorf("unknown lifecycle state '%s'", name)
}

// IsAtLeast returns true if the state is the same or after the given one.
func (state LifecycleState) IsAtLeast(other LifecycleState) bool {
	return state >= other
}

func (state LifecycleState) String() string {
	if state < 0 || int(state) >= len(lifecycleNames) {
		return fmt.Sprintf("UNKNOWN(%d)", int(state))
	}
	return lifecycleNames[state]
}

// MarshalText encodes the state by name.
func (state LifecycleState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

// UnmarshalText decodes the state by name.
func (state *LifecycleState) UnmarshalText(text []byte) error {
	parsed, err := ParseLifecycleState(string(text))
	if err != nil {
		return err
	}
	*state = parsed
	return nil
}
