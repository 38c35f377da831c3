// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

// newSettings returns settings using the options given.
func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each unset field of s with the
// field value of other. The context of other is prepended
// to the context of s.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	s.caller.mergeWith(other.caller)

	if len(other.context) > 0 {
		merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
		for _, kv := range other.context {
			merged = append(merged, contextKeyValues{
				key:    kv.key,
				values: append([]string(nil), kv.values...),
			})
		}
		merged = append(merged, s.context...)
		s.context = merged
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	s.caller.setDefaults()
}
