// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

const timePrefixRegex = `^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}(Z|[+-][0-9]{2}:[0-9]{2}) `

func levelPtr(level Level) *Level { return &level }

func boolPtr(b bool) *bool { return &b }

func newCallerSettings(file, line, funC bool) callerSettings {
	return callerSettings{
		file: boolPtr(file),
		line: boolPtr(line),
		funC: boolPtr(funC),
	}
}
