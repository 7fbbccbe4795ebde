// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fields defines the known inventory field-name set: the fixed
// vocabulary of record attribute names eligible for "field=value" filter
// constraints and used as the column order for text output.
package fields

import (
	"github.com/invctl/invctl/internal/config"
)

// Defaults is the stock field-name set. The "fields" config key overrides it
// for inventories with a different schema.
var Defaults = []string{"host", "ipaddr", "os_name"}

// Known returns the active field-name set. Field-name order is significant:
// it drives output column order.
func Known() []string {
	names, err := config.GetStringSlice("fields", Defaults)
	if err != nil || len(names) == 0 {
		return Defaults
	}
	return names
}
