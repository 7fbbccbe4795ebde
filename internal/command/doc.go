// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires up the invctl CLI: the urfave/cli application, the
// per-command builders and their flag sets. Each subcommand is constructed by
// a <name>CommandBuilder function that receives the shared runtime metadata.
//
// Commands:
//
//   - iq     : inventory query. Loads the inventory, compiles the --limit and
//     --exclude constraint expressions into filters and emits the surviving
//     records.
//   - fields : prints the known inventory field-name set.
package command
