// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/invctl/invctl/internal/config"
	"github.com/invctl/invctl/internal/fields"
	"github.com/invctl/invctl/internal/meta"
	"github.com/invctl/invctl/internal/output"
)

// fieldsCommandAction is the action handler for the "fields" subcommand. It
// emits the known inventory field-name set, the vocabulary accepted by
// "field=value" constraints.
func fieldsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "fields"

	var records []map[string]string
	for _, name := range fields.Known() {
		records = append(records, map[string]string{"field": name})
	}

	output.Spit(records, []string{"field"}, cmd, os.Stdout)

	return nil
}

// fieldsCommandBuilder constructs the cli.Command for "fields".
func fieldsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fields",
		Usage:     "known inventory field names",
		UsageText: "invctl fields [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags(),
		Action: fieldsCommandAction,
	}
}
