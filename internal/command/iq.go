// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/invctl/invctl/internal/config"
	"github.com/invctl/invctl/internal/fields"
	"github.com/invctl/invctl/internal/filtering"
	"github.com/invctl/invctl/internal/inventory"
	"github.com/invctl/invctl/internal/meta"
	"github.com/invctl/invctl/internal/output"
)

// iqCommandAction is the action handler for the "iq" subcommand. It loads the
// inventory, compiles the constraint expressions into filters and emits the
// surviving records per common flags.
func iqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "iq"

	path := cmd.String("inventory")
	if path == "" {
		return fmt.Errorf("no inventory specified; use --inventory or the inventory config key")
	}

	records, err := inventory.Load(path)
	if err != nil {
		return err
	}

	grammar := filtering.NewGrammar(fields.Known())

	// Positional args are shorthand for --limit constraints.
	limits := append(cmd.StringSlice("limit"), cmd.Args().Slice()...)
	excludes := cmd.StringSlice("exclude")

	// Limit constraints select: a record must match one of them to survive.
	var keep *filtering.Filter
	if len(limits) > 0 {
		keep, err = filtering.CreateFilter(grammar, limits, false)
		if err != nil {
			return err
		}
	}

	// Exclude constraints reject: a record matching any of them is dropped.
	drop, err := filtering.CreateFilter(grammar, excludes)
	if err != nil {
		return err
	}

	// Short circuit --constraints mode: show what was compiled, not records.
	if cmd.Bool("constraints") {
		dumpConstraints(keep, drop)
		return nil
	}

	var filtered []map[string]string
	for _, rec := range records {
		if keep != nil && !keep.Match(rec) {
			continue
		}
		if !drop.Match(rec) {
			continue
		}
		filtered = append(filtered, rec)
	}
	log.Debugf("kept %d of %d records", len(filtered), len(records))

	columns := fields.Known()
	if cmd.Bool("brief") {
		columns = []string{"host"}
	}

	if cmd.Bool("titles") {
		cmd.Metadata["footer"] = fmt.Sprintf("%s of %s records",
			humanize.Comma(int64(len(filtered))), humanize.Comma(int64(len(records))))
	}

	output.Spit(filtered, columns, cmd, os.Stdout)

	return nil
}

// dumpConstraints prints the compiled predicate descriptions of both filters,
// tagged with the policy they were compiled under.
func dumpConstraints(keep *filtering.Filter, drop *filtering.Filter) {
	if keep != nil {
		for _, p := range keep.Predicates {
			fmt.Printf("limit   %s\n", p.Description())
		}
	}
	for _, p := range drop.Predicates {
		fmt.Printf("exclude %s\n", p.Description())
	}
}

// iqCommandBuilder constructs the cli.Command for "iq", wiring metadata,
// flags, and the action handler.
func iqCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "iq",
		Usage:     "inventory query",
		UsageText: "invctl iq [constraint ...] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags(),
			NewInventoryFlag("iq", meta.Config.Source),
			&cli.StringSliceFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "keep only records matching the constraint (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "drop records matching the constraint (repeatable)",
			},
			&cli.BoolFlag{
				Name:    "brief",
				Aliases: []string{"b"},
				Usage:   "show host names only",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:        "constraints",
				Usage:       "show the compiled constraints instead of records",
				HideDefault: true,
			},
		),
		Action: iqCommandAction,
	}
}
