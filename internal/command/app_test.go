// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/invctl/invctl/internal/meta"
)

func TestInitApp(t *testing.T) {
	t.Setenv("INVCTL_CFG_FILE", "/nonexistent/invctl.yaml")

	app, err := InitApp(context.Background(), []string{"invctl", "iq"})
	require.NoError(t, err)
	assert.Equal(t, "invctl", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)

		// Flags must be sorted for the --help text.
		for i := 1; i < len(cmd.Flags); i++ {
			assert.LessOrEqual(t, cmd.Flags[i-1].Names()[0], cmd.Flags[i].Names()[0],
				"flags of %s not sorted", cmd.Name)
		}
	}
	assert.Contains(t, names, "iq")
	assert.Contains(t, names, "fields")
}

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cli.Command
		want string
	}{
		{
			name: "nil command",
			cmd:  nil,
			want: "",
		},
		{
			name: "nil metadata",
			cmd:  &cli.Command{},
			want: "",
		},
		{
			name: "wrong type",
			cmd:  &cli.Command{Metadata: map[string]any{"meta": "oops"}},
			want: "",
		},
		{
			name: "valid meta",
			cmd: &cli.Command{Metadata: map[string]any{
				"meta": meta.Meta{StartingDir: "/tmp/somewhere"},
			}},
			want: "/tmp/somewhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMeta(tt.cmd).StartingDir)
		})
	}
}

func TestOutputValidator(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml"} {
		assert.NoError(t, OutputValidator(valid))
	}
	for _, invalid := range []string{"raw", "csv", ""} {
		assert.Error(t, OutputValidator(invalid))
	}
}
