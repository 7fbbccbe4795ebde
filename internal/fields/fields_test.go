// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package fields

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invctl/invctl/internal/config"
)

func TestKnownDefaults(t *testing.T) {
	// Point at a nonexistent config so the defaults apply.
	t.Setenv("INVCTL_CFG_FILE", "/nonexistent/invctl.yaml")
	config.Config = config.Type{}

	assert.Equal(t, Defaults, Known())
}

func TestKnownConfigOverride(t *testing.T) {
	absPath, err := filepath.Abs(filepath.Join("testdata", "fields.yaml"))
	require.NoError(t, err)
	t.Setenv("INVCTL_CFG_FILE", absPath)
	config.Config = config.Type{}

	assert.Equal(t, []string{"host", "ipaddr", "os_name", "site"}, Known())
}
