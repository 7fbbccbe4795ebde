// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filtering

import (
	"embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testFieldNames is the field-name set used throughout the filtering tests.
var testFieldNames = []string{"host", "ipaddr", "os_name"}

// testGrammarCase represents a single test case for TestGrammarParse.
type testGrammarCase struct {
	Name        string `yaml:"name"`
	Constraint  string `yaml:"constraint"`
	WantKind    string `yaml:"wantKind"` // fileref, fieldvalue or invalid
	WantPath    string `yaml:"wantPath"`
	WantField   string `yaml:"wantField"`
	WantValue   string `yaml:"wantValue"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestGrammarParse(t *testing.T) {
	var tests []testGrammarCase
	require.NoError(t, loadTestData("grammar_test_parse.yaml", &tests))

	grammar := NewGrammar(testFieldNames)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			expr, err := grammar.Parse(tt.Constraint)

			if tt.WantKind == "invalid" {
				require.Error(t, err)

				var invalidErr *InvalidExpressionError
				require.True(t, errors.As(err, &invalidErr))
				assert.Equal(t, tt.Constraint, invalidErr.Constraint)
				assert.Contains(t, err.Error(), tt.Constraint)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.Constraint, expr.Raw)

			switch tt.WantKind {
			case "fileref":
				assert.Equal(t, ExprFileRef, expr.Kind)
				assert.Equal(t, tt.WantPath, expr.Path)
			case "fieldvalue":
				assert.Equal(t, ExprFieldValue, expr.Kind)
				assert.Equal(t, tt.WantField, expr.Field)
				assert.Equal(t, tt.WantValue, expr.Value)
			default:
				t.Fatalf("unknown wantKind %q", tt.WantKind)
			}
		})
	}
}

func TestGrammarFieldNamesAreQuoted(t *testing.T) {
	// A field name containing regex metacharacters must be matched literally.
	grammar := NewGrammar([]string{"os.name"})

	_, err := grammar.Parse("osXname=ios")
	assert.Error(t, err)

	expr, err := grammar.Parse("os.name=ios")
	require.NoError(t, err)
	assert.Equal(t, ExprFieldValue, expr.Kind)
	assert.Equal(t, "os.name", expr.Field)
}
