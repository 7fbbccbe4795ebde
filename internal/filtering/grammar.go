// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filtering

import (
	"regexp"
	"strings"
)

// fileRefRegex matches the "@<path>" constraint shape. Everything after the
// leading @ is the path, so relative, absolute and dotted paths all work.
var fileRefRegex = regexp.MustCompile(`^@(.+)$`)

// ExprKind identifies the grammar rule a constraint matched.
type ExprKind int

const (
	// ExprFieldValue is a "<field>=<value-regex>" constraint.
	ExprFieldValue ExprKind = iota
	// ExprFileRef is a "@<path>" constraint.
	ExprFileRef
)

// Expr is one classified constraint. Path is set for ExprFileRef; Field and
// Value are set for ExprFieldValue. Raw is always the original constraint
// string.
type Expr struct {
	Kind  ExprKind
	Raw   string
	Path  string
	Field string
	Value string
}

// Grammar classifies raw constraint strings. It is built from the known
// field-name set, so an unknown field name in a "field=value" constraint
// simply fails to match and is reported as an invalid expression. Build one
// with NewGrammar and share it; a Grammar is immutable.
type Grammar struct {
	fieldValueRegex *regexp.Regexp
}

// NewGrammar builds a Grammar that accepts "field=value" constraints for
// exactly the given field names.
func NewGrammar(fieldNames []string) Grammar {
	quoted := make([]string, len(fieldNames))
	for i, name := range fieldNames {
		quoted[i] = regexp.QuoteMeta(name)
	}

	return Grammar{
		fieldValueRegex: regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)=(\S+)$`),
	}
}

// Parse classifies a single raw constraint. The "@<path>" shape is checked
// first, then "field=value". A constraint matching neither returns an
// InvalidExpressionError naming the constraint. Classification is purely
// syntactic; no file access or regex compilation happens here.
func (g Grammar) Parse(constraint string) (Expr, error) {
	if parts := fileRefRegex.FindStringSubmatch(constraint); parts != nil {
		return Expr{
			Kind: ExprFileRef,
			Raw:  constraint,
			Path: parts[1],
		}, nil
	}

	if parts := g.fieldValueRegex.FindStringSubmatch(constraint); parts != nil {
		return Expr{
			Kind:  ExprFieldValue,
			Raw:   constraint,
			Field: parts[1],
			Value: parts[2],
		}, nil
	}

	return Expr{}, &InvalidExpressionError{Constraint: constraint}
}
