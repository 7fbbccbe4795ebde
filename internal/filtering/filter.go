// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filtering

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"
)

// Filter is the compiled form of a constraint list: the ordered predicates,
// the original constraint strings they were compiled from, and the include
// policy. Construct one with CreateFilter; a Filter is immutable and safe for
// concurrent use.
type Filter struct {
	Predicates  []Predicate
	Constraints []string

	include bool
}

// Match applies each predicate in order and short-circuits on the first hit.
// The combination policy is deliberately asymmetric:
//
//	include=true  : a record matching ANY predicate is dropped (the
//	                constraints are exclusion criteria)
//	include=false : a record matching ANY predicate is kept (the
//	                constraints are selection criteria)
//
// With no predicates, Match returns the include flag. Predicate order never
// changes the result, only which predicate short-circuits first.
func (f *Filter) Match(rec Record) bool {
	for _, p := range f.Predicates {
		if p.Match(rec) {
			return !f.include
		}
	}
	return f.include
}

// Include reports the include policy the filter was built with.
func (f *Filter) Include() bool {
	return f.include
}

// CreateFilter compiles constraints into a single Filter using the given
// grammar. The include flag defaults to true when omitted.
//
// Compilation is fail-fast and all-or-nothing: the first constraint that is
// syntactically invalid, names a missing file, or carries a malformed value
// regex aborts the call and no partial filter is returned. "@<path>"
// constraints are stat-checked here before the file is read, so a missing
// path reports a FileNotFoundError rather than a generic read failure.
func CreateFilter(grammar Grammar, constraints []string, include ...bool) (*Filter, error) {
	inc := true
	if len(include) == 1 {
		inc = include[0]
	}

	predicates := make([]Predicate, 0, len(constraints))
	for _, constraint := range constraints {
		expr, err := grammar.Parse(constraint)
		if err != nil {
			return nil, err
		}

		var pred Predicate
		switch expr.Kind {
		case ExprFileRef:
			if _, statErr := os.Stat(expr.Path); statErr != nil {
				if errors.Is(statErr, fs.ErrNotExist) {
					return nil, &FileNotFoundError{Path: expr.Path}
				}
				return nil, fmt.Errorf("failed to stat filter file %s: %w", expr.Path, statErr)
			}
			pred, err = newFileFilter(expr.Path)
		case ExprFieldValue:
			pred, err = newFieldMatch(expr)
		}
		if err != nil {
			return nil, err
		}

		log.Debugf("compiled filter predicate: %s", pred.Description())
		predicates = append(predicates, pred)
	}

	return &Filter{
		Predicates:  predicates,
		Constraints: constraints,
		include:     inc,
	}, nil
}
