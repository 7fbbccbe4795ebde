// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filtering

import (
	"fmt"
	"regexp"
)

// Record is one inventory record: field name to string value. Records are
// supplied per call by the caller; the filtering package never stores them.
type Record map[string]string

// Predicate is one compiled constraint test. Description returns the
// originating constraint string for diagnostics.
type Predicate interface {
	Match(rec Record) bool
	Description() string
}

// fieldMatch tests one record field against an anchored, case-insensitive
// regular expression.
type fieldMatch struct {
	field string
	regex *regexp.Regexp
	desc  string
}

// newFieldMatch compiles the value pattern with implicit ^...$ anchors and
// case folding. A malformed pattern returns an InvalidExpressionError that
// carries both the raw constraint and the regexp diagnostic.
func newFieldMatch(expr Expr) (Predicate, error) {
	regex, err := regexp.Compile(`(?i)^` + expr.Value + `$`)
	if err != nil {
		return nil, &InvalidExpressionError{Constraint: expr.Raw, Err: err}
	}

	return &fieldMatch{
		field: expr.Field,
		regex: regex,
		desc:  expr.Raw,
	}, nil
}

func (p *fieldMatch) Match(rec Record) bool {
	return p.regex.MatchString(rec[p.field])
}

func (p *fieldMatch) Description() string {
	return p.desc
}

// hostMembership tests whether a record's host field is a member of a fixed
// hostname set. The set is populated once at construction and never mutated.
type hostMembership struct {
	hosts map[string]struct{}
	desc  string
}

func newHostMembership(hosts map[string]struct{}, path string) Predicate {
	return &hostMembership{
		hosts: hosts,
		desc:  fmt.Sprintf("@%s", path),
	}
}

func (p *hostMembership) Match(rec Record) bool {
	_, found := p.hosts[rec["host"]]
	return found
}

func (p *hostMembership) Description() string {
	return p.desc
}
