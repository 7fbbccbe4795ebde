// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filtering

import "fmt"

// InvalidExpressionError reports a constraint that matches neither grammar
// rule, or whose value pattern failed to compile as a regular expression. Err
// carries the regexp engine diagnostic in the latter case and is nil in the
// former.
type InvalidExpressionError struct {
	Constraint string
	Err        error
}

func (e *InvalidExpressionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid filter expression: %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("invalid filter expression: %s", e.Constraint)
}

func (e *InvalidExpressionError) Unwrap() error {
	return e.Err
}

// FileNotFoundError reports a "@<path>" constraint whose path does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("filter file not found: %s", e.Path)
}
