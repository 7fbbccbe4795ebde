// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filtering compiles filter constraint expressions into a single
// composed filter over inventory records.
//
// A record is a flat map of inventory field name to string value. Constraints
// come in two shapes:
//
//   - "<field>=<value-regex>" : the named field must match the value regex.
//     The field name must be a member of the known field-name set the Grammar
//     was built from. The value regex is case-insensitive and anchored at
//     both ends, so "host=web.*" matches "web1" but not "myweb1".
//
//   - "@<path>" : load a hostname set from the file at <path> and match
//     records whose "host" field is a member. A ".csv" file is read as a
//     comment-aware CSV and contributes its "host" column; any other file is
//     read as plain text, one host per line, where "#" lines and blank lines
//     are skipped and only the first whitespace-or-comma-delimited token of
//     each line is taken.
//
// Anything else is rejected with an InvalidExpressionError.
//
// CreateFilter compiles a constraint list into a Filter. Compilation is
// all-or-nothing: the first bad constraint aborts the call. The include flag
// decides how predicate matches combine:
//
//	include=true  : a record matching ANY predicate is dropped
//	include=false : a record matching ANY predicate is kept
//
// The compiled Filter holds only immutable state (compiled regexes, hostname
// sets), performs no I/O, and is safe for concurrent use.
package filtering
