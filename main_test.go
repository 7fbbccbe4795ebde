// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "binary only gets help",
			args:     []string{"invctl"},
			expected: []string{"invctl", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"invctl", "iq"},
			expected: []string{"invctl", "iq"},
		},
		{
			name:     "command with flags unchanged",
			args:     []string{"invctl", "iq", "--titles"},
			expected: []string{"invctl", "iq", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "long flag",
			args:     []string{"invctl", "--version"},
			expected: true,
		},
		{
			name:     "short flag",
			args:     []string{"invctl", "-v"},
			expected: true,
		},
		{
			name:     "flag after command",
			args:     []string{"invctl", "iq", "--version"},
			expected: true,
		},
		{
			name:     "no version flag",
			args:     []string{"invctl", "iq", "--titles"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.expected {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}
