// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]string{
		{"host": "zebra", "ipaddr": "10.0.0.3", "weight": "3"},
		{"host": "Alpha", "ipaddr": "10.0.0.1", "weight": "10"},
		{"host": "beta", "ipaddr": "10.0.0.2", "weight": "2"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by host",
			spec:      "host",
			wantOrder: []string{"Alpha", "beta", "zebra"},
		},
		{
			name:      "descending by host",
			spec:      "-host",
			wantOrder: []string{"zebra", "beta", "Alpha"},
		},
		{
			name:      "numeric ascending by weight",
			spec:      "weight",
			wantOrder: []string{"beta", "zebra", "Alpha"},
		},
		{
			name:      "numeric descending by weight",
			spec:      "-weight",
			wantOrder: []string{"Alpha", "zebra", "beta"},
		},
		{
			name:      "case sensitive",
			spec:      "!host",
			wantOrder: []string{"Alpha", "beta", "zebra"},
		},
		{
			name:      "multiple fields",
			spec:      "ipaddr,host",
			wantOrder: []string{"Alpha", "beta", "zebra"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "Alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]string, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedHost := range tt.wantOrder {
				assert.Equal(t, expectedHost, data[i]["host"], "at index %d", i)
			}
		})
	}
}
