// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package inventory loads device inventory records from CSV or JSON files.
// Records are flat maps of field name to string value. The CSV reader is
// comment-aware: lines beginning with "#" are skipped, which lets inventories
// carry inline annotations.
package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// Load reads the inventory at path. The extension selects the format: ".csv"
// for comment-aware CSV, ".json" for a top-level JSON array of objects.
// Anything else is rejected.
func Load(path string) ([]map[string]string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return ReadCSV(path)
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return readJSON(path)
	default:
		return nil, fmt.Errorf("unsupported inventory format: %s", path)
	}
}

// ReadCSV reads a comment-aware CSV file into records. The first row is the
// header and supplies the field names; each subsequent row becomes one
// record. Rows shorter than the header fill the missing fields with empty
// strings, longer rows have their extra cells dropped. A file with a header
// and no rows yields an empty record set, not an error.
func ReadCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	log.Debugf("loaded %d records from %s", len(records), path)
	return records, nil
}

// readJSON reads a JSON inventory: a top-level array of flat objects. Values
// are coerced to strings, nested values are flattened to their raw JSON.
func readJSON(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("inventory %s is not a JSON array", path)
	}

	var records []map[string]string
	parsed.ForEach(func(_, row gjson.Result) bool {
		rec := make(map[string]string)
		row.ForEach(func(key, value gjson.Result) bool {
			rec[key.String()] = value.String()
			return true
		})
		records = append(records, rec)
		return true
	})

	log.Debugf("loaded %d records from %s", len(records), path)
	return records, nil
}
