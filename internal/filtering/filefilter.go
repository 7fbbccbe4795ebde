// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filtering

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/invctl/invctl/internal/inventory"
)

// wordSepRegex splits plain-text host list lines. Both whitespace and commas
// are separators, so "host2,host3" contributes "host2" only.
var wordSepRegex = regexp.MustCompile(`[\s,]+`)

// newFileFilter builds a host-membership predicate from the file at path. A
// ".csv" file is read with the comment-aware CSV reader and contributes its
// "host" column; any other file is read as a plain-text host list. An empty
// file yields an always-false predicate, not an error. Open and read failures
// surface as I/O errors naming the path.
func newFileFilter(path string) (Predicate, error) {
	var (
		hosts map[string]struct{}
		err   error
	)

	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		hosts, err = csvHosts(path)
	} else {
		hosts, err = plainHosts(path)
	}
	if err != nil {
		return nil, err
	}

	return newHostMembership(hosts, path), nil
}

// csvHosts collects the "host" column of every CSV record into a set.
func csvHosts(path string) (map[string]struct{}, error) {
	records, err := inventory.ReadCSV(path)
	if err != nil {
		return nil, err
	}

	hosts := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if host := rec["host"]; host != "" {
			hosts[host] = struct{}{}
		}
	}

	return hosts, nil
}

// plainHosts reads a plain-text host list. Lines beginning with "#" and
// blank lines are skipped; only the first whitespace-or-comma-delimited token
// of each remaining line is taken, any trailing content is ignored.
func plainHosts(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter file %s: %w", path, err)
	}
	defer file.Close()

	hosts := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		tokens := wordSepRegex.Split(strings.TrimLeft(line, " \t"), 2)
		if len(tokens) == 0 || tokens[0] == "" {
			continue
		}
		hosts[tokens[0]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read filter file %s: %w", path, err)
	}

	return hosts, nil
}
