// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strconv"
	"strings"
)

// SortDataset sorts records in place per the comma-separated spec. Each spec
// entry names a field; a "-" prefix sorts that field descending and a "!"
// prefix makes the comparison case-sensitive. Fields whose values both parse
// as integers compare numerically. An empty spec leaves the order untouched.
func SortDataset(resultSet []map[string]string, spec string) {
	if spec == "" {
		return
	}

	fields := strings.Split(spec, ",")

	sort.SliceStable(resultSet, func(one, two int) bool {

		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneValue := resultSet[one][field]
			twoValue := resultSet[two][field]

			// Compare numerically if both values parse as integers.
			oneInt, oneErr := strconv.Atoi(oneValue)
			twoInt, twoErr := strconv.Atoi(twoValue)

			if oneErr == nil && twoErr == nil {
				if oneInt != twoInt {
					if ascending {
						return oneInt < twoInt
					}
					return oneInt > twoInt
				}
				continue
			}

			compareOne := oneValue
			compareTwo := twoValue
			if !caseSensitive {
				compareOne = strings.ToLower(oneValue)
				compareTwo = strings.ToLower(twoValue)
			}

			if compareOne != compareTwo {
				if ascending {
					return compareOne < compareTwo
				}
				return compareOne > compareTwo
			}

		}
		return false
	})
}
