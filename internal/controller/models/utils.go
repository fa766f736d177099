package models

import (
	"fmt"
	"strings"
)

// prefixColumns rewrites a comma-separated column list so that every
// column is qualified with the given table alias.
func prefixColumns(columns, alias string) string {
	parts := strings.Split(columns, ",")
	prefixed := make([]string, 0, len(parts))
	for _, part := range parts {
		column := strings.TrimSpace(part)
		if column == "" {
			continue
		}
		prefixed = append(prefixed, fmt.Sprintf("%s.%s", alias, column))
	}
	return strings.Join(prefixed, ", ")
}
