package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	sqlLineComment   = regexp.MustCompile(`--[^\n]*`)
	sqlWhitespace    = regexp.MustCompile(`\s+`)
	sqlStringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)
	placeholderRun   = regexp.MustCompile(`\$\d+(?:\s*,\s*\$\d+){3,}`)
)

// formatDBQueryForTrace flattens a statement for span attributes. String
// literals become '?' so seed values and names stay out of traces, and long
// placeholder lists from multi-row fixture inserts collapse to "$a..$b".
func formatDBQueryForTrace(query string) string {
	query = sqlLineComment.ReplaceAllString(query, " ")
	query = strings.TrimSpace(sqlWhitespace.ReplaceAllString(query, " "))
	if query == "" {
		return query
	}

	query = sqlStringLiteral.ReplaceAllString(query, "'?'")
	query = placeholderRun.ReplaceAllStringFunc(query, func(run string) string {
		parts := strings.Split(run, ",")
		return strings.TrimSpace(parts[0]) + ".." + strings.TrimSpace(parts[len(parts)-1])
	})

	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
