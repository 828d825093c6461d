package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// The warehouse never standardized its month encoding: older loads wrote
// "2023/4", newer ones "2023-04", and a few tenants "2023-4". Everything is
// canonicalized to "YYYY-MM" here so the analytics engine only ever sees one
// shape and lexical sort is chronological.
func canonicalMonth(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	sep := "-"
	if strings.Contains(raw, "/") {
		sep = "/"
	}
	parts := strings.Split(raw, sep)
	if len(parts) != 2 {
		return "", false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 1000 || year > 9999 {
		return "", false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", year, month), true
}

// Weekly rows carry ISO year and week in separate columns.
func canonicalWeek(year, week int) (string, bool) {
	if year < 1000 || year > 9999 || week < 1 || week > 53 {
		return "", false
	}
	return fmt.Sprintf("%04d-W%02d", year, week), true
}
