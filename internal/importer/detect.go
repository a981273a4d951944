package importer

import "strings"

// Detect classifies the document shape from its header row. The net-worth
// check runs first so that a report carrying both header sets is treated
// as a Net Worth Report.
func Detect(header []string) Format {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.ToLower(strings.TrimSpace(h))] = true
	}
	if have["month"] && have["account type"] {
		return FormatNetWorth
	}
	if have["inflow"] && have["outflow"] && have["account"] {
		return FormatRegister
	}
	return FormatNone
}

// columnIndex returns the index of the header equal to name
// (case-insensitive, trimmed), or -1.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// columnContaining returns the index of the first header containing the
// substring (case-insensitive), or -1.
func columnContaining(header []string, substr string) int {
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), substr) {
			return i
		}
	}
	return -1
}

// cell returns the trimmed field at index i, tolerating short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
