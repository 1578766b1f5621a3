package ui

import (
	"strings"

	"github.com/vrclub/kiosk/internal/catalog"
)

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(r))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// moveRecord returns a copy of records with the element at from moved
// to position to. Out-of-range arguments hand back the input unchanged.
func moveRecord(records []catalog.GameRecord, from, to int) []catalog.GameRecord {
	if from < 0 || from >= len(records) || to < 0 || to >= len(records) || from == to {
		return records
	}
	out := make([]catalog.GameRecord, 0, len(records))
	out = append(out, records...)
	rec := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]catalog.GameRecord{rec}, out[to:]...)...)
	return out
}
