package catalog

// SelectorAll is the sentinel selector that includes every record.
const SelectorAll = "ALL"

// Filter projects the visible subsequence for a tag selector. Under
// SelectorAll every record is included in catalog order; under a tag
// selector a record is included iff its tags contain the tag exactly
// (case-sensitive, no prefix matching). The input is never mutated.
func Filter(records []GameRecord, selector string) []GameRecord {
	if selector == SelectorAll {
		out := make([]GameRecord, len(records))
		copy(out, records)
		return out
	}
	var out []GameRecord
	for _, r := range records {
		if r.HasTag(selector) {
			out = append(out, r)
		}
	}
	return out
}
