// Package compliance decides whether a generated image preserved the
// structural inventory of its source.
package compliance

import (
	"fmt"
	"strings"

	"archviz/internal/domain"
)

// FieldDelta records one gated field where the candidate diverged from the
// source. Presence fields are carried as 0/1 counts so every delta renders
// the same way in the fix-note.
type FieldDelta struct {
	Field    string `json:"field"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
}

// Verdict is the outcome of comparing two inventories. It is derived, never
// stored; it lives only within one generation call.
type Verdict struct {
	Match  bool         `json:"match"`
	Deltas []FieldDelta `json:"deltas,omitempty"`
}

// Compare checks the candidate inventory against the source inventory on the
// gated fields: window, door, skylight, sink and faucet counts, washer/dryer
// presence, built-in-bench presence. Everything else in the inventory
// (per-wall breakdowns, positions, camera angle) is advisory and never
// affects the verdict.
//
// Fail-open rule: a nil inventory means the audit infrastructure failed
// outright, and the comparison is treated as a match so an audit outage can
// never block delivery of a render.
func Compare(source, candidate *domain.StructuralInventory) Verdict {
	if source == nil || candidate == nil {
		return Verdict{Match: true}
	}

	var deltas []FieldDelta
	check := func(field string, expected, actual int) {
		if expected != actual {
			deltas = append(deltas, FieldDelta{Field: field, Expected: expected, Actual: actual})
		}
	}

	check("Windows", source.Windows.Count, candidate.Windows.Count)
	check("Doors", source.Doors.Count, candidate.Doors.Count)
	check("Skylights", source.Skylights.Count, candidate.Skylights.Count)
	check("Sinks", source.Sink.Count, candidate.Sink.Count)
	check("Faucets", source.Faucets.Count, candidate.Faucets.Count)
	check("Washer/dryer", boolCount(source.WasherDryer.Present), boolCount(candidate.WasherDryer.Present))
	check("Built-in bench", boolCount(source.BuiltInBench.Present), boolCount(candidate.BuiltInBench.Present))

	return Verdict{Match: len(deltas) == 0, Deltas: deltas}
}

// FixNote renders the machine-readable mismatch explanation injected into the
// corrective prompt. One line per mismatched field, nothing for fields that
// matched.
func (v Verdict) FixNote() string {
	if v.Match || len(v.Deltas) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Your previous output FAILED structure compliance.\n")
	b.WriteString("You MUST match the structure inventory of the input photo exactly.\n")
	for _, d := range v.Deltas {
		fmt.Fprintf(&b, "- %s: expected %d, got %d. Input has %d, you MUST have exactly %d.\n",
			d.Field, d.Expected, d.Actual, d.Expected, d.Expected)
	}
	b.WriteString("DO NOT add or remove any openings or fixtures.")
	return b.String()
}

func boolCount(present bool) int {
	if present {
		return 1
	}
	return 0
}
