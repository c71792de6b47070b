// Package analyzer validates bit-packed record layouts: it sums the widths a
// record's fields resolved to, classifies the total modulo 8, and gates the
// record on the class-0 capability. The whole pass is pure and allocation
// free; records never share state, so callers may analyze them in parallel.
package analyzer

import (
	"github.com/alexhholmes/bitcheck/internal/parser"
)

// Outcome is the terminal result of validating one record definition.
type Outcome struct {
	Record     string
	Total      uint
	Residue    uint
	Accepted   bool
	Diagnostic string // empty when accepted
}

// Sum accumulates the resolved field widths. The result is order-independent;
// declaration order matters only for diagnostic traceability upstream.
// Bounded by 65 fields of 64 bits, so uint never overflows.
func Sum(fields []parser.Field) uint {
	var total uint
	for _, f := range fields {
		total += f.Width
	}
	return total
}

// Analyze runs the full pipeline for one record: accumulate, classify, gate.
// A record that failed field extraction is rejected as-is; its diagnostic is
// the extractor's, independent of divisibility. The record's own strategy
// annotation, when present, overrides the caller's.
func Analyze(rec *parser.Record, strategy Strategy) Outcome {
	if rec.Err != nil {
		return Outcome{
			Record:     rec.Name,
			Accepted:   false,
			Diagnostic: rec.Err.Error(),
		}
	}

	if rec.Anno != nil && rec.Anno.Strategy != "" {
		// Annotation values were validated at parse time, but a hand-built
		// record could carry anything
		s, err := ParseStrategy(rec.Anno.Strategy)
		if err != nil {
			return Outcome{
				Record:     rec.Name,
				Accepted:   false,
				Diagnostic: err.Error(),
			}
		}
		strategy = s
	}

	total := Sum(rec.Fields)
	residue := Classify(total)

	out := Outcome{
		Record:  rec.Name,
		Total:   total,
		Residue: residue.Class(),
	}

	if err := GateFor(strategy).Check(total); err != nil {
		out.Diagnostic = err.Error()
		return out
	}

	out.Accepted = true
	return out
}
