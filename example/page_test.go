package example

import (
	"testing"

	"github.com/alexhholmes/bitcheck"
)

// Every record in this package must be byte-aligned.
func TestExampleRecordsAreAligned(t *testing.T) {
	outcomes, err := bitcheck.CheckFile("page.go", bitcheck.Options{})
	if err != nil {
		t.Fatalf("CheckFile() error: %v", err)
	}

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 records, got %d", len(outcomes))
	}

	for _, o := range outcomes {
		if !o.Accepted {
			t.Errorf("%s rejected: %s", o.Record, o.Diagnostic)
		}
		if o.Total%8 != 0 {
			t.Errorf("%s total %d is not a multiple of 8", o.Record, o.Total)
		}
	}
}
