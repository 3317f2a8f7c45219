package diag

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/uuid/v5"
)

// Diagnostics accumulates errors across a parse invocation, keeping
// only the first error when Aggregate is false, or truncating with a
// summary line once the accumulated count reaches Cap when Aggregate
// is true
// (spec.md §4.8 "Aggregation", invariant 6).
type Diagnostics struct {
	SessionID string

	aggregate bool
	cap       int
	errs      []*Error
	suppressed int
}

// NewDiagnostics starts a fresh batch, stamped with a session
// correlation id the way cli/license/license.go stamps a license's jti
// claim — here repurposed so a host can thread one parse invocation's
// diagnostics through its own structured logs.
func NewDiagnostics(aggregate bool, cap int) *Diagnostics {
	id, err := uuid.NewV4()
	sessionID := ""
	if err == nil {
		sessionID = id.String()
	}
	return &Diagnostics{SessionID: sessionID, aggregate: aggregate, cap: cap}
}

// Add records e. Returns false once the pipeline must stop producing
// further diagnostics (aggregation disabled and one already recorded,
// or the cap has been reached).
func (d *Diagnostics) Add(e *Error) bool {
	if !d.aggregate {
		if len(d.errs) > 0 {
			return false
		}
		d.errs = append(d.errs, e)
		return false
	}
	if len(d.errs) >= d.cap {
		d.suppressed++
		return false
	}
	d.errs = append(d.errs, e)
	return len(d.errs) < d.cap
}

func (d *Diagnostics) Errors() []*Error { return d.errs }
func (d *Diagnostics) Empty() bool      { return len(d.errs) == 0 }

// SuppressedSummary renders a "N more errors suppressed by the cap"
// line when aggregation truncated the batch, polished with
// humanize.Comma the way the teacher formats large counts elsewhere in
// its output layer. Returns "" when nothing was suppressed.
func (d *Diagnostics) SuppressedSummary() string {
	if d.suppressed == 0 {
		return ""
	}
	return fmt.Sprintf("%s more error(s) suppressed by the aggregation cap", humanize.Comma(int64(d.suppressed)))
}

// Codes returns the numeric code of every accumulated error, in order.
func (d *Diagnostics) Codes() []int {
	out := make([]int, len(d.errs))
	for i, e := range d.errs {
		out[i] = e.Code
	}
	return out
}
