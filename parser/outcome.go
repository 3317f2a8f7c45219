package parser

import (
	"argos/diag"
	"argos/envbind"
	"argos/schema"
	"argos/snapshot"
	"argos/token"
	"argos/value"
)

// OutcomeKind tags the four terminal shapes a parse invocation can
// produce (spec.md §6.2 "Parse entry").
type OutcomeKind int

const (
	Parsed OutcomeKind = iota
	HelpRequested
	VersionRequested
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Parsed:
		return "parsed"
	case HelpRequested:
		return "help-requested"
	case VersionRequested:
		return "version-requested"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the single return value of Parse. Which fields are
// meaningful depends on Kind: Cells/ActiveDomain for Parsed and Failed
// (on Failed they hold whatever was bound before the pipeline stopped),
// Snapshot for HelpRequested/VersionRequested, Errors only for Failed.
type Outcome struct {
	Kind         OutcomeKind
	Cells        map[string]*value.Cell
	ActiveDomain string
	Snapshot     *snapshot.Snapshot
	Errors       []*diag.Error
	Suppressed   string
	SessionID    string
}

// Get returns the bound value for owner and whether it is bound at
// all — the "value query" surface of spec.md §6.2. The shape of the
// returned value follows the owner's Arity: a scalar for
// ArityScalar, []any for ArityList/ArityFixed, []any (de-duplicated,
// by key for key-value pairs) for ArritySet/ArityKeyValue, int for
// ArityCount.
func (o *Outcome) Get(owner string) (any, bool) {
	cell, ok := o.Cells[owner]
	if !ok || !cell.Bound() {
		return nil, false
	}
	switch cell.Arity {
	case value.ArityList, value.ArityFixed:
		return cell.List(), true
	case value.ArritySet, value.ArityKeyValue:
		return cell.Set(), true
	case value.ArityCount:
		return cell.Count(), true
	default:
		return cell.Scalar(), true
	}
}

// Provenance reports the source a cell acquired its value from.
func (o *Outcome) Provenance(owner string) value.Source {
	if cell, ok := o.Cells[owner]; ok {
		return cell.Source
	}
	return value.SourceMissing
}

// Providers bundles the host collaborators the core consults (spec.md
// §6.1): an environment reader and an @file reader. Neither is
// exercised for anything beyond those two narrow, read-only seams.
type Providers struct {
	Env  envbind.Reader
	File token.FileReader
}

// DefaultProviders wires the OS-backed readers, the providers a host
// gets unless it supplies its own (e.g. a test harness, or
// providers/viperdefaults' layered environment).
func DefaultProviders() Providers {
	return Providers{Env: envbind.OSEnv{}, File: token.OSFileReader{}}
}

func newCells(sch *schema.Schema) map[string]*value.Cell {
	cells := make(map[string]*value.Cell)
	for _, o := range sch.Options() {
		cells[o.Owner] = value.NewCell(o.Owner, o.Arity)
	}
	for _, p := range sch.Positionals() {
		cells[p.Owner] = value.NewCell(p.Owner, p.Arity)
	}
	return cells
}
