// Package argos is the public facade: a single import that re-exports
// the schema builder, the Parse entry point and the outcome/value
// query types, so a host program doesn't need to know the engine is
// split across value/schema/token/parser/diag/snapshot internally.
package argos

import (
	"argos/diag"
	"argos/parser"
	"argos/schema"
	"argos/snapshot"
	"argos/value"
)

// Schema description surface (spec.md §6.2 "Schema builder").
type (
	Builder        = schema.Builder
	BuilderOption  = schema.BuilderOption
	Schema         = schema.Schema
	OptionBuilder  = schema.OptionBuilder
	PositionalBuilder = schema.PositionalBuilder
	DomainBuilder  = schema.DomainBuilder
	DomainHandle   = schema.DomainHandle
	GroupKind      = schema.GroupKind
	EagerAction    = schema.EagerAction
)

const (
	GroupExactlyOne  = schema.GroupExactlyOne
	GroupAtMostOne   = schema.GroupAtMostOne
	GroupAtLeastOne  = schema.GroupAtLeastOne
	EagerNone        = schema.EagerNone
	EagerHelp        = schema.EagerHelp
	EagerVersion     = schema.EagerVersion
)

// NewBuilder starts a new schema description.
func NewBuilder(opts ...BuilderOption) *Builder { return schema.NewBuilder(opts...) }

var (
	WithLongPrefix             = schema.WithLongPrefix
	WithShortPrefix            = schema.WithShortPrefix
	WithSeparators             = schema.WithSeparators
	WithFilePrefix             = schema.WithFilePrefix
	WithFileExpansionDisabled  = schema.WithFileExpansionDisabled
	WithNegationPrefix         = schema.WithNegationPrefix
	WithClusteringDisabled     = schema.WithClusteringDisabled
	WithUnknownAsPositionals   = schema.WithUnknownAsPositionals
	WithAggregationDisabled    = schema.WithAggregationDisabled
	WithAggregationCap         = schema.WithAggregationCap
	WithSuggestionsDisabled    = schema.WithSuggestionsDisabled
	WithSuggestMaxDistance     = schema.WithSuggestMaxDistance
	WithMaxFileDepth           = schema.WithMaxFileDepth
)

// Parse entry point (spec.md §6.2 "Parse entry").
type (
	Outcome     = parser.Outcome
	OutcomeKind = parser.OutcomeKind
	Providers   = parser.Providers
	Options     = parser.Options
)

const (
	Parsed           = parser.Parsed
	HelpRequested    = parser.HelpRequested
	VersionRequested = parser.VersionRequested
	Failed           = parser.Failed
)

// Parse runs sch against args using the host-default providers
// (os.Environ + real files). Use ParseWith for a custom Providers, as
// a test harness or an alternate environment source (e.g.
// providers/viperdefaults) would.
func Parse(sch *Schema, args []string, opts ...Options) *Outcome {
	return parser.Parse(sch, args, parser.DefaultProviders(), opts...)
}

// ParseWith runs sch against args with an explicit Providers.
func ParseWith(sch *Schema, args []string, providers Providers, opts ...Options) *Outcome {
	return parser.Parse(sch, args, providers, opts...)
}

// Value model re-exports (spec.md §3 "ValueCell"/"Source").
type (
	Cell   = value.Cell
	Source = value.Source
)

const (
	SourceMissing     = value.SourceMissing
	SourceDefault     = value.SourceDefault
	SourceEnvironment = value.SourceEnvironment
	SourceUser        = value.SourceUser
)

// Diagnostics re-exports (spec.md §4.8).
type (
	Diagnostic = diag.Error
	DiagKind   = diag.Kind
)

// ExitCode maps a failed outcome's diagnostic codes to a shell exit
// code, per diag.ExitCode's MMCCNN convention.
func ExitCode(o *Outcome) int {
	if o.Kind != Failed {
		return 0
	}
	codes := make([]int, len(o.Errors))
	for i, e := range o.Errors {
		codes[i] = e.Code
	}
	return diag.ExitCode(true, codes)
}

// Snapshot re-export (spec.md §4.9).
type SchemaSnapshot = snapshot.Snapshot
