package snapshot

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"argos/schema"
	"argos/value"
)

// Snapshot is a deep, immutable projection of a built Schema — the
// sole surface visible to help renderers and completion generators
// (spec.md §4.9), modeled on the teacher's CapabilityMap/CommandNode
// command-tree projection.
type Snapshot struct {
	Settings           SettingsView       `json:"settings" yaml:"settings"`
	Options            []OptionView       `json:"options" yaml:"options"`
	Positionals        []PositionalView   `json:"positionals" yaml:"positionals"`
	Domains            []DomainNode       `json:"domains" yaml:"domains"`
	GlobalConstraints  []ConstraintView   `json:"global_constraints,omitempty" yaml:"global_constraints,omitempty"`
	ConstructionErrors []string           `json:"construction_errors,omitempty" yaml:"construction_errors,omitempty"`
}

type SettingsView struct {
	LongPrefix     string `json:"long_prefix" yaml:"long_prefix"`
	ShortPrefix    string `json:"short_prefix" yaml:"short_prefix"`
	Separators     string `json:"separators" yaml:"separators"`
	FileEnabled    bool   `json:"file_enabled" yaml:"file_enabled"`
	NegationPrefix string `json:"negation_prefix" yaml:"negation_prefix"`
	ClusterEnabled bool   `json:"cluster_enabled" yaml:"cluster_enabled"`
}

type OptionView struct {
	Owner            string   `json:"owner" yaml:"owner"`
	Switches         []string `json:"switches" yaml:"switches"`
	NegationSwitches []string `json:"negation_switches,omitempty" yaml:"negation_switches,omitempty"`
	Arity            string   `json:"arity" yaml:"arity"`
	Policy           string   `json:"policy" yaml:"policy"`
	Eager            string   `json:"eager,omitempty" yaml:"eager,omitempty"`
	DomainOnly       []string `json:"domain_only,omitempty" yaml:"domain_only,omitempty"`
	MinCount         int      `json:"min_count" yaml:"min_count"`
	EnvName          string   `json:"env_name,omitempty" yaml:"env_name,omitempty"`
	Hidden           bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Help             string   `json:"help,omitempty" yaml:"help,omitempty"`
	ValueDesc        string   `json:"value_desc,omitempty" yaml:"value_desc,omitempty"`
}

type PositionalView struct {
	Owner      string   `json:"owner" yaml:"owner"`
	Arity      string   `json:"arity" yaml:"arity"`
	Sequence   int      `json:"sequence" yaml:"sequence"`
	MinCount   int      `json:"min_count" yaml:"min_count"`
	DomainOnly []string `json:"domain_only,omitempty" yaml:"domain_only,omitempty"`
	Help       string   `json:"help,omitempty" yaml:"help,omitempty"`
	ValueDesc  string   `json:"value_desc,omitempty" yaml:"value_desc,omitempty"`
}

type DomainNode struct {
	Owner       string           `json:"owner" yaml:"owner"`
	Names       []string         `json:"names,omitempty" yaml:"names,omitempty"`
	Fragment    bool             `json:"fragment" yaml:"fragment"`
	Parents     []string         `json:"parents,omitempty" yaml:"parents,omitempty"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Constraints []ConstraintView `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

type ConstraintView struct {
	Kind            string   `json:"kind" yaml:"kind"`
	Owner           string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Refs            []string `json:"refs,omitempty" yaml:"refs,omitempty"`
	Ref             string   `json:"ref,omitempty" yaml:"ref,omitempty"`
	Group           string   `json:"group,omitempty" yaml:"group,omitempty"`
	Members         []string `json:"members,omitempty" yaml:"members,omitempty"`
	DeclaringDomain string   `json:"declaring_domain,omitempty" yaml:"declaring_domain,omitempty"`
}

// Build projects sch into a Snapshot. Pure and side-effect-free:
// calling it twice on the same Schema yields deep-equal results
// (spec.md invariant 7, "Snapshot purity").
func Build(sch *schema.Schema) *Snapshot {
	s := &Snapshot{Settings: settingsView(sch.Settings())}
	for _, o := range sch.Options() {
		s.Options = append(s.Options, optionView(sch, o))
	}
	for _, p := range sch.Positionals() {
		s.Positionals = append(s.Positionals, positionalView(p))
	}
	for _, d := range sch.Domains() {
		s.Domains = append(s.Domains, domainNode(d))
	}
	for _, c := range sch.GlobalConstraints() {
		s.GlobalConstraints = append(s.GlobalConstraints, constraintView(c))
	}
	for _, e := range sch.Errors() {
		s.ConstructionErrors = append(s.ConstructionErrors, e.Error())
	}
	return s
}

func settingsView(set schema.Settings) SettingsView {
	seps := ""
	for _, b := range set.Separators {
		seps += string(b)
	}
	return SettingsView{
		LongPrefix:     set.LongPrefix,
		ShortPrefix:    string(set.ShortPrefix),
		Separators:     seps,
		FileEnabled:    set.FileEnabled,
		NegationPrefix: set.NegationPrefix,
		ClusterEnabled: set.ClusterEnabled,
	}
}

func optionView(sch *schema.Schema, o *schema.OptionSpec) OptionView {
	v := OptionView{
		Owner:      o.Owner,
		Arity:      o.Arity.String(),
		Policy:     policyString(o.Policy),
		DomainOnly: o.DomainOnly,
		MinCount:   o.MinCount,
		EnvName:    o.EnvName,
		Hidden:     o.Hidden,
		Help:       o.Help,
		ValueDesc:  o.ValueDesc,
	}
	for _, sw := range o.Switches {
		v.Switches = append(v.Switches, sw.Token)
	}
	if o.Negatable {
		for _, sw := range o.Switches {
			if !sw.Long {
				continue
			}
			negTok := sch.Settings().LongPrefix + o.NegPrefix + sw.Token[len(sch.Settings().LongPrefix):]
			v.NegationSwitches = append(v.NegationSwitches, negTok)
		}
	}
	switch o.Eager {
	case schema.EagerHelp:
		v.Eager = "help"
	case schema.EagerVersion:
		v.Eager = "version"
	}
	return v
}

func policyString(p value.Policy) string {
	switch p {
	case value.PolicyFlagOnly:
		return "flag-only"
	case value.PolicyOptionalValue:
		return "optional-value"
	default:
		return "requires-value"
	}
}

func positionalView(p *schema.PositionalSpec) PositionalView {
	return PositionalView{
		Owner:      p.Owner,
		Arity:      p.Arity.String(),
		Sequence:   p.Sequence,
		MinCount:   p.MinCount,
		DomainOnly: p.DomainOnly,
		Help:       p.Help,
		ValueDesc:  p.ValueDesc,
	}
}

func domainNode(d *schema.DomainSpec) DomainNode {
	n := DomainNode{
		Owner:       d.Owner,
		Names:       d.Names,
		Fragment:    d.Fragment,
		Parents:     d.Parents,
		Label:       d.Label,
		Description: d.Description,
	}
	for _, c := range d.Constraints {
		c.DeclaringDomain = d.Owner
		n.Constraints = append(n.Constraints, constraintView(c))
	}
	return n
}

func constraintView(c schema.Constraint) ConstraintView {
	return ConstraintView{
		Kind:            constraintKindString(c.Kind),
		Owner:           c.Owner,
		Refs:            c.Refs,
		Ref:             c.Ref,
		Group:           groupKindString(c),
		Members:         c.Members,
		DeclaringDomain: c.DeclaringDomain,
	}
}

func groupKindString(c schema.Constraint) string {
	if c.Kind != schema.ConstraintGroup {
		return ""
	}
	return c.Group.String()
}

func constraintKindString(k schema.ConstraintKind) string {
	switch k {
	case schema.ConstraintRequire:
		return "require"
	case schema.ConstraintRequireIfAnyPresent:
		return "require-if-any-present"
	case schema.ConstraintRequireIfAllPresent:
		return "require-if-all-present"
	case schema.ConstraintRequireIfAnyAbsent:
		return "require-if-any-absent"
	case schema.ConstraintRequireIfAllAbsent:
		return "require-if-all-absent"
	case schema.ConstraintRequireIfValue:
		return "require-if-value"
	case schema.ConstraintGroup:
		return "group"
	case schema.ConstraintConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// YAML serializes the Snapshot to YAML. Returns an error on a nil
// receiver, mirroring the teacher's nil-safe CapabilityMap.YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot serialize nil Snapshot to YAML")
	}
	return yaml.Marshal(s)
}

// JSON serializes the Snapshot to compact JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot serialize nil Snapshot to JSON")
	}
	return json.Marshal(s)
}

// JSONPretty serializes the Snapshot to indented JSON.
func (s *Snapshot) JSONPretty() ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot serialize nil Snapshot to JSON")
	}
	return json.MarshalIndent(s, "", "  ")
}
