package parser

import (
	"fmt"

	"argos/constraint"
	"argos/diag"
	"argos/envbind"
	"argos/internal/logx"
	"argos/schema"
	"argos/snapshot"
	"argos/token"
	"argos/validate"
	"argos/value"
)

// Options carries optional host-supplied hooks that do not affect
// parse semantics. A zero Options (or omitting it entirely) reproduces
// the pure, silent default.
type Options struct {
	// Logger receives Debugf-style trace lines at each pipeline stage
	// transition (token classification, eager short-circuit, domain
	// selection, environment binding, constraint evaluation). Nil means
	// silent.
	Logger *logx.Logger
}

// Parse runs the full pipeline (spec.md §2 data flow): token
// classification, single-pass parsing against sch, environment
// fallback, validation, and constraint evaluation, in that fixed order
// for non-aggregating mode (spec.md §9, open question 4). providers
// supplies the two host collaborators the core consults (the
// environment reader and the @file reader). opts is variadic so a call
// site that doesn't care about tracing need not supply it.
func Parse(sch *schema.Schema, args []string, providers Providers, opts ...Options) *Outcome {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	log := opt.Logger

	settings := sch.Settings()
	snap := snapshot.Build(sch)

	if !sch.Valid() {
		log.Warnf("schema invalid: %d construction error(s)", len(sch.Errors()))
		var errs []*diag.Error
		for _, ce := range sch.Errors() {
			errs = append(errs, diag.SchemaInvalid(ce.Error()))
		}
		return &Outcome{Kind: Failed, Errors: errs, Snapshot: snap}
	}

	diagBuf := diag.NewDiagnostics(settings.Aggregate, settings.AggregateCap)

	expanded, err := token.ExpandFiles(args, settings.FilePrefix, settings.FileEnabled, settings.MaxFileDepth, providers.File)
	if err != nil {
		log.Warnf("@file expansion failed: %v", err)
		return &Outcome{
			Kind:      Failed,
			Errors:    []*diag.Error{diag.InvalidValue("", fmt.Sprint(err))},
			Snapshot:  snap,
			SessionID: diagBuf.SessionID,
		}
	}

	toks := token.Classify(expanded, sch)
	log.Debugf("classified %d token(s)", len(toks))
	st := &parseState{sch: sch, settings: settings, cells: newCells(sch), log: log}

	for i := 0; i < len(toks); i++ {
		eager, stop := st.handleToken(toks, &i, diagBuf)
		if eager != nil {
			log.Debugf("eager switch fired, short-circuiting: %s", eager.Kind)
			eager.Snapshot = snap
			eager.SessionID = diagBuf.SessionID
			return eager
		}
		if stop {
			break
		}
	}
	log.Debugf("domain selected: %q", st.activeDomain)

	if !settings.Aggregate && !diagBuf.Empty() {
		return finish(diagBuf, st, snap)
	}

	for _, e := range envbind.Bind(sch, st.cells, providers.Env) {
		diagBuf.Add(e)
		if !settings.Aggregate {
			return finish(diagBuf, st, snap)
		}
	}
	envbind.ApplyDefaults(sch, st.cells)
	log.Debugf("environment binding and defaults applied")

	for _, o := range sch.Options() {
		if !o.InDomain(st.activeDomain) {
			continue
		}
		for _, e := range validate.Option(o, st.cells[o.Owner]) {
			diagBuf.Add(e)
			if !settings.Aggregate {
				return finish(diagBuf, st, snap)
			}
		}
	}
	for _, p := range sch.Positionals() {
		if !p.InDomain(st.activeDomain) {
			continue
		}
		for _, e := range validate.Positional(p, st.cells[p.Owner]) {
			diagBuf.Add(e)
			if !settings.Aggregate {
				return finish(diagBuf, st, snap)
			}
		}
	}

	log.Debugf("validation complete, evaluating constraints")
	for _, e := range constraint.Evaluate(sch, st.cells, st.activeDomain) {
		diagBuf.Add(e)
		if !settings.Aggregate {
			break
		}
	}

	if st.domainMismatchTok != nil && !diagBuf.Empty() && hasConcreteDomains(sch) {
		var suggestions []string
		if settings.SuggestEnabled {
			suggestions = diag.Suggest(st.domainMismatchTok.Raw, concreteDomainNames(sch), settings.SuggestMaxDistance)
		}
		diagBuf.Add(diag.UnknownDomain(st.domainMismatchTok.Raw, suggestions))
	}

	return finish(diagBuf, st, snap)
}

func finish(diagBuf *diag.Diagnostics, st *parseState, snap *snapshot.Snapshot) *Outcome {
	if diagBuf.Empty() {
		return &Outcome{
			Kind:         Parsed,
			Cells:        st.cells,
			ActiveDomain: st.activeDomain,
			Snapshot:     snap,
			SessionID:    diagBuf.SessionID,
		}
	}
	return &Outcome{
		Kind:         Failed,
		Cells:        st.cells,
		ActiveDomain: st.activeDomain,
		Errors:       diagBuf.Errors(),
		Suppressed:   diagBuf.SuppressedSummary(),
		Snapshot:     snap,
		SessionID:    diagBuf.SessionID,
	}
}

// parseState carries the mutable bookkeeping of one single-pass parse:
// the domain decided so far, the positional cursor, and the cells
// being filled in.
type parseState struct {
	sch      *schema.Schema
	settings schema.Settings
	cells    map[string]*value.Cell
	log      *logx.Logger

	activeDomain      string
	domainSelected    bool
	domainMismatchTok *token.Token

	scheduleBuilt bool
	schedule      []*schema.PositionalSpec
	scheduleIdx   int
}

// handleToken advances the cursor past tokens[*i] (and any tokens it
// consumes as an attached value), returning a non-nil eager outcome
// when a help/version switch fires, or stop=true when a non-aggregating
// error must halt the whole pipeline.
func (st *parseState) handleToken(tokens []token.Token, i *int, diagBuf *diag.Diagnostics) (*Outcome, bool) {
	tok := tokens[*i]
	switch tok.Kind {
	case token.KindSentinel:
		return nil, false
	case token.KindPositional:
		return nil, st.recordStop(diagBuf, st.handlePositional(tok))
	case token.KindSwitch:
		eager, err := st.handleSwitch(tokens, i, tok)
		if eager != nil {
			return eager, true
		}
		return nil, st.recordStop(diagBuf, err)
	default:
		return nil, false
	}
}

// recordStop files err (if any) and reports whether the non-aggregating
// recovery policy requires halting the whole pipeline right away
// (spec.md §7: "the first error terminates the pipeline").
func (st *parseState) recordStop(diagBuf *diag.Diagnostics, err *diag.Error) bool {
	if err == nil {
		return false
	}
	diagBuf.Add(err)
	return !st.settings.Aggregate
}

func (st *parseState) handlePositional(tok token.Token) *diag.Error {
	if !st.domainSelected {
		st.domainSelected = true
		if d, ok := st.sch.LookupDomainToken(tok.Raw); ok {
			st.activeDomain = d.Owner
			return nil
		}
		if hasConcreteDomains(st.sch) {
			cp := tok
			st.domainMismatchTok = &cp
		}
	}
	return st.bindPositional(tok.Raw, value.SourceUser)
}

func (st *parseState) ensureSchedule() {
	if !st.scheduleBuilt {
		st.schedule = st.sch.PositionalSchedule(st.activeDomain)
		st.scheduleBuilt = true
	}
}

func (st *parseState) bindPositional(raw string, src value.Source) *diag.Error {
	st.ensureSchedule()
	if st.scheduleIdx >= len(st.schedule) {
		return diag.UnexpectedPositional(raw)
	}
	spec := st.schedule[st.scheduleIdx]
	cell := st.cells[spec.Owner]

	if spec.Variadic() {
		v, err := spec.Converter(raw)
		if err != nil {
			return diag.InvalidValue(spec.Owner, err.Error())
		}
		if spec.Arity == value.ArityList {
			cell.AppendList(v, []string{raw}, src)
		} else {
			cell.AppendSet(v, setKey(v), []string{raw}, src)
		}
		return nil
	}

	v, err := spec.Converter(raw)
	st.scheduleIdx++
	if err != nil {
		return diag.InvalidValue(spec.Owner, err.Error())
	}
	cell.BindScalarRaw(v, []string{raw}, src)
	return nil
}

// handleSwitch resolves one Switch-kind token and binds its value,
// advancing *i when a separate token is consumed as the value
// (spec.md §4.4 "Value binding").
func (st *parseState) handleSwitch(tokens []token.Token, i *int, tok token.Token) (*Outcome, *diag.Error) {
	spec, negation, ok := st.sch.LookupSwitch(tok.SwitchToken)
	if !ok || !spec.InDomain(st.activeDomain) {
		if st.settings.UnknownAsPositionals {
			return nil, st.bindPositional(tok.SwitchToken, value.SourceUser)
		}
		var suggestions []string
		if st.settings.SuggestEnabled {
			suggestions = diag.Suggest(tok.SwitchToken, st.switchCandidates(), st.settings.SuggestMaxDistance)
		}
		return nil, diag.UnknownOption(tok.SwitchToken, suggestions)
	}

	if spec.Eager != schema.EagerNone {
		kind := HelpRequested
		if spec.Eager == schema.EagerVersion {
			kind = VersionRequested
		}
		return &Outcome{Kind: kind, ActiveDomain: st.activeDomain}, nil
	}

	if negation {
		st.cells[spec.Owner].BindScalar(false, value.SourceUser)
		return nil, nil
	}

	switch spec.Policy {
	case value.PolicyFlagOnly:
		if spec.Arity == value.ArityCount {
			st.cells[spec.Owner].IncrementCount(value.SourceUser)
		} else {
			st.cells[spec.Owner].BindScalar(true, value.SourceUser)
		}
		return nil, nil

	case value.PolicyOptionalValue:
		if tok.HasAttached {
			return nil, st.bindValue(spec, tok.AttachedValue, value.SourceUser)
		}
		st.cells[spec.Owner].BindScalar(true, value.SourceUser)
		return nil, nil

	default: // PolicyRequiresValue
		if spec.Arity == value.ArityFixed {
			raws, got := st.consumeFixed(spec, tok, tokens, i)
			if !got {
				return nil, diag.MissingValue(spec.Owner, tok.SwitchToken)
			}
			return nil, st.bindFixed(spec, raws, value.SourceUser)
		}
		raw, got := st.consumeValue(tok, tokens, i)
		if !got {
			return nil, diag.MissingValue(spec.Owner, tok.SwitchToken)
		}
		return nil, st.bindValue(spec, raw, value.SourceUser)
	}
}

// consumeValue resolves the single raw value a requires-value switch
// binds: its attached value if any, otherwise the next token iff that
// token is not itself a switch (spec.md §9 open question 1).
func (st *parseState) consumeValue(tok token.Token, tokens []token.Token, i *int) (string, bool) {
	if tok.HasAttached {
		return tok.AttachedValue, true
	}
	if *i+1 < len(tokens) {
		next := tokens[*i+1]
		if next.Kind == token.KindPositional {
			*i++
			return next.Raw, true
		}
	}
	return "", false
}

// consumeFixed resolves the n raw values a fixed(n) switch binds.
func (st *parseState) consumeFixed(spec *schema.OptionSpec, tok token.Token, tokens []token.Token, i *int) ([]string, bool) {
	var raws []string
	if tok.HasAttached {
		raws = append(raws, tok.AttachedValue)
	}
	for len(raws) < spec.FixedN {
		if *i+1 >= len(tokens) {
			return nil, false
		}
		next := tokens[*i+1]
		if next.Kind != token.KindPositional {
			return nil, false
		}
		*i++
		raws = append(raws, next.Raw)
	}
	return raws, true
}

func (st *parseState) bindValue(spec *schema.OptionSpec, raw string, src value.Source) *diag.Error {
	v, err := spec.Converter(raw)
	if err != nil {
		return diag.InvalidValue(spec.Owner, err.Error())
	}
	cell := st.cells[spec.Owner]
	switch spec.Arity {
	case value.ArityList:
		cell.AppendList(v, []string{raw}, src)
	case value.ArritySet, value.ArityKeyValue:
		cell.AppendSet(v, setKey(v), []string{raw}, src)
	default:
		cell.BindScalarRaw(v, []string{raw}, src)
	}
	return nil
}

// bindFixed converts each of raws and stores the whole tuple as one
// list element, matching Cell.Raw's documented "one entry per
// occurrence, a tuple of n raw strings for ArityFixed" invariant.
func (st *parseState) bindFixed(spec *schema.OptionSpec, raws []string, src value.Source) *diag.Error {
	vals := make([]any, 0, len(raws))
	for _, r := range raws {
		v, err := spec.Converter(r)
		if err != nil {
			return diag.InvalidValue(spec.Owner, err.Error())
		}
		vals = append(vals, v)
	}
	st.cells[spec.Owner].AppendList(vals, raws, src)
	return nil
}

func (st *parseState) switchCandidates() []string {
	var out []string
	for _, o := range st.sch.Options() {
		if !o.InDomain(st.activeDomain) {
			continue
		}
		for _, sw := range o.Switches {
			out = append(out, sw.Token)
		}
	}
	return out
}

func setKey(v any) string {
	if kv, ok := v.(value.KeyValue); ok {
		return kv.Key
	}
	return fmt.Sprint(v)
}

func hasConcreteDomains(sch *schema.Schema) bool {
	for _, d := range sch.Domains() {
		if !d.Fragment {
			return true
		}
	}
	return false
}

func concreteDomainNames(sch *schema.Schema) []string {
	var names []string
	for _, d := range sch.Domains() {
		if d.Fragment {
			continue
		}
		names = append(names, d.Names...)
	}
	return names
}
