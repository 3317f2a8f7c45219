package token

import (
	"strings"

	"argos/schema"
	"argos/value"
)

// Classify turns an already @file-expanded argument vector into a flat
// token sequence: sentinel detection, value-attachment splitting, and
// short-option clustering, per spec.md §4.3 steps 2-4. sch supplies the
// grammar settings and the switch index clustering needs to decide,
// per character, whether it maps to a flag-only option.
func Classify(args []string, sch *schema.Schema) []Token {
	settings := sch.Settings()
	var out []Token
	sentinelSeen := false

	for _, a := range args {
		if sentinelSeen {
			out = append(out, Token{Kind: KindPositional, Raw: a})
			continue
		}
		if a == "--" {
			out = append(out, Token{Kind: KindSentinel, Raw: a})
			sentinelSeen = true
			continue
		}
		if isLong(a, settings) {
			out = append(out, classifyLong(a, settings))
			continue
		}
		if isShort(a, settings) {
			out = append(out, classifyShort(a, settings, sch)...)
			continue
		}
		out = append(out, Token{Kind: KindPositional, Raw: a})
	}
	return out
}

func isLong(a string, s schema.Settings) bool {
	return s.LongPrefix != "" && strings.HasPrefix(a, s.LongPrefix) && len(a) > len(s.LongPrefix)
}

func isShort(a string, s schema.Settings) bool {
	return s.ShortPrefix != 0 && len(a) > 1 && a[0] == s.ShortPrefix
}

func separatorIndex(a string, from int, s schema.Settings) int {
	for i := from; i < len(a); i++ {
		if s.HasSeparator(a[i]) {
			return i
		}
	}
	return -1
}

func classifyLong(a string, s schema.Settings) Token {
	if idx := separatorIndex(a, len(s.LongPrefix), s); idx >= 0 {
		return Token{
			Kind:          KindSwitch,
			Raw:           a,
			SwitchToken:   a[:idx],
			HasAttached:   true,
			AttachedValue: a[idx+1:],
		}
	}
	return Token{Kind: KindSwitch, Raw: a, SwitchToken: a}
}

func classifyShort(a string, s schema.Settings, sch *schema.Schema) []Token {
	if idx := separatorIndex(a, 2, s); idx >= 0 {
		return []Token{{
			Kind:          KindSwitch,
			Raw:           a,
			SwitchToken:   a[:idx],
			HasAttached:   true,
			AttachedValue: a[idx+1:],
		}}
	}

	if !s.ClusterEnabled {
		return []Token{{Kind: KindSwitch, Raw: a, SwitchToken: a}}
	}

	chars := a[1:]
	firstTok := string(s.ShortPrefix) + string(chars[0])
	if _, _, ok := sch.LookupSwitch(firstTok); !ok {
		return []Token{{Kind: KindSwitch, Raw: a, SwitchToken: a}}
	}

	var out []Token
	for i := 0; i < len(chars); i++ {
		tok := string(s.ShortPrefix) + string(chars[i])
		spec, _, ok := sch.LookupSwitch(tok)
		if !ok {
			out = append(out, Token{Kind: KindSwitch, Raw: a, SwitchToken: tok})
			continue
		}
		if spec.Policy == value.PolicyFlagOnly {
			out = append(out, Token{Kind: KindSwitch, Raw: a, SwitchToken: tok})
			continue
		}
		rest := chars[i+1:]
		if rest == "" {
			out = append(out, Token{Kind: KindSwitch, Raw: a, SwitchToken: tok})
		} else {
			out = append(out, Token{Kind: KindSwitch, Raw: a, SwitchToken: tok, HasAttached: true, AttachedValue: rest})
		}
		return out
	}
	return out
}
