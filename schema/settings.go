package schema

// Settings are the CLI-grammar knobs of spec.md §6.3, all with the
// documented defaults. A zero Settings is not valid; always start from
// DefaultSettings().
type Settings struct {
	LongPrefix     string // default "--"
	ShortPrefix    byte   // default '-'
	Separators     []byte // default {'=', ':'}
	FilePrefix     byte   // default '@'; 0 disables @file expansion
	FileEnabled    bool
	NegationPrefix string // default "no-"
	ClusterPrefix  byte   // default '-'; not consulted by token.Classify, which clusters under ShortPrefix
	ClusterEnabled bool   // default true; false disables clustering

	UnknownAsPositionals bool // default false
	Aggregate            bool // default true
	AggregateCap         int  // default 20
	SuggestEnabled       bool // default true
	SuggestMaxDistance   int  // default 2
	MaxFileDepth         int  // default 16
}

// DefaultSettings returns the settings spec.md documents as defaults.
func DefaultSettings() Settings {
	return Settings{
		LongPrefix:           "--",
		ShortPrefix:          '-',
		Separators:           []byte{'=', ':'},
		FilePrefix:           '@',
		FileEnabled:          true,
		NegationPrefix:       "no-",
		ClusterPrefix:        '-',
		ClusterEnabled:       true,
		UnknownAsPositionals: false,
		Aggregate:            true,
		AggregateCap:         20,
		SuggestEnabled:       true,
		SuggestMaxDistance:   2,
		MaxFileDepth:         16,
	}
}

// HasSeparator reports whether b is one of the configured value
// separators ('=' / ':' by default).
func (s Settings) HasSeparator(b byte) bool {
	for _, sep := range s.Separators {
		if sep == b {
			return true
		}
	}
	return false
}
