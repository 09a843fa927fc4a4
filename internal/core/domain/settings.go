package domain

// Tuning holds the relevance-scoring and result-filtering constants.
// All values are injected configuration; the scorer and search engine
// never hard-code them.
type Tuning struct {
	// PrefixScore is awarded when a field starts with the query.
	PrefixScore int

	// WordScore is awarded when a word inside the field starts with
	// the query. Later words score progressively less.
	WordScore int

	// WordPenalty is subtracted per word position for word-boundary
	// matches. The result is clamped above SubstringScore so a late
	// word never inverts tiers.
	WordPenalty int

	// SubstringScore is awarded for plain containment.
	SubstringScore int

	// FuzzyScore is awarded for a subsequence match with sufficient
	// coverage.
	FuzzyScore int

	// FuzzyCoverage is the minimum fraction of query characters that
	// must appear in order for a fuzzy match to count.
	FuzzyCoverage float64

	// TitleWeight and ContentWeight combine the per-field scores.
	// TitleWeight must be strictly greater than ContentWeight.
	TitleWeight   float64
	ContentWeight float64

	// RelativeThreshold keeps results scoring at least this fraction
	// of the top score.
	RelativeThreshold float64

	// MinScore is the absolute floor of the adaptive threshold.
	MinScore int

	// MaxResults is the hard cap on ranked results.
	MaxResults int
}

// DefaultTuning returns the reference tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		PrefixScore:       1000,
		WordScore:         800,
		WordPenalty:       50,
		SubstringScore:    400,
		FuzzyScore:        200,
		FuzzyCoverage:     0.70,
		TitleWeight:       3.0,
		ContentWeight:     1.0,
		RelativeThreshold: 0.3,
		MinScore:          150,
		MaxResults:        10,
	}
}

// Limits bounds the accepted snippet field sizes.
type Limits struct {
	// MaxTitleLen is the maximum title length in bytes.
	MaxTitleLen int

	// MaxContentLen is the maximum content length in bytes.
	MaxContentLen int
}

// DefaultLimits returns the reference field limits.
func DefaultLimits() Limits {
	return Limits{
		MaxTitleLen:   200,
		MaxContentLen: 10000,
	}
}

// Config holds launcher-wide configuration supplied by the config
// store and command-line flags.
type Config struct {
	// WindowSize is the number of result rows visible at once.
	WindowSize int

	// MaxCombinedSize caps the total content size of an accumulation.
	MaxCombinedSize int

	// Limits bounds snippet fields at load time.
	Limits Limits

	// Tuning holds the scoring constants.
	Tuning Tuning

	// SnippetsPath is the JSON snippet file location.
	SnippetsPath string

	// InjectorCommand is the external command the payload is piped to.
	// Empty means "copy to the system clipboard".
	InjectorCommand string

	// Notify enables desktop notifications after a launch.
	Notify bool
}

// DefaultConfig returns the launcher defaults.
func DefaultConfig() Config {
	return Config{
		WindowSize:      5,
		MaxCombinedSize: 20000,
		Limits:          DefaultLimits(),
		Tuning:          DefaultTuning(),
	}
}
