package lexicon

// MorphErrorKind distinguishes the two ways a word can fail to analyze.
type MorphErrorKind string

const (
	UnknownStem   MorphErrorKind = "unknownStem"
	InvalidEnding MorphErrorKind = "invalidEnding"
)

// MorphError is returned when a raw word cannot be decomposed into a
// known stem + valid ending.
type MorphError struct {
	Kind       MorphErrorKind
	Word       string
	Stem       string
	Ending     string
	Suggestion string
}

func (e *MorphError) Error() string {
	switch e.Kind {
	case InvalidEnding:
		return "unknown ending '" + e.Ending + "' for stem '" + e.Stem + "' in word '" + e.Word + "'"
	default:
		if e.Suggestion != "" {
			return "unknown stem in word '" + e.Word + "' (did you mean '" + e.Suggestion + "'?)"
		}
		return "unknown stem in word '" + e.Word + "'"
	}
}
