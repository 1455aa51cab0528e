package domain

import "slices"

// MaxTones is the most tones a campaign may carry.
const MaxTones = 3

// ToneSet is an ordered set of tones, kept in the order they were picked.
type ToneSet []Tone

// Contains reports whether t is selected.
func (s ToneSet) Contains(t Tone) bool {
	return slices.Contains(s, t)
}

// Toggle removes t when it is selected and adds it otherwise. Adding a tone
// to a full set returns ErrTooManyTones and leaves the set as it was.
func (s ToneSet) Toggle(t Tone) (ToneSet, error) {
	if t.Label() == "" {
		return s, &InvalidFieldError{Field: "tones", Reason: "unknown tone"}
	}
	if i := slices.Index(s, t); i >= 0 {
		return slices.Delete(s.Clone(), i, i+1), nil
	}
	if len(s) >= MaxTones {
		return s, ErrTooManyTones
	}
	return append(s.Clone(), t), nil
}

func (s ToneSet) Clone() ToneSet {
	if s == nil {
		return ToneSet{}
	}
	return slices.Clone(s)
}
