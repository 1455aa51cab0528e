package domain

import "slices"

// AdCopy is one generated ad text.
type AdCopy struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdImage is one generated creative image.
type AdImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// AdOptionSet holds the alternatives the user picks from. Both lists are
// empty until a generation succeeds and non-empty afterwards.
type AdOptionSet struct {
	Copies []AdCopy  `json:"copies"`
	Images []AdImage `json:"images"`
}

// Empty reports whether either list is missing.
func (o AdOptionSet) Empty() bool {
	return len(o.Copies) == 0 || len(o.Images) == 0
}

func (o AdOptionSet) Clone() AdOptionSet {
	return AdOptionSet{
		Copies: cloneOrEmpty(o.Copies),
		Images: cloneOrEmpty(o.Images),
	}
}

// SelectedCopy is the text part of the chosen ad.
type SelectedCopy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SelectedAd is the user's pick. An empty ImageURL means no image chosen.
type SelectedAd struct {
	Copy     *SelectedCopy `json:"copy"`
	ImageURL string        `json:"image"`
}

// Complete reports whether both a copy and an image are chosen.
func (s SelectedAd) Complete() bool {
	return s.Copy != nil && s.ImageURL != ""
}

func (s SelectedAd) Clone() SelectedAd {
	out := s
	if s.Copy != nil {
		c := *s.Copy
		out.Copy = &c
	}
	return out
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
