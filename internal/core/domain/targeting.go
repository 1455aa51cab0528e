package domain

import "slices"

// AudienceTip describes who a campaign should be shown to. It is produced by
// the generator together with the ad options and never edited afterwards.
type AudienceTip struct {
	Ages      string   `json:"ages"`
	Interests []string `json:"interests"`
	Locations []string `json:"locations"`
}

func (t AudienceTip) Clone() AudienceTip {
	return AudienceTip{
		Ages:      t.Ages,
		Interests: slices.Clone(t.Interests),
		Locations: slices.Clone(t.Locations),
	}
}
