package domain

// Session is everything one wizard run knows: the form, the generated
// options, the user's pick, the targeting tip and where the user is.
type Session struct {
	Step        Step         `json:"step"`
	Form        FormInput    `json:"form"`
	Options     AdOptionSet  `json:"options"`
	Selected    SelectedAd   `json:"selected"`
	AudienceTip *AudienceTip `json:"audience_tip"`
	Loading     bool         `json:"loading"`
}

// NewSession returns a session with every field at its initial value.
func NewSession() Session {
	return Session{
		Step:    StepEntry,
		Form:    NewFormInput(),
		Options: AdOptionSet{Copies: []AdCopy{}, Images: []AdImage{}},
	}
}

// Clone returns a deep copy.
func (s Session) Clone() Session {
	out := s
	out.Form = s.Form.Clone()
	out.Options = s.Options.Clone()
	out.Selected = s.Selected.Clone()
	if s.AudienceTip != nil {
		tip := s.AudienceTip.Clone()
		out.AudienceTip = &tip
	}
	return out
}
