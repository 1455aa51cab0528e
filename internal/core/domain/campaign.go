package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Objective is the advertising goal of a campaign. The zero value means the
// user has not picked one yet.
type Objective int

const (
	ObjectiveUnset Objective = iota
	ObjectiveProductSales
	ObjectiveLeadGeneration
)

// Label returns the text shown to the user and sent to the generator.
func (o Objective) Label() string {
	switch o {
	case ObjectiveUnset:
		return ""
	case ObjectiveProductSales:
		return "Ventas de producto"
	case ObjectiveLeadGeneration:
		return "Generar leads"
	}
	return ""
}

// MarshalText encodes the objective as its label.
func (o Objective) MarshalText() ([]byte, error) {
	return []byte(o.Label()), nil
}

// UnmarshalText accepts either the label or the canonical identifier.
func (o *Objective) UnmarshalText(b []byte) error {
	v, err := ParseObjective(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseObjective resolves a label or identifier. An empty string yields
// ObjectiveUnset.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ObjectiveUnset, nil
	case "ventas de producto", "product_sales":
		return ObjectiveProductSales, nil
	case "generar leads", "lead_generation":
		return ObjectiveLeadGeneration, nil
	}
	return ObjectiveUnset, &InvalidFieldError{Field: "objective", Reason: fmt.Sprintf("unknown objective %q", s)}
}

// Tone is a stylistic tag applied to generated copy.
type Tone int

const (
	ToneFriendly Tone = iota + 1
	ToneProfessional
	ToneHumorous
	ToneUrgent
	ToneInspirational
)

// AllTones lists the tones in the order the form offers them.
var AllTones = []Tone{ToneFriendly, ToneProfessional, ToneHumorous, ToneUrgent, ToneInspirational}

func (t Tone) Label() string {
	switch t {
	case ToneFriendly:
		return "Amigable"
	case ToneProfessional:
		return "Profesional"
	case ToneHumorous:
		return "Humorística"
	case ToneUrgent:
		return "Urgente"
	case ToneInspirational:
		return "Inspiradora"
	}
	return ""
}

func (t Tone) MarshalText() ([]byte, error) {
	if t.Label() == "" {
		return nil, fmt.Errorf("invalid tone %d", int(t))
	}
	return []byte(t.Label()), nil
}

func (t *Tone) UnmarshalText(b []byte) error {
	v, err := ParseTone(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTone resolves a tone label or identifier.
func ParseTone(s string) (Tone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amigable", "friendly":
		return ToneFriendly, nil
	case "profesional", "professional":
		return ToneProfessional, nil
	case "humorística", "humoristica", "humorous":
		return ToneHumorous, nil
	case "urgente", "urgent":
		return ToneUrgent, nil
	case "inspiradora", "inspirational":
		return ToneInspirational, nil
	}
	return 0, &InvalidFieldError{Field: "tones", Reason: fmt.Sprintf("unknown tone %q", s)}
}

// Language is the language the ad copy is written in.
type Language int

const (
	LanguageSpanishAR Language = iota
	LanguageEnglish
	LanguagePortuguese
)

func (l Language) Label() string {
	switch l {
	case LanguageSpanishAR:
		return "Español-AR"
	case LanguageEnglish:
		return "Inglés"
	case LanguagePortuguese:
		return "Portugués"
	}
	return ""
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	switch l {
	case LanguageSpanishAR:
		return language.MustParse("es-AR")
	case LanguageEnglish:
		return language.English
	case LanguagePortuguese:
		return language.Portuguese
	}
	return language.Und
}

func (l Language) MarshalText() ([]byte, error) {
	if l.Label() == "" {
		return nil, fmt.Errorf("invalid language %d", int(l))
	}
	return []byte(l.Label()), nil
}

func (l *Language) UnmarshalText(b []byte) error {
	v, err := ParseLanguage(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLanguage resolves a label or a BCP 47 tag. Tags are matched to the
// closest supported language, so "es", "es-AR" and "pt-BR" are all accepted.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "español-ar", "espanol-ar":
		return LanguageSpanishAR, nil
	case "inglés", "ingles":
		return LanguageEnglish, nil
	case "portugués", "portugues":
		return LanguagePortuguese, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return LanguageSpanishAR, &InvalidFieldError{Field: "language", Reason: fmt.Sprintf("unknown language %q", s)}
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return LanguageSpanishAR, &InvalidFieldError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", s)}
	}
	return Language(idx), nil
}

// languageMatcher lists tags in Language order so the matched index is the
// Language value.
var languageMatcher = language.NewMatcher([]language.Tag{
	LanguageSpanishAR.Tag(),
	LanguageEnglish.Tag(),
	LanguagePortuguese.Tag(),
})

const (
	// MaxProductLength is measured in characters, not bytes.
	MaxProductLength = 200
	MinBudget        = 2
	MaxBudget        = 60
	DefaultBudget    = 5
)

// FormInput is what the user types into the business form.
type FormInput struct {
	Objective Objective `json:"objective"`
	Product   string    `json:"product"`
	Benefit   string    `json:"benefit"`
	Audience  string    `json:"audience"`
	Tones     ToneSet   `json:"tones"`
	Language  Language  `json:"language"`
	Budget    int       `json:"budget"`
	Image     *ImageRef `json:"image,omitempty"`
}

// NewFormInput returns the form with its initial values.
func NewFormInput() FormInput {
	return FormInput{
		Tones:    ToneSet{},
		Language: LanguageSpanishAR,
		Budget:   DefaultBudget,
	}
}

// MissingFields returns the names of the required fields that are empty, in
// form order. Tones and image are optional.
func (f FormInput) MissingFields() []string {
	var missing []string
	if f.Objective == ObjectiveUnset {
		missing = append(missing, "objective")
	}
	if strings.TrimSpace(f.Product) == "" {
		missing = append(missing, "product")
	}
	if strings.TrimSpace(f.Benefit) == "" {
		missing = append(missing, "benefit")
	}
	if strings.TrimSpace(f.Audience) == "" {
		missing = append(missing, "audience")
	}
	return missing
}

// ValidateSubmission reports an IncompleteFieldsError when a required field
// is empty.
func (f FormInput) ValidateSubmission() error {
	if missing := f.MissingFields(); len(missing) > 0 {
		return &IncompleteFieldsError{Fields: missing}
	}
	return nil
}

// ValidateFields checks the per-field limits of the form widgets.
func (f FormInput) ValidateFields() error {
	if utf8.RuneCountInString(f.Product) > MaxProductLength {
		return &InvalidFieldError{Field: "product", Reason: fmt.Sprintf("must be at most %d characters", MaxProductLength)}
	}
	if f.Budget < MinBudget || f.Budget > MaxBudget {
		return &InvalidFieldError{Field: "budget", Reason: fmt.Sprintf("must be between %d and %d USD per day", MinBudget, MaxBudget)}
	}
	if f.Language.Label() == "" {
		return &InvalidFieldError{Field: "language", Reason: "unknown language"}
	}
	return nil
}

// Clone returns a copy that shares no slices with f.
func (f FormInput) Clone() FormInput {
	out := f
	out.Tones = f.Tones.Clone()
	if f.Image != nil {
		img := *f.Image
		out.Image = &img
	}
	return out
}
