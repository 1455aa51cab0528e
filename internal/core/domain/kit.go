package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KitImageFilename is the suggested name of the downloaded creative.
const KitImageFilename = "facebook-ad-image.jpg"

// Kit is the deliverable of a finished campaign: the chosen ad, how to
// target it and how to publish it.
type Kit struct {
	Product       string       `json:"product"`
	Initial       string       `json:"initial"`
	Objective     Objective    `json:"objective"`
	Copy          SelectedCopy `json:"copy"`
	CopyText      string       `json:"copy_text"`
	ImageURL      string       `json:"image_url"`
	CallToAction  string       `json:"call_to_action"`
	MetaObjective string       `json:"meta_objective"`
	Audience      AudienceTip  `json:"audience"`
	Budget        int          `json:"budget"`
	Language      Language     `json:"language"`
	Instructions  []string     `json:"instructions"`
}

// BuildKit assembles the kit. It returns false when the selection or the
// audience tip is missing.
func BuildKit(s Session) (Kit, bool) {
	if !s.Selected.Complete() || s.AudienceTip == nil {
		return Kit{}, false
	}
	c := *s.Selected.Copy
	return Kit{
		Product:       s.Form.Product,
		Initial:       initial(s.Form.Product),
		Objective:     s.Form.Objective,
		Copy:          c,
		CopyText:      CopyText(c),
		ImageURL:      s.Selected.ImageURL,
		CallToAction:  CallToAction(s.Form.Objective),
		MetaObjective: MetaObjective(s.Form.Objective),
		Audience:      s.AudienceTip.Clone(),
		Budget:        s.Form.Budget,
		Language:      s.Form.Language,
		Instructions:  PublishingInstructions(s.Form.Objective),
	}, true
}

// CopyText is the clipboard form of a copy: title, blank line, description.
func CopyText(c SelectedCopy) string {
	return c.Title + "\n\n" + c.Description
}

// CallToAction is the button label of the ad preview.
func CallToAction(o Objective) string {
	switch o {
	case ObjectiveProductSales:
		return "Comprar ahora"
	case ObjectiveLeadGeneration, ObjectiveUnset:
		return "Más información"
	}
	return "Más información"
}

// MetaObjective is the campaign objective to choose in Meta Ads Manager.
func MetaObjective(o Objective) string {
	switch o {
	case ObjectiveProductSales:
		return "Conversiones"
	case ObjectiveLeadGeneration, ObjectiveUnset:
		return "Generación de clientes potenciales"
	}
	return "Generación de clientes potenciales"
}

func PublishingInstructions(o Objective) []string {
	return []string{
		"Ingresa al Administrador de Anuncios de Meta (Business Suite).",
		`Crea una nueva campaña con el objetivo "` + MetaObjective(o) + `".`,
		"Configura la audiencia según las recomendaciones anteriores.",
		"En la sección de creatividades, sube la imagen descargada.",
		"Copia y pega el texto del anuncio en los campos correspondientes.",
	}
}

func initial(product string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(product))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
