// Package generator contains the outbound adapters for the content
// generation service.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// Stock creatives returned by the simulated service.
var mockImages = []domain.AdImage{
	{ID: "img-1", URL: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?q=80&w=1080&h=1080&fit=crop"},
	{ID: "img-2", URL: "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?q=80&w=1080&h=1080&fit=crop"},
}

// Mock simulates the generation service for demos and local runs. Copies
// are templated from the form and the audience tip is guessed from keywords
// in the audience description.
type Mock struct {
	delay time.Duration
}

// NewMock returns a simulator that answers after delay.
func NewMock(delay time.Duration) *Mock {
	return &Mock{delay: delay}
}

var _ port.ContentGenerator = (*Mock)(nil)

// Generate waits for the configured delay, then returns two copies, two
// images and an audience tip.
func (m *Mock) Generate(ctx context.Context, in domain.FormInput) (*port.GenerateResp, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	images := make([]domain.AdImage, len(mockImages))
	copy(images, mockImages)

	return &port.GenerateResp{
		Copies:      mockCopies(in),
		Images:      images,
		AudienceTip: inferAudience(in.Audience),
	}, nil
}

func mockCopies(in domain.FormInput) []domain.AdCopy {
	var title1, title2, action string
	switch in.Objective {
	case domain.ObjectiveProductSales:
		title1 = fmt.Sprintf("✨ %s que cambia tu rutina", in.Product)
		title2 = fmt.Sprintf("🎯 El %s que buscabas", in.Product)
		action = "probarlo"
	case domain.ObjectiveLeadGeneration, domain.ObjectiveUnset:
		title1 = fmt.Sprintf("🔍 Descubrí %s ahora", in.Product)
		title2 = fmt.Sprintf("💡 Soluciones en %s", in.Product)
		action = "contactarnos"
	}

	prefix := ""
	if in.Tones.Contains(domain.ToneUrgent) {
		prefix = "¡ÚLTIMA OPORTUNIDAD! "
	}
	target, _, _ := strings.Cut(in.Audience, ",")
	if target == "" {
		target = "ti"
	}

	return []domain.AdCopy{
		{
			ID:          "copy-1",
			Title:       title1,
			Description: fmt.Sprintf("%s. ¡No esperes más para %s! Hecho para gente como vos.", in.Benefit, action),
		},
		{
			ID:          "copy-2",
			Title:       title2,
			Description: fmt.Sprintf("%s%s. Diseñado para %s.", prefix, in.Benefit, target),
		},
	}
}

// inferAudience is a keyword heuristic. Later matches win for ages and
// locations; interests accumulate.
func inferAudience(audience string) domain.AudienceTip {
	text := strings.ToLower(audience)

	ages := "25-45"
	if strings.Contains(text, "joven") {
		ages = "18-30"
	}
	if strings.Contains(text, "mayor") {
		ages = "40-65+"
	}

	interests := []string{"Marketing digital"}
	if strings.Contains(text, "fitness") {
		interests = append(interests, "Fitness", "Vida saludable")
	}
	if strings.Contains(text, "tecnología") || strings.Contains(text, "tecnologia") {
		interests = append(interests, "Tecnología", "Gadgets")
	}
	if strings.Contains(text, "viajes") {
		interests = append(interests, "Viajes", "Turismo")
	}

	location := "Argentina"
	if strings.Contains(text, "méxico") || strings.Contains(text, "mexico") {
		location = "México"
	}
	if strings.Contains(text, "españa") || strings.Contains(text, "espana") {
		location = "España"
	}

	return domain.AudienceTip{
		Ages:      ages,
		Interests: interests,
		Locations: []string{location},
	}
}
