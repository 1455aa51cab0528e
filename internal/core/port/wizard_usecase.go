package port

import (
	"context"

	"github.com/google/uuid"

	"adkit/internal/core/domain"
)

// WizardUseCase drives a session through the wizard steps. It is the
// primary port into the application; every method resolves the session by
// id and returns domain.ErrSessionNotFound for unknown ids. Validation
// failures are returned as the domain errors and leave the session as it
// was.
type WizardUseCase interface {
	// CreateSession starts a new wizard run on the entry step.
	CreateSession(ctx context.Context) (*View, error)
	// View returns the current step of the session without moving it.
	View(ctx context.Context, id uuid.UUID) (*View, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// Reset clears the campaign and returns to the entry step.
	Reset(ctx context.Context, id uuid.UUID) (*View, error)
	// Start moves from the entry step to the form.
	Start(ctx context.Context, id uuid.UUID) (*View, error)
	// Back moves one step backwards. Going back to entry resets.
	Back(ctx context.Context, id uuid.UUID) (*View, error)
	// Navigate addresses a step directly. Missing prerequisites redirect to
	// an earlier step; the returned view says where the user landed.
	Navigate(ctx context.Context, id uuid.UUID, step domain.Step) (*View, error)

	// UpdateForm changes the fields present in the patch.
	UpdateForm(ctx context.Context, id uuid.UUID, patch FormPatch) (*View, error)
	// ToggleTone adds or removes a tone, at most three selected.
	ToggleTone(ctx context.Context, id uuid.UUID, tone domain.Tone) (*View, error)
	// SelectImageFile attaches the product image after checking format and
	// size.
	SelectImageFile(ctx context.Context, id uuid.UUID, img domain.ImageRef) (*View, error)
	// Submit validates the form, runs the generation and moves to the
	// selection step.
	Submit(ctx context.Context, id uuid.UUID) (*View, error)

	SelectCopy(ctx context.Context, id uuid.UUID, copyID string) (*View, error)
	SelectImage(ctx context.Context, id uuid.UUID, imageID string) (*View, error)
	// Continue moves from selection to the kit once a copy and an image are
	// chosen.
	Continue(ctx context.Context, id uuid.UUID) (*View, error)

	// Kit returns the finished kit, or domain.ErrIncompleteSelection while
	// the selection or the audience tip is missing.
	Kit(ctx context.Context, id uuid.UUID) (*domain.Kit, error)

	// GetStats aggregates the kits issued in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// FormPatch carries the form fields to change; nil fields are kept. Tones
// and image have their own operations.
type FormPatch struct {
	Objective *domain.Objective `json:"objective,omitempty"`
	Product   *string           `json:"product,omitempty"`
	Benefit   *string           `json:"benefit,omitempty"`
	Audience  *string           `json:"audience,omitempty"`
	Language  *domain.Language  `json:"language,omitempty"`
	Budget    *int              `json:"budget,omitempty"`
}

// Apply returns in with the patch applied.
func (p FormPatch) Apply(in domain.FormInput) domain.FormInput {
	out := in.Clone()
	if p.Objective != nil {
		out.Objective = *p.Objective
	}
	if p.Product != nil {
		out.Product = *p.Product
	}
	if p.Benefit != nil {
		out.Benefit = *p.Benefit
	}
	if p.Audience != nil {
		out.Audience = *p.Audience
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.Budget != nil {
		out.Budget = *p.Budget
	}
	return out
}

// View is what a client renders for the current step. It is a DTO used by
// the HTTP layer and does not contain domain behaviour.
type View struct {
	SessionID   uuid.UUID           `json:"session_id"`
	Step        domain.Step         `json:"step"`
	Progress    domain.Progress     `json:"progress"`
	Redirected  bool                `json:"redirected"`
	Pending     bool                `json:"pending"`
	Loading     bool                `json:"loading"`
	Form        domain.FormInput    `json:"form"`
	Options     domain.AdOptionSet  `json:"options"`
	Selected    domain.SelectedAd   `json:"selected"`
	AudienceTip *domain.AudienceTip `json:"audience_tip"`
	Kit         *domain.Kit         `json:"kit,omitempty"`
}
