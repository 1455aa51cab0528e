package port

import (
	"context"

	"adkit/internal/core/domain"
)

// ContentGenerator is the external service that writes ad options for a
// form. It is called once per submission, without retries or caching. Any
// error means the generation failed; no partial result is used.
type ContentGenerator interface {
	Generate(ctx context.Context, in domain.FormInput) (*GenerateResp, error)
}

// GenerateResp is a successful generation: at least one copy, at least one
// image and a targeting tip.
type GenerateResp struct {
	Copies      []domain.AdCopy    `json:"copies"`
	Images      []domain.AdImage   `json:"images"`
	AudienceTip domain.AudienceTip `json:"audienceTip"`
}

// Options returns the copies and images as an option set.
func (r GenerateResp) Options() domain.AdOptionSet {
	return domain.AdOptionSet{Copies: r.Copies, Images: r.Images}
}
