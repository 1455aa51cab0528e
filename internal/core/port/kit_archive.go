package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adkit/internal/core/domain"
)

// KitArchive records every campaign kit handed out. It is write-only from
// the wizard's point of view: archived kits are never loaded back into a
// session.
type KitArchive interface {
	// SaveKit stores the kit issued by the given session.
	SaveKit(ctx context.Context, sessionID uuid.UUID, kit domain.Kit) error
	// GetStats aggregates issued kits in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the period, and optionally the objective, to aggregate.
type StatsReq struct {
	From      time.Time
	To        time.Time
	Objective *domain.Objective
}

// StatsResp contains how many kits were issued and their summed daily
// budget in USD.
type StatsResp struct {
	Kits           int64 `json:"kits"`
	ProductSales   int64 `json:"product_sales"`
	LeadGeneration int64 `json:"lead_generation"`
	DailyBudgetUSD int64 `json:"daily_budget_usd"`
}
