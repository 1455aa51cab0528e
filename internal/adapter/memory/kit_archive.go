package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// KitArchive implements port.KitArchive in process memory. It is used when
// no database is configured; its contents are lost on restart.
type KitArchive struct {
	mu   sync.Mutex
	kits []archivedKit
	now  func() time.Time
}

type archivedKit struct {
	objective domain.Objective
	budget    int
	createdAt time.Time
}

func NewKitArchive() *KitArchive {
	return &KitArchive{now: time.Now}
}

func (a *KitArchive) SaveKit(_ context.Context, _ uuid.UUID, kit domain.Kit) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.kits = append(a.kits, archivedKit{
		objective: kit.Objective,
		budget:    kit.Budget,
		createdAt: a.now().UTC(),
	})
	return nil
}

// GetStats counts the kits created within [From, To].
func (a *KitArchive) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var resp port.StatsResp
	for _, k := range a.kits {
		if k.createdAt.Before(req.From) || k.createdAt.After(req.To) {
			continue
		}
		if req.Objective != nil && k.objective != *req.Objective {
			continue
		}
		resp.Kits++
		resp.DailyBudgetUSD += int64(k.budget)
		switch k.objective {
		case domain.ObjectiveProductSales:
			resp.ProductSales++
		case domain.ObjectiveLeadGeneration:
			resp.LeadGeneration++
		case domain.ObjectiveUnset:
		}
	}
	return &resp, nil
}
