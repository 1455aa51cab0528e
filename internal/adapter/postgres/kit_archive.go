package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// KitArchive implements port.KitArchive on the campaign_kits table.
type KitArchive struct {
	pool *pgxpool.Pool
}

// NewKitArchive returns a new archive instance.
func NewKitArchive(pool *pgxpool.Pool) *KitArchive {
	return &KitArchive{pool: pool}
}

// SaveKit inserts one row per issued kit.
func (a *KitArchive) SaveKit(ctx context.Context, sessionID uuid.UUID, kit domain.Kit) error {
	audience, err := json.Marshal(kit.Audience)
	if err != nil {
		return fmt.Errorf("encode audience: %w", err)
	}
	_, err = a.pool.Exec(ctx, `INSERT INTO campaign_kits
(id, session_id, product, objective, copy_title, copy_description, image_url, audience, budget, language, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		uuid.New(), sessionID, kit.Product, int16(kit.Objective), kit.Copy.Title, kit.Copy.Description,
		kit.ImageURL, audience, kit.Budget, kit.Language.Tag().String(), time.Now().UTC())
	return err
}

// GetStats aggregates the kits created in the requested period.
func (a *KitArchive) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To, int16(domain.ObjectiveProductSales), int16(domain.ObjectiveLeadGeneration)}
	whereObjective := ""
	if req.Objective != nil {
		whereObjective = "AND objective = $5"
		args = append(args, int16(*req.Objective))
	}
	query := fmt.Sprintf(`SELECT
    count(*),
    count(*) FILTER (WHERE objective = $3),
    count(*) FILTER (WHERE objective = $4),
    COALESCE(sum(budget),0)
FROM campaign_kits
WHERE created_at >= $1 AND created_at <= $2 %s`, whereObjective)

	var resp port.StatsResp
	err := a.pool.QueryRow(ctx, query, args...).
		Scan(&resp.Kits, &resp.ProductSales, &resp.LeadGeneration, &resp.DailyBudgetUSD)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
