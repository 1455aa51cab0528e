package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adkit/internal/core/domain"
)

// Seed inserts n demo kits spread over the last seven days so the stats
// overview has something to show on a fresh database.
func Seed(ctx context.Context, db *pgxpool.Pool, n int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	products := []string{"Zapatillas urbanas", "Curso de inglés", "Café de especialidad", "Plan de entrenamiento"}
	objectives := []domain.Objective{domain.ObjectiveProductSales, domain.ObjectiveLeadGeneration}
	languages := []domain.Language{domain.LanguageSpanishAR, domain.LanguageEnglish, domain.LanguagePortuguese}

	audience, err := json.Marshal(domain.AudienceTip{
		Ages:      "25-45",
		Interests: []string{"Marketing digital"},
		Locations: []string{"Argentina"},
	})
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		product := products[r.Intn(len(products))]
		objective := objectives[r.Intn(len(objectives))]
		budget := domain.MinBudget + r.Intn(domain.MaxBudget-domain.MinBudget+1)
		createdAt := time.Now().UTC().Add(-time.Duration(r.Int63n(int64(7 * 24 * time.Hour))))
		_, err = db.Exec(ctx, `INSERT INTO campaign_kits
(id, session_id, product, objective, copy_title, copy_description, image_url, audience, budget, language, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			uuid.New(), uuid.New(), product, int16(objective),
			fmt.Sprintf("¡Descubre %s!", product),
			fmt.Sprintf("Demo %d", i+1),
			fmt.Sprintf("https://example.com/creative/%d.jpg", i+1),
			audience, budget, languages[r.Intn(len(languages))].Tag().String(), createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
