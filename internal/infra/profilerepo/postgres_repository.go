package profilerepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
)

// PostgresRepository reads medical profiles from Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetByUserID fetches the stored profile for a user.
func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*traveladvisor.MedicalProfile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT age, conditions
		FROM medical_profiles
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, false, rows.Err()
	}

	var age *float64
	var conditionsRaw []byte
	if err := rows.Scan(&age, &conditionsRaw); err != nil {
		return nil, false, err
	}

	profile := &traveladvisor.MedicalProfile{
		Demographics: traveladvisor.Demographics{Age: age},
		Conditions:   map[string]bool{},
	}
	if len(conditionsRaw) > 0 {
		if err := json.Unmarshal(conditionsRaw, &profile.Conditions); err != nil {
			return nil, false, fmt.Errorf("decode conditions: %w", err)
		}
	}
	return profile, true, rows.Err()
}

var _ traveladvisor.ProfileRepository = (*PostgresRepository)(nil)
