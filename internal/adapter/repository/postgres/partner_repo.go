package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradeledger/internal/domain"
)

// PartnerRepository implements usecase.PartnerDirectory.
type PartnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

// GetName resolves a partner's display name.
func (r *PartnerRepository) GetName(ctx context.Context, partnerID string) (string, error) {
	query := `SELECT name FROM partners WHERE id = $1`

	var name string
	err := r.pool.QueryRow(ctx, query, partnerID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrPartnerNotFound
		}

		return "", err
	}

	return name, nil
}
