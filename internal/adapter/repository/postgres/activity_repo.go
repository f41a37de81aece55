package postgres

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradeledger/internal/domain"
)

// ActivityRepository implements usecase.ActivityRepository. Appends go to
// the pool, never to a caller's transaction, so that a trail outage cannot
// poison a financial mutation in flight.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create inserts a new activity entry.
func (r *ActivityRepository) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activity_log (id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Action),
		string(entry.EntityType),
		entry.EntityID,
		entry.Details,
		timeToPgTimestamptz(entry.CreatedAt),
	)

	return err
}

// List retrieves activity entries newest first with filtering.
func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityEntry, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, details, created_at
		FROM activity_log
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.Action != "" {
		query += ` AND action = $` + strconv.Itoa(argPos)
		args = append(args, string(filter.Action))
		argPos++
	}

	if filter.EntityType != "" {
		query += ` AND entity_type = $` + strconv.Itoa(argPos)
		args = append(args, string(filter.EntityType))
		argPos++
	}

	if filter.UserID != "" {
		query += ` AND user_id = $` + strconv.Itoa(argPos)
		args = append(args, filter.UserID)
		argPos++
	}

	if filter.From != nil {
		query += ` AND created_at >= $` + strconv.Itoa(argPos)
		args = append(args, *filter.From)
		argPos++
	}

	if filter.To != nil {
		query += ` AND created_at < $` + strconv.Itoa(argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += ` ORDER BY created_at DESC, id DESC`

	if filter.Limit > 0 {
		query += ` LIMIT $` + strconv.Itoa(argPos)
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ActivityEntry, 0)
	for rows.Next() {
		var entry domain.ActivityEntry
		var action, entityType string
		var createdAt pgtype.Timestamptz

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&action,
			&entityType,
			&entry.EntityID,
			&entry.Details,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Action = domain.ActivityAction(action)
		entry.EntityType = domain.EntityType(entityType)
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
