package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PrizeTierRepository interface {
	List(ctx context.Context) ([]*model.PrizeTier, error)
	Upsert(ctx context.Context, matchType model.Tier, ticketType model.TicketType, prize string) (*model.PrizeTier, error)
	UpdatePrize(ctx context.Context, id int, prize string) (*model.PrizeTier, error)
	Delete(ctx context.Context, id int) error
}

type PrizeTierRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPrizeTierRepository(pool *pgxpool.Pool) PrizeTierRepository {
	return &PrizeTierRepositoryImpl{
		pool: pool,
	}
}

func (r *PrizeTierRepositoryImpl) List(ctx context.Context) ([]*model.PrizeTier, error) {
	query := `
		SELECT id, match_type, ticket_type, prize, created_at, updated_at
		FROM prize_tiers
		ORDER BY CASE match_type
			WHEN 'Grand' THEN 1
			WHEN 'Silver' THEN 2
			WHEN 'Bronze' THEN 3
			ELSE 4
		END, ticket_type
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prize tiers: %w", err)
	}
	defer rows.Close()

	tiers := make([]*model.PrizeTier, 0)
	for rows.Next() {
		var p model.PrizeTier
		if err := rows.Scan(&p.ID, &p.MatchType, &p.TicketType, &p.Prize, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		tiers = append(tiers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tiers, nil
}

// Upsert 同一個 match_type + ticket_type 只保留一筆，已存在時更新獎品
func (r *PrizeTierRepositoryImpl) Upsert(ctx context.Context, matchType model.Tier, ticketType model.TicketType, prize string) (*model.PrizeTier, error) {
	query := `
		INSERT INTO prize_tiers (match_type, ticket_type, prize)
		VALUES ($1, $2, $3)
		ON CONFLICT (match_type, ticket_type)
		DO UPDATE SET prize = EXCLUDED.prize, updated_at = NOW()
		RETURNING id, match_type, ticket_type, prize, created_at, updated_at
	`

	var p model.PrizeTier
	err := r.pool.QueryRow(ctx, query, matchType, ticketType, prize).Scan(
		&p.ID, &p.MatchType, &p.TicketType, &p.Prize, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert prize tier: %w", err)
	}
	return &p, nil
}

func (r *PrizeTierRepositoryImpl) UpdatePrize(ctx context.Context, id int, prize string) (*model.PrizeTier, error) {
	query := `
		UPDATE prize_tiers
		SET prize = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, match_type, ticket_type, prize, created_at, updated_at
	`

	var p model.PrizeTier
	err := r.pool.QueryRow(ctx, query, prize, time.Now().UTC(), id).Scan(
		&p.ID, &p.MatchType, &p.TicketType, &p.Prize, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrizeTierNotFound
		}
		return nil, fmt.Errorf("update prize tier %d: %w", id, err)
	}
	return &p, nil
}

func (r *PrizeTierRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM prize_tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prize tier %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPrizeTierNotFound
	}

	return nil
}
