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

type CompetitionRepository interface {
	FindByID(ctx context.Context, id int) (*model.Competition, error)
	FindActive(ctx context.Context) (*model.Competition, error)
	FindLatestEnded(ctx context.Context) (*model.Competition, error)
	List(ctx context.Context) ([]*model.Competition, error)
	Create(ctx context.Context, params model.CreateCompetitionParams) (*model.Competition, error)
	End(ctx context.Context, id int) (*model.Competition, error)
	EndOverdue(ctx context.Context, today time.Time) ([]int, error)

	// Transaction methods
	IncrementWinners(ctx context.Context, tx pgx.Tx, id int, tier model.Tier) error
	AdvanceRound(ctx context.Context, tx pgx.Tx, id int, expectedRound int) (int, error)
	LockForRegeneration(ctx context.Context, tx pgx.Tx, id int) error
}

type CompetitionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCompetitionRepository(pool *pgxpool.Pool) CompetitionRepository {
	return &CompetitionRepositoryImpl{
		pool: pool,
	}
}

const competitionColumns = `
	id, numbers, total_participants,
	quota_grand, quota_silver, quota_bronze, quota_consolation,
	winners_grand, winners_silver, winners_bronze, winners_consolation,
	start_date, end_date, status, pool_round, ended_at, created_at, updated_at`

func scanCompetition(row rowScanner) (*model.Competition, error) {
	var c model.Competition
	err := row.Scan(
		&c.ID,
		&c.Numbers,
		&c.TotalParticipants,
		&c.Quotas.Grand,
		&c.Quotas.Silver,
		&c.Quotas.Bronze,
		&c.Quotas.Consolation,
		&c.Winners.Grand,
		&c.Winners.Silver,
		&c.Winners.Bronze,
		&c.Winners.Consolation,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.PoolRound,
		&c.EndedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompetitionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE id = $1`

	competition, err := scanCompetition(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("find competition %d: %w", id, err)
	}
	return competition, nil
}

func (r *CompetitionRepositoryImpl) FindActive(ctx context.Context) (*model.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE status = $1 LIMIT 1`

	competition, err := scanCompetition(r.pool.QueryRow(ctx, query, model.CompetitionStatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoActiveCompetition
		}
		return nil, fmt.Errorf("find active competition: %w", err)
	}
	return competition, nil
}

// FindLatestEnded 最近結束的一場活動，活動結束後顯示用
func (r *CompetitionRepositoryImpl) FindLatestEnded(ctx context.Context) (*model.Competition, error) {
	query := `
		SELECT ` + competitionColumns + `
		FROM competitions
		WHERE status = $1
		ORDER BY ended_at DESC NULLS LAST, id DESC
		LIMIT 1
	`

	competition, err := scanCompetition(r.pool.QueryRow(ctx, query, model.CompetitionStatusEnded))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoActiveCompetition
		}
		return nil, fmt.Errorf("find latest ended competition: %w", err)
	}
	return competition, nil
}

func (r *CompetitionRepositoryImpl) List(ctx context.Context) ([]*model.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	defer rows.Close()

	competitions := make([]*model.Competition, 0)
	for rows.Next() {
		competition, err := scanCompetition(rows)
		if err != nil {
			return nil, err
		}
		competitions = append(competitions, competition)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return competitions, nil
}

func (r *CompetitionRepositoryImpl) Create(ctx context.Context, params model.CreateCompetitionParams) (*model.Competition, error) {
	query := `
		INSERT INTO competitions (
			numbers, total_participants,
			quota_grand, quota_silver, quota_bronze, quota_consolation,
			start_date, end_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + competitionColumns

	competition, err := scanCompetition(r.pool.QueryRow(ctx, query,
		params.Numbers, params.TotalParticipants,
		params.Quotas.Grand, params.Quotas.Silver, params.Quotas.Bronze, params.Quotas.Consolation,
		params.StartDate, params.EndDate, model.CompetitionStatusActive,
	))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "uniq_competitions_single_active" {
			return nil, apperrors.ErrActiveCompetitionExists
		}
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}
	return competition, nil
}

// End active -> ended，已結束或不存在時回傳錯誤
func (r *CompetitionRepositoryImpl) End(ctx context.Context, id int) (*model.Competition, error) {
	query := `
		UPDATE competitions
		SET status = $1, ended_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + competitionColumns

	now := time.Now().UTC()
	competition, err := scanCompetition(r.pool.QueryRow(ctx, query,
		model.CompetitionStatusEnded, now, id, model.CompetitionStatusActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.ErrInvalidStatusTransition
		}
		return nil, fmt.Errorf("end competition %d: %w", id, err)
	}
	return competition, nil
}

// EndOverdue 結束所有 end_date 早於 today 的 active 活動，回傳被結束的 id
func (r *CompetitionRepositoryImpl) EndOverdue(ctx context.Context, today time.Time) ([]int, error) {
	query := `
		UPDATE competitions
		SET status = $1, ended_at = $2, updated_at = $2
		WHERE status = $3 AND end_date < $4
		RETURNING id
	`

	rows, err := r.pool.Query(ctx, query,
		model.CompetitionStatusEnded, time.Now().UTC(), model.CompetitionStatusActive, today,
	)
	if err != nil {
		return nil, fmt.Errorf("end overdue competitions: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

var winnerColumns = map[model.Tier]struct{ winners, quota string }{
	model.TierGrand:       {"winners_grand", "quota_grand"},
	model.TierSilver:      {"winners_silver", "quota_silver"},
	model.TierBronze:      {"winners_bronze", "quota_bronze"},
	model.TierConsolation: {"winners_consolation", "quota_consolation"},
}

// IncrementWinners 中獎數 +1，只有在未超過名額時才會更新
func (r *CompetitionRepositoryImpl) IncrementWinners(ctx context.Context, tx pgx.Tx, id int, tier model.Tier) error {
	cols, ok := winnerColumns[tier]
	if !ok {
		return nil // TierNone 不計數
	}

	query := fmt.Sprintf(`
		UPDATE competitions
		SET %[1]s = %[1]s + 1, updated_at = $1
		WHERE id = $2 AND %[1]s < %[2]s
	`, cols.winners, cols.quota)

	result, err := tx.Exec(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("increment %s winners: %w", tier, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrQuotaExceeded
	}

	return nil
}

// AdvanceRound pool_round 由 expectedRound 前進一輪 (CAS)，其他 worker 已前進時回傳 ErrSlotClaimConflict
func (r *CompetitionRepositoryImpl) AdvanceRound(ctx context.Context, tx pgx.Tx, id int, expectedRound int) (int, error) {
	query := `
		UPDATE competitions
		SET pool_round = pool_round + 1, updated_at = $1
		WHERE id = $2 AND pool_round = $3
		RETURNING pool_round
	`

	var round int
	err := tx.QueryRow(ctx, query, time.Now().UTC(), id, expectedRound).Scan(&round)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrSlotClaimConflict
		}
		return 0, fmt.Errorf("advance pool round: %w", err)
	}
	return round, nil
}

// LockForRegeneration 交易層級的 advisory lock，commit / rollback 時自動釋放
func (r *CompetitionRepositoryImpl) LockForRegeneration(ctx context.Context, tx pgx.Tx, id int) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, advisoryLockNamespace, id); err != nil {
		return fmt.Errorf("acquire regeneration lock: %w", err)
	}
	return nil
}

// advisoryLockNamespace pg_advisory_xact_lock(int4, int4) 的第一個 key
const advisoryLockNamespace int32 = 7_000_001
