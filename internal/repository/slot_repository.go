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

type SlotRepository interface {
	Count(ctx context.Context, competitionID int, assigned *bool) (int, error)
	Stats(ctx context.Context, competitionID int) (model.PoolStats, error)
	ListKeys(ctx context.Context, competitionID int) ([]string, error)
	List(ctx context.Context, competitionID int, filter model.SlotFilter) ([]*model.GeneratedSlot, error)

	// Transaction methods
	BulkInsert(ctx context.Context, tx pgx.Tx, slots []*model.GeneratedSlot) (int64, error)
	PickRandomUnassigned(ctx context.Context, tx pgx.Tx, competitionID int) (*model.GeneratedSlot, error)
	ClaimSlot(ctx context.Context, tx pgx.Tx, slotID int) (bool, error)
	StatsTx(ctx context.Context, tx pgx.Tx, competitionID int) (model.PoolStats, error)
	RoundComposition(ctx context.Context, tx pgx.Tx, competitionID int, round int) (model.RoundComposition, error)
}

type SlotRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) SlotRepository {
	return &SlotRepositoryImpl{
		pool: pool,
	}
}

// DefaultSlotPageSize List 未指定 limit 時的筆數
const DefaultSlotPageSize = 100

var slotCopyColumns = []string{"competition_id", "numbers", "number_key", "tier", "pool_round"}

// BulkInsert 以 COPY 寫入一批票號，任何一筆 number_key 重複都會讓整批失敗
func (r *SlotRepositoryImpl) BulkInsert(ctx context.Context, tx pgx.Tx, slots []*model.GeneratedSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"generated_slots"},
		slotCopyColumns,
		pgx.CopyFromSlice(len(slots), func(i int) ([]any, error) {
			s := slots[i]
			return []any{s.CompetitionID, s.Numbers, s.NumberKey, string(s.Tier), s.PoolRound}, nil
		}),
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return 0, fmt.Errorf("%w: duplicate number key in batch", apperrors.ErrGenerationExhausted)
		}
		return 0, fmt.Errorf("copy generated slots: %w", err)
	}
	return copied, nil
}

// livePoolFilter 只看已上線的輪次 (pool_round <= competitions.pool_round)，建立中的下一輪不可見
const livePoolFilter = `pool_round <= (SELECT c.pool_round FROM competitions c WHERE c.id = $1)`

// PickRandomUnassigned 隨機挑一個已上線且未發出的票號，避免依等級順序發放。
// 其他 transaction 已鎖住的列會被略過
func (r *SlotRepositoryImpl) PickRandomUnassigned(ctx context.Context, tx pgx.Tx, competitionID int) (*model.GeneratedSlot, error) {
	query := `
		SELECT id, competition_id, numbers, number_key, tier, pool_round, assigned, assigned_at, created_at
		FROM generated_slots
		WHERE competition_id = $1 AND assigned = FALSE AND ` + livePoolFilter + `
		ORDER BY random()
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	slot, err := scanSlot(tx.QueryRow(ctx, query, competitionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPoolExhausted
		}
		return nil, fmt.Errorf("pick unassigned slot: %w", err)
	}
	return slot, nil
}

// ClaimSlot 只有在票號仍未發出時才標記為已發出，回傳是否搶到
func (r *SlotRepositoryImpl) ClaimSlot(ctx context.Context, tx pgx.Tx, slotID int) (bool, error) {
	query := `
		UPDATE generated_slots
		SET assigned = TRUE, assigned_at = $1
		WHERE id = $2 AND assigned = FALSE
	`

	result, err := tx.Exec(ctx, query, time.Now().UTC(), slotID)
	if err != nil {
		return false, fmt.Errorf("claim slot %d: %w", slotID, err)
	}
	return result.RowsAffected() == 1, nil
}

// Count 所有輪次的票號數，包含尚未上線的
func (r *SlotRepositoryImpl) Count(ctx context.Context, competitionID int, assigned *bool) (int, error) {
	query := `SELECT COUNT(*) FROM generated_slots WHERE competition_id = $1`
	args := []any{competitionID}
	if assigned != nil {
		query += ` AND assigned = $2`
		args = append(args, *assigned)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slots: %w", err)
	}
	return count, nil
}

const statsQuery = `
	SELECT COUNT(*), COUNT(*) FILTER (WHERE assigned)
	FROM generated_slots
	WHERE competition_id = $1 AND ` + livePoolFilter

// Stats 已上線票池的產生與發出數量
func (r *SlotRepositoryImpl) Stats(ctx context.Context, competitionID int) (model.PoolStats, error) {
	return queryStats(ctx, r.pool, competitionID)
}

func (r *SlotRepositoryImpl) StatsTx(ctx context.Context, tx pgx.Tx, competitionID int) (model.PoolStats, error) {
	return queryStats(ctx, tx, competitionID)
}

func queryStats(ctx context.Context, q querier, competitionID int) (model.PoolStats, error) {
	var stats model.PoolStats
	if err := q.QueryRow(ctx, statsQuery, competitionID).Scan(&stats.Generated, &stats.Assigned); err != nil {
		return model.PoolStats{}, fmt.Errorf("slot stats: %w", err)
	}
	return stats, nil
}

// RoundComposition 指定輪次已寫入的各等級數量
func (r *SlotRepositoryImpl) RoundComposition(ctx context.Context, tx pgx.Tx, competitionID int, round int) (model.RoundComposition, error) {
	query := `
		SELECT tier, COUNT(*)
		FROM generated_slots
		WHERE competition_id = $1 AND pool_round = $2
		GROUP BY tier
	`

	rows, err := tx.Query(ctx, query, competitionID, round)
	if err != nil {
		return model.RoundComposition{}, fmt.Errorf("round composition: %w", err)
	}
	defer rows.Close()

	var composition model.RoundComposition
	for rows.Next() {
		var tier model.Tier
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return model.RoundComposition{}, err
		}
		if tier == model.TierNone {
			composition.Fillers += n
			continue
		}
		composition.Tiers.Add(tier, n)
	}

	if err := rows.Err(); err != nil {
		return model.RoundComposition{}, err
	}

	return composition, nil
}

// ListKeys 票池中已存在的 number_key，補票時用來去重
func (r *SlotRepositoryImpl) ListKeys(ctx context.Context, competitionID int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT number_key FROM generated_slots WHERE competition_id = $1`, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list slot keys: %w", err)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect slot keys: %w", err)
	}
	return keys, nil
}

// List 後台列出票池，依 id 排序分頁
func (r *SlotRepositoryImpl) List(ctx context.Context, competitionID int, filter model.SlotFilter) ([]*model.GeneratedSlot, error) {
	query := `
		SELECT id, competition_id, numbers, number_key, tier, pool_round, assigned, assigned_at, created_at
		FROM generated_slots
		WHERE competition_id = $1 AND ($2::boolean IS NULL OR assigned = $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultSlotPageSize
	}

	rows, err := r.pool.Query(ctx, query, competitionID, filter.Assigned, limit, max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	slots := make([]*model.GeneratedSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func scanSlot(row rowScanner) (*model.GeneratedSlot, error) {
	var s model.GeneratedSlot
	err := row.Scan(
		&s.ID,
		&s.CompetitionID,
		&s.Numbers,
		&s.NumberKey,
		&s.Tier,
		&s.PoolRound,
		&s.Assigned,
		&s.AssignedAt,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
