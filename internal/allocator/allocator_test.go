package allocator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"lucky-draw-backend/internal/allocator"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/numberset"
	repoMocks "lucky-draw-backend/internal/repository/mocks"
	"lucky-draw-backend/internal/testutil"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSeed = []string{"05", "11", "23", "38", "47", "62", "84"}

func newCompetition(quotas model.TierCounts, total int) *model.Competition {
	return &model.Competition{
		ID:                1,
		Numbers:           testSeed,
		TotalParticipants: total,
		Quotas:            quotas,
		StartDate:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		Status:            model.CompetitionStatusActive,
	}
}

// poolState 以記憶體模擬 competitions / generated_slots，
// advisory lock 在 FakeTx commit / rollback 時釋放
type poolState struct {
	lock sync.Mutex

	mu          sync.Mutex
	competition model.Competition
	slots       []*model.GeneratedSlot
	batches     [][]*model.GeneratedSlot
	// beforeInsert 第 n 次 BulkInsert 前呼叫 (從 1 開始)
	beforeInsert func(n int)
	insertErr    func(n int) error
}

func newPoolState(competition *model.Competition) *poolState {
	return &poolState{competition: *competition}
}

func (p *poolState) wire(competitionRepo *repoMocks.MockCompetitionRepository, slotRepo *repoMocks.MockSlotRepository) {
	competitionRepo.EXPECT().LockForRegeneration(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(p.lockForRegeneration).Maybe()
	competitionRepo.EXPECT().FindByID(mock.Anything, mock.Anything).RunAndReturn(p.findByID).Maybe()
	competitionRepo.EXPECT().AdvanceRound(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(p.advanceRound).Maybe()
	slotRepo.EXPECT().StatsTx(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(p.stats).Maybe()
	slotRepo.EXPECT().RoundComposition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(p.composition).Maybe()
	slotRepo.EXPECT().ListKeys(mock.Anything, mock.Anything).RunAndReturn(p.listKeys).Maybe()
	slotRepo.EXPECT().BulkInsert(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(p.bulkInsert).Maybe()
}

func (p *poolState) lockForRegeneration(_ context.Context, tx pgx.Tx, _ int) error {
	p.lock.Lock()
	tx.(*testutil.FakeTx).OnEnd(p.lock.Unlock)
	return nil
}

func (p *poolState) findByID(_ context.Context, _ int) (*model.Competition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.competition
	return &c, nil
}

func (p *poolState) advanceRound(_ context.Context, _ pgx.Tx, _ int, expected int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.competition.PoolRound != expected {
		return 0, apperrors.ErrSlotClaimConflict
	}
	p.competition.PoolRound++
	return p.competition.PoolRound, nil
}

func (p *poolState) stats(_ context.Context, _ pgx.Tx, _ int) (model.PoolStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var stats model.PoolStats
	for _, s := range p.slots {
		if s.PoolRound > p.competition.PoolRound {
			continue
		}
		stats.Generated++
		if s.Assigned {
			stats.Assigned++
		}
	}
	return stats, nil
}

func (p *poolState) composition(_ context.Context, _ pgx.Tx, _ int, round int) (model.RoundComposition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var c model.RoundComposition
	for _, s := range p.roundSlots(round) {
		if s.Tier == model.TierNone {
			c.Fillers++
		} else {
			c.Tiers.Add(s.Tier, 1)
		}
	}
	return c, nil
}

func (p *poolState) listKeys(_ context.Context, _ int) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.slots))
	for _, s := range p.slots {
		keys = append(keys, s.NumberKey)
	}
	return keys, nil
}

func (p *poolState) bulkInsert(_ context.Context, _ pgx.Tx, slots []*model.GeneratedSlot) (int64, error) {
	p.mu.Lock()
	n := len(p.batches) + 1
	hook, failing := p.beforeInsert, p.insertErr
	p.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	if failing != nil {
		if err := failing(n); err != nil {
			p.mu.Lock()
			p.batches = append(p.batches, nil)
			p.mu.Unlock()
			return 0, err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, slots)
	p.slots = append(p.slots, slots...)
	return int64(len(slots)), nil
}

// assignAll 把目前已上線的票號全部標記為已發出
func (p *poolState) assignAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.slots {
		if s.PoolRound <= p.competition.PoolRound {
			s.Assigned = true
		}
	}
}

func (p *poolState) round() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.competition.PoolRound
}

func (p *poolState) roundSlots(round int) []*model.GeneratedSlot {
	var out []*model.GeneratedSlot
	for _, s := range p.slots {
		if s.PoolRound == round {
			out = append(out, s)
		}
	}
	return out
}

func (p *poolState) slotsOf(round int) []*model.GeneratedSlot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.roundSlots(round)
}

func countByTier(slots []*model.GeneratedSlot) map[model.Tier]int {
	counts := make(map[model.Tier]int)
	for _, s := range slots {
		counts[s.Tier]++
	}
	return counts
}

type allocatorEnv struct {
	db              *testutil.FakeTxBeginner
	competitionRepo *repoMocks.MockCompetitionRepository
	slotRepo        *repoMocks.MockSlotRepository
	pool            *poolState
	allocator       allocator.QuotaAllocator
}

func setupAllocator(t *testing.T, competition *model.Competition, batchSize int) *allocatorEnv {
	env := &allocatorEnv{
		db:              testutil.NewFakeTxBeginner(),
		competitionRepo: repoMocks.NewMockCompetitionRepository(t),
		slotRepo:        repoMocks.NewMockSlotRepository(t),
		pool:            newPoolState(competition),
	}
	env.pool.wire(env.competitionRepo, env.slotRepo)

	gen := numberset.NewGeneratorWithSource(rand.NewPCG(7, 11), 0)
	env.allocator = allocator.NewQuotaAllocator(env.db, env.competitionRepo, env.slotRepo, gen, batchSize)
	return env
}

func TestQuotaAllocator_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - quotas 1/2/3/5 of 20", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 20)
		env := setupAllocator(t, competition, 0)

		total, err := env.allocator.Allocate(ctx, competition)
		require.NoError(t, err)
		assert.Equal(t, 20, total)
		assert.Equal(t, 1, env.pool.round())

		slots := env.pool.slotsOf(1)
		require.Len(t, slots, 20)

		counts := countByTier(slots)
		assert.Equal(t, 1, counts[model.TierGrand])
		assert.Equal(t, 2, counts[model.TierSilver])
		assert.Equal(t, 3, counts[model.TierBronze])
		assert.Equal(t, 5, counts[model.TierConsolation])
		assert.Equal(t, 9, counts[model.TierNone])

		keys := numberset.NewKeySet()
		for _, s := range slots {
			// 票號等級必須與實際相同的數字個數一致
			assert.Equal(t, s.Tier, model.TierForMatchCount(numberset.MatchCount(s.Numbers, testSeed)), "票號 %v 等級不符", s.Numbers)
			assert.False(t, keys.Has(s.NumberKey), "票號 %v 重複", s.Numbers)
			keys.Add(s.NumberKey)
			assert.Equal(t, 1, s.CompetitionID)
		}

		// 中獎票號、未中獎票號、上線各一個 transaction
		assert.Equal(t, 3, env.db.CommitCount())
	})

	t.Run("Success - fillers inserted in chunks", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Consolation: 1}, 10)
		env := setupAllocator(t, competition, 4)

		total, err := env.allocator.Allocate(ctx, competition)
		require.NoError(t, err)
		assert.Equal(t, 10, total)

		// 1 批中獎 + 9 張未中獎分成 4/4/1
		require.Len(t, env.pool.batches, 4)
		assert.Len(t, env.pool.batches[1], 4)
		assert.Len(t, env.pool.batches[2], 4)
		assert.Len(t, env.pool.batches[3], 1)
		assert.Equal(t, 5, env.db.CommitCount())
	})

	t.Run("Success - pool hidden until every chunk is written", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 100)
		env := setupAllocator(t, competition, 30)

		var wg sync.WaitGroup
		var visible model.PoolStats
		var regenerated bool
		var regenerateErr error
		env.pool.beforeInsert = func(n int) {
			if n != 2 {
				return
			}
			// 中獎票號已 commit，但還不能被領取
			visible, _ = env.pool.stats(ctx, nil, 1)

			wg.Add(1)
			go func() {
				defer wg.Done()
				regenerated, regenerateErr = env.allocator.Regenerate(ctx, model.RegenerationJob{
					JobID:             "job-during-allocate",
					CompetitionID:     1,
					Round:             1,
					Quotas:            competition.Quotas,
					TotalParticipants: competition.TotalParticipants,
				})
			}()
		}

		total, err := env.allocator.Allocate(ctx, competition)
		require.NoError(t, err)
		wg.Wait()

		assert.Equal(t, model.PoolStats{}, visible, "no slot may be claimable before the round is published")
		require.NoError(t, regenerateErr)
		assert.False(t, regenerated)

		assert.Equal(t, 100, total)
		assert.Equal(t, 1, env.pool.round())
		assert.Len(t, env.pool.slotsOf(1), 100)
		assert.Empty(t, env.pool.slotsOf(2))
	})

	t.Run("Success - concurrent builder shares the work without overshoot", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Silver: 2, Consolation: 3}, 50)
		env := setupAllocator(t, competition, 10)

		var wg sync.WaitGroup
		var resumeErr error
		env.pool.beforeInsert = func(n int) {
			if n != 2 {
				return
			}
			// 報名者遇到尚未上線的票池時送出的 round 0 任務
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, resumeErr = env.allocator.Regenerate(ctx, model.RegenerationJob{
					JobID:             "job-round-0",
					CompetitionID:     1,
					Round:             0,
					Quotas:            competition.Quotas,
					TotalParticipants: competition.TotalParticipants,
				})
			}()
		}

		_, err := env.allocator.Allocate(ctx, competition)
		require.NoError(t, err)
		wg.Wait()
		require.NoError(t, resumeErr)

		slots := env.pool.slotsOf(1)
		assert.Len(t, slots, 50)
		keys := numberset.NewKeySet()
		for _, s := range slots {
			assert.False(t, keys.Has(s.NumberKey), "票號 %v 重複", s.Numbers)
			keys.Add(s.NumberKey)
		}
		counts := countByTier(slots)
		assert.Equal(t, 2, counts[model.TierSilver])
		assert.Equal(t, 3, counts[model.TierConsolation])
		assert.Equal(t, 1, env.pool.round())
	})

	t.Run("Failed - skips keys already in pool", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1}, 5)
		env := setupAllocator(t, competition, 0)

		// Grand 只有一種組合，已存在時無法再產生
		env.pool.slots = []*model.GeneratedSlot{{NumberKey: numberset.Key(testSeed), Tier: model.TierGrand, PoolRound: 9}}

		_, err := env.allocator.Allocate(ctx, competition)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrGenerationExhausted)
		assert.Equal(t, 0, env.db.CommitCount())
		assert.Equal(t, 0, env.pool.round())
	})

	t.Run("Failed - BulkInsert error rolls back", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Silver: 1}, 3)
		env := setupAllocator(t, competition, 0)
		env.pool.insertErr = func(int) error { return errors.New("copy failed") }

		_, err := env.allocator.Allocate(ctx, competition)
		require.Error(t, err)

		txs := env.db.Txs()
		require.Len(t, txs, 1)
		assert.True(t, txs[0].RolledBack())
		assert.Equal(t, 0, env.pool.round())
	})

	t.Run("Failed - competition ended during allocation", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{}, 5)
		env := setupAllocator(t, competition, 0)
		env.pool.competition.Status = model.CompetitionStatusEnded

		_, err := env.allocator.Allocate(ctx, competition)
		assert.ErrorIs(t, err, apperrors.ErrNoActiveCompetition)
	})
}

func newJob(round int) model.RegenerationJob {
	return model.RegenerationJob{
		JobID:             "job-1",
		CompetitionID:     1,
		Round:             round,
		Numbers:           testSeed,
		Quotas:            model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5},
		TotalParticipants: 20,
	}
}

// setupExhaustedPool 第一輪已上線且全部發出
func setupExhaustedPool(t *testing.T, competition *model.Competition, batchSize int) *allocatorEnv {
	env := setupAllocator(t, competition, batchSize)
	_, err := env.allocator.Allocate(context.Background(), competition)
	require.NoError(t, err)
	env.pool.assignAll()
	env.pool.batches = nil
	return env
}

func TestQuotaAllocator_Regenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - winning slots capped by remaining quota", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 20)
		env := setupExhaustedPool(t, competition, 0)
		env.pool.competition.Winners = model.TierCounts{Grand: 1, Silver: 1, Bronze: 3, Consolation: 2}

		regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
		require.NoError(t, err)
		assert.True(t, regenerated)
		assert.Equal(t, 2, env.pool.round())

		slots := env.pool.slotsOf(2)
		require.Len(t, slots, 20)

		counts := countByTier(slots)
		assert.Equal(t, 0, counts[model.TierGrand])
		assert.Equal(t, 1, counts[model.TierSilver])
		assert.Equal(t, 0, counts[model.TierBronze])
		assert.Equal(t, 3, counts[model.TierConsolation])
		assert.Equal(t, 16, counts[model.TierNone])
	})

	t.Run("Success - retry resumes a partially written round", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 20)
		env := setupExhaustedPool(t, competition, 4)
		env.pool.insertErr = func(n int) error {
			if n == 3 {
				return errors.New("connection reset")
			}
			return nil
		}

		regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrRegenerationFailure)
		assert.False(t, regenerated)
		assert.Equal(t, 1, env.pool.round(), "a partial round must not be published")
		assert.Len(t, env.pool.slotsOf(2), 11+4)

		env.pool.insertErr = nil
		regenerated, err = env.allocator.Regenerate(ctx, newJob(1))
		require.NoError(t, err)
		assert.True(t, regenerated)
		assert.Equal(t, 2, env.pool.round())

		slots := env.pool.slotsOf(2)
		require.Len(t, slots, 20)
		counts := countByTier(slots)
		assert.Equal(t, 11, 20-counts[model.TierNone])
		assert.Equal(t, 9, counts[model.TierNone])
	})

	t.Run("Skip - round already advanced", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1}, 20)
		env := setupAllocator(t, competition, 0)
		env.pool.competition.PoolRound = 2

		regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
		require.NoError(t, err)
		assert.False(t, regenerated)
		assert.Empty(t, env.pool.batches)
	})

	t.Run("Skip - competition ended", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1}, 20)
		competition.Status = model.CompetitionStatusEnded
		env := setupAllocator(t, competition, 0)

		regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
		require.NoError(t, err)
		assert.False(t, regenerated)
	})

	t.Run("Skip - pool not exhausted", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 20)
		env := setupAllocator(t, competition, 0)
		_, err := env.allocator.Allocate(ctx, competition)
		require.NoError(t, err)

		regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
		require.NoError(t, err)
		assert.False(t, regenerated)
		assert.Equal(t, 1, env.pool.round())
		assert.Empty(t, env.pool.slotsOf(2))
	})

	t.Run("Skip - duplicate jobs publish one round", func(t *testing.T) {
		competition := newCompetition(model.TierCounts{Grand: 1, Silver: 2, Bronze: 3, Consolation: 5}, 20)
		env := setupExhaustedPool(t, competition, 5)

		var wg sync.WaitGroup
		results := make([]bool, 3)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				regenerated, err := env.allocator.Regenerate(ctx, newJob(1))
				assert.NoError(t, err)
				results[i] = regenerated
			}(i)
		}
		wg.Wait()

		published := 0
		for _, r := range results {
			if r {
				published++
			}
		}
		assert.Equal(t, 1, published)
		assert.Equal(t, 2, env.pool.round())
		assert.Len(t, env.pool.slotsOf(2), 20)
		assert.Empty(t, env.pool.slotsOf(3))
	})

	t.Run("Failed - lock error wrapped as regeneration failure", func(t *testing.T) {
		db := testutil.NewFakeTxBeginner()
		competitionRepo := repoMocks.NewMockCompetitionRepository(t)
		slotRepo := repoMocks.NewMockSlotRepository(t)

		competitionRepo.EXPECT().LockForRegeneration(ctx, mock.Anything, 1).Return(errors.New("lock timeout")).Once()

		gen := numberset.NewGeneratorWithSource(rand.NewPCG(7, 11), 0)
		a := allocator.NewQuotaAllocator(db, competitionRepo, slotRepo, gen, 0)

		regenerated, err := a.Regenerate(ctx, newJob(1))
		require.Error(t, err)
		assert.False(t, regenerated)
		assert.ErrorIs(t, err, apperrors.ErrRegenerationFailure)

		txs := db.Txs()
		require.Len(t, txs, 1)
		assert.True(t, txs[0].RolledBack())
	})
}
