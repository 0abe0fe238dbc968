package allocator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lucky-draw-backend/internal/metrics"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/numberset"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
)

// DefaultFillerBatchSize 未中獎票號每個 transaction 最多寫入的筆數
const DefaultFillerBatchSize = 1000

type QuotaAllocator interface {
	// Allocate 建立第一輪票池，全部寫入後才上線 (pool_round 0 -> 1)
	Allocate(ctx context.Context, competition *model.Competition) (int, error)
	// Regenerate 已上線的票池用盡時建立下一輪，回傳這次呼叫是否讓新一輪上線
	Regenerate(ctx context.Context, job model.RegenerationJob) (bool, error)
}

type QuotaAllocatorImpl struct {
	db                    repository.TxBeginner
	competitionRepository repository.CompetitionRepository
	slotRepository        repository.SlotRepository
	generator             *numberset.Generator
	fillerBatchSize       int
	log                   *zap.Logger
}

func NewQuotaAllocator(
	db repository.TxBeginner,
	competitionRepository repository.CompetitionRepository,
	slotRepository repository.SlotRepository,
	generator *numberset.Generator,
	fillerBatchSize int,
) QuotaAllocator {
	if fillerBatchSize <= 0 {
		fillerBatchSize = DefaultFillerBatchSize
	}
	return &QuotaAllocatorImpl{
		db:                    db,
		competitionRepository: competitionRepository,
		slotRepository:        slotRepository,
		generator:             generator,
		fillerBatchSize:       fillerBatchSize,
		log:                   logger.WithComponent("allocator"),
	}
}

func (a *QuotaAllocatorImpl) Allocate(ctx context.Context, competition *model.Competition) (int, error) {
	start := time.Now()
	defer func() { metrics.ObserveAllocation(time.Since(start)) }()

	b := a.newRoundBuilder(competition.ID, competition.PoolRound, competition.Quotas, competition.TotalParticipants)
	outcome, err := b.run(ctx)
	if err != nil {
		return b.inserted, err
	}

	log := a.log.With(
		zap.Int("competition_id", competition.ID),
		zap.Int("round", b.targetRound()),
		zap.Int("inserted", b.inserted),
	)
	switch outcome {
	case outcomeInactive:
		return b.inserted, fmt.Errorf("competition %d ended during allocation: %w", competition.ID, apperrors.ErrNoActiveCompetition)
	case outcomeSuperseded:
		log.Info("Pool round published by another builder")
	default:
		log.Info("Pool allocated")
	}
	return b.inserted, nil
}

// Regenerate 每個 chunk 都在 advisory lock 下確認活動仍進行中、輪次未被推進、已上線票池仍然用盡，
// 再補上下一輪缺少的票號；重送的任務會從上次中斷處繼續。
// 新一輪的中獎票號以「名額 - 已中獎數」為上限，總數仍為 total_participants。
func (a *QuotaAllocatorImpl) Regenerate(ctx context.Context, job model.RegenerationJob) (bool, error) {
	start := time.Now()
	defer func() { metrics.ObserveAllocation(time.Since(start)) }()

	log := a.log.With(
		zap.String("job_id", job.JobID),
		zap.Int("competition_id", job.CompetitionID),
		zap.Int("round", job.Round),
	)

	b := a.newRoundBuilder(job.CompetitionID, job.Round, job.Quotas, job.TotalParticipants)
	outcome, err := b.run(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", apperrors.ErrRegenerationFailure, err)
	}

	switch outcome {
	case outcomeInactive:
		log.Info("Competition no longer active, skip regeneration")
	case outcomeSuperseded:
		log.Info("Pool round already advanced, skip regeneration", zap.Int("inserted", b.inserted))
	case outcomeNotExhausted:
		log.Info("Pool not exhausted, skip regeneration")
	case outcomePublished:
		log.Info("Pool regenerated",
			zap.Int("new_round", b.targetRound()),
			zap.Int("inserted", b.inserted),
		)
		return true, nil
	}
	return false, nil
}

type buildOutcome int

const (
	outcomeContinue buildOutcome = iota
	outcomePublished
	outcomeSuperseded
	outcomeInactive
	outcomeNotExhausted
)

// roundBuilder 分批寫入 baseRound+1 的票號，補齊後在同一個 transaction 推進 pool_round 讓整輪一起上線
type roundBuilder struct {
	a             *QuotaAllocatorImpl
	competitionID int
	baseRound     int
	quotas        model.TierCounts
	total         int

	seen numberset.KeySet
	// written 上一次寫入後的本輪組成；與 DB 不一致代表有其他 builder 同時寫入，要重新載入 seen
	written  *model.RoundComposition
	inserted int
}

func (a *QuotaAllocatorImpl) newRoundBuilder(competitionID, baseRound int, quotas model.TierCounts, total int) *roundBuilder {
	return &roundBuilder{
		a:             a,
		competitionID: competitionID,
		baseRound:     baseRound,
		quotas:        quotas,
		total:         total,
	}
}

func (b *roundBuilder) targetRound() int {
	return b.baseRound + 1
}

func (b *roundBuilder) run(ctx context.Context) (buildOutcome, error) {
	for {
		outcome, err := b.step(ctx)
		if err != nil || outcome != outcomeContinue {
			return outcome, err
		}
	}
}

func (b *roundBuilder) step(ctx context.Context) (buildOutcome, error) {
	a := b.a

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if err := a.competitionRepository.LockForRegeneration(ctx, tx, b.competitionID); err != nil {
		return 0, err
	}

	competition, err := a.competitionRepository.FindByID(ctx, b.competitionID)
	if err != nil {
		return 0, err
	}
	if !competition.IsActive() {
		return outcomeInactive, nil
	}
	if competition.PoolRound != b.baseRound {
		return outcomeSuperseded, nil
	}

	// 第一輪還沒上線時沒有可用盡的票池
	if b.baseRound > 0 {
		stats, err := a.slotRepository.StatsTx(ctx, tx, b.competitionID)
		if err != nil {
			return 0, err
		}
		if !stats.IsExhausted() {
			return outcomeNotExhausted, nil
		}
	}

	have, err := a.slotRepository.RoundComposition(ctx, tx, b.competitionID, b.targetRound())
	if err != nil {
		return 0, err
	}

	tierTarget := b.quotas.Remaining(competition.Winners)
	missingTiers := tierTarget.Remaining(have.Tiers)
	missingFillers := max(b.total-tierTarget.Total()-have.Fillers, 0)

	if missingTiers.Total() == 0 && missingFillers == 0 {
		if _, err := a.competitionRepository.AdvanceRound(ctx, tx, b.competitionID, b.baseRound); err != nil {
			if errors.Is(err, apperrors.ErrSlotClaimConflict) {
				return outcomeSuperseded, nil
			}
			return 0, err
		}
		if err := tx.Commit(ctx); err != nil {
			return 0, err
		}
		return outcomePublished, nil
	}

	if b.seen == nil || b.written == nil || *b.written != have {
		if b.seen, err = a.existingKeys(ctx, b.competitionID); err != nil {
			return 0, err
		}
	}

	slots, err := b.nextChunk(competition.Numbers, missingTiers, missingFillers)
	if err != nil {
		return 0, err
	}
	if _, err := a.slotRepository.BulkInsert(ctx, tx, slots); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	written := have
	for _, s := range slots {
		if s.Tier == model.TierNone {
			written.Fillers++
		} else {
			written.Tiers.Add(s.Tier, 1)
		}
	}
	b.written = &written
	b.inserted += len(slots)
	recordSlots(slots)
	return outcomeContinue, nil
}

// nextChunk 中獎票號整批一個 transaction，之後未中獎票號每批最多 fillerBatchSize 筆
func (b *roundBuilder) nextChunk(seed []string, tiers model.TierCounts, fillers int) ([]*model.GeneratedSlot, error) {
	if tiers.Total() > 0 {
		return b.a.buildTierSlots(b.competitionID, seed, tiers, b.targetRound(), b.seen)
	}

	sets, err := b.a.generator.GenerateBatch(seed, model.TierNone, min(fillers, b.a.fillerBatchSize), b.seen)
	if err != nil {
		return nil, err
	}
	return toSlots(b.competitionID, model.TierNone, b.targetRound(), sets), nil
}

// existingKeys 票池中已存在的組合 (含建立中的輪次)，整輪共用同一個去重集合
func (a *QuotaAllocatorImpl) existingKeys(ctx context.Context, competitionID int) (numberset.KeySet, error) {
	keys, err := a.slotRepository.ListKeys(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return numberset.NewKeySet(keys...), nil
}

// buildTierSlots Grand -> Consolation 依序產生各等級的票號
func (a *QuotaAllocatorImpl) buildTierSlots(competitionID int, seed []string, quotas model.TierCounts, round int, seen numberset.KeySet) ([]*model.GeneratedSlot, error) {
	slots := make([]*model.GeneratedSlot, 0, quotas.Total())
	for _, tier := range model.WinningTiers {
		sets, err := a.generator.GenerateBatch(seed, tier, quotas.For(tier), seen)
		if err != nil {
			return nil, err
		}
		slots = append(slots, toSlots(competitionID, tier, round, sets)...)
	}
	return slots, nil
}

func toSlots(competitionID int, tier model.Tier, round int, sets []numberset.NumberSet) []*model.GeneratedSlot {
	slots := make([]*model.GeneratedSlot, 0, len(sets))
	for _, set := range sets {
		slots = append(slots, &model.GeneratedSlot{
			CompetitionID: competitionID,
			Numbers:       set,
			NumberKey:     set.Key(),
			Tier:          tier,
			PoolRound:     round,
		})
	}
	return slots
}

func recordSlots(slots []*model.GeneratedSlot) {
	counts := make(map[model.Tier]int, len(model.WinningTiers)+1)
	for _, s := range slots {
		counts[s.Tier]++
	}
	for tier, n := range counts {
		metrics.RecordSlotsGenerated(string(tier), n)
	}
}
