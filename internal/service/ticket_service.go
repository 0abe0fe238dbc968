package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"lucky-draw-backend/internal/metrics"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/queue"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	DefaultTicketPrefix          = "SLH-2025"
	DefaultTicketExpiryGraceDays = 20
	DefaultMaxClaimAttempts      = 5
	DefaultMaxTicketIDAttempts   = 10

	// publishTimeout 發送補票任務的上限，不影響報名回應
	publishTimeout = 3 * time.Second
)

type TicketService interface {
	// Issue 為報名者從指定活動的票池配發一張票
	Issue(ctx context.Context, competitionID int, registrant model.Registrant) (*model.IssuedTicket, error)
	// IssueForCurrent 配發進行中活動的票
	IssueForCurrent(ctx context.Context, registrant model.Registrant) (*model.IssuedTicket, error)
	GetByTicketID(ctx context.Context, ticketID string) (*model.IssuedTicket, error)
	// ListCurrent 目前 (或最近結束) 活動的所有票券
	ListCurrent(ctx context.Context) ([]*model.IssuedTicket, error)
	Winners(ctx context.Context, competitionID int) (model.WinnersByTier, error)
}

// TicketOptions 發券參數，零值使用預設
type TicketOptions struct {
	Prefix              string
	ExpiryGraceDays     int
	MaxClaimAttempts    int
	MaxTicketIDAttempts int
}

func (o TicketOptions) withDefaults() TicketOptions {
	if o.Prefix == "" {
		o.Prefix = DefaultTicketPrefix
	}
	if o.ExpiryGraceDays <= 0 {
		o.ExpiryGraceDays = DefaultTicketExpiryGraceDays
	}
	if o.MaxClaimAttempts <= 0 {
		o.MaxClaimAttempts = DefaultMaxClaimAttempts
	}
	if o.MaxTicketIDAttempts <= 0 {
		o.MaxTicketIDAttempts = DefaultMaxTicketIDAttempts
	}
	return o
}

type TicketServiceImpl struct {
	db                    repository.TxBeginner
	competitionRepository repository.CompetitionRepository
	slotRepository        repository.SlotRepository
	ticketRepository      repository.TicketRepository
	guard                 DuplicateGuard
	queue                 queue.RegenerationQueue
	options               TicketOptions
	now                   func() time.Time
	log                   *zap.Logger
}

func NewTicketService(
	db repository.TxBeginner,
	competitionRepository repository.CompetitionRepository,
	slotRepository repository.SlotRepository,
	ticketRepository repository.TicketRepository,
	guard DuplicateGuard,
	regenerationQueue queue.RegenerationQueue,
	options TicketOptions,
) TicketService {
	return &TicketServiceImpl{
		db:                    db,
		competitionRepository: competitionRepository,
		slotRepository:        slotRepository,
		ticketRepository:      ticketRepository,
		guard:                 guard,
		queue:                 regenerationQueue,
		options:               options.withDefaults(),
		now:                   time.Now,
		log:                   logger.WithComponent("service"),
	}
}

func (s *TicketServiceImpl) IssueForCurrent(ctx context.Context, registrant model.Registrant) (*model.IssuedTicket, error) {
	competition, err := s.competitionRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.Issue(ctx, competition.ID, registrant)
}

func (s *TicketServiceImpl) Issue(ctx context.Context, competitionID int, registrant model.Registrant) (*model.IssuedTicket, error) {
	registrant.Name = strings.TrimSpace(registrant.Name)
	registrant.Identifiers = registrant.Identifiers.Normalize()

	if err := validateStruct(registrant); err != nil {
		metrics.RecordRegistrationRejected("invalid")
		return nil, err
	}
	if registrant.IsEmpty() {
		metrics.RecordRegistrationRejected("invalid")
		return nil, apperrors.NewValidationError(model.FieldPhone, "at least one of phone, email or handle is required")
	}

	competition, err := s.competitionRepository.FindByID(ctx, competitionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompetitionNotFound) {
			return nil, apperrors.ErrNoActiveCompetition
		}
		return nil, err
	}
	if !competition.IsActive() {
		return nil, apperrors.ErrNoActiveCompetition
	}

	release, err := s.guard.Guard(ctx, competitionID, registrant.Identifiers)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateRegistrant) {
			metrics.RecordRegistrationRejected("duplicate")
		}
		return nil, err
	}

	ticket, err := s.issueWithUniqueID(ctx, competition, registrant)
	if err != nil {
		// 發券失敗時回滾 Redis 保留，讓報名者可以重試
		release()
		if errors.Is(err, apperrors.ErrPoolExhausted) {
			metrics.RecordRegistrationRejected("pool_exhausted")
			s.requestRegeneration(ctx, competitionID)
		}
		if errors.Is(err, apperrors.ErrDuplicateRegistrant) {
			metrics.RecordRegistrationRejected("duplicate")
		}
		return nil, err
	}

	metrics.RecordTicketIssued(string(ticket.Tier))
	s.log.Info("Ticket issued",
		zap.Int("competition_id", competitionID),
		zap.String("ticket_id", ticket.TicketID),
		zap.String("tier", string(ticket.Tier)),
	)

	s.checkExhaustion(ctx, competitionID)

	return ticket, nil
}

// issueWithUniqueID ticket_id 在 commit 時撞號 (unique index) 就換一個重來
func (s *TicketServiceImpl) issueWithUniqueID(ctx context.Context, competition *model.Competition, registrant model.Registrant) (*model.IssuedTicket, error) {
	for attempt := 1; attempt <= s.options.MaxTicketIDAttempts; attempt++ {
		ticketID, err := s.nextTicketID(ctx)
		if err != nil {
			return nil, err
		}

		ticket, err := s.issueInTx(ctx, competition, registrant, ticketID)
		if errors.Is(err, apperrors.ErrTicketIDCollision) {
			s.log.Warn("Ticket id collision, retrying",
				zap.String("ticket_id", ticketID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		return ticket, err
	}
	return nil, apperrors.ErrTicketIDCollision
}

// nextTicketID PREFIX-NNNNNN，先查詢避開已使用的號碼
func (s *TicketServiceImpl) nextTicketID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.options.MaxTicketIDAttempts; attempt++ {
		ticketID := fmt.Sprintf("%s-%06d", s.options.Prefix, rand.IntN(1_000_000))

		exists, err := s.ticketRepository.ExistsTicketID(ctx, ticketID)
		if err != nil {
			return "", err
		}
		if !exists {
			return ticketID, nil
		}
	}
	return "", apperrors.ErrTicketIDCollision
}

func (s *TicketServiceImpl) issueInTx(ctx context.Context, competition *model.Competition, registrant model.Registrant, ticketID string) (*model.IssuedTicket, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	slot, err := s.claimCountedSlot(ctx, tx, competition.ID)
	if err != nil {
		return nil, err
	}

	issueDate := today(s.now())
	ticket, err := s.ticketRepository.Create(ctx, tx, &model.IssuedTicket{
		TicketID:      ticketID,
		CompetitionID: competition.ID,
		SlotID:        slot.ID,
		Name:          registrant.Name,
		Identifiers:   registrant.Identifiers,
		Numbers:       slot.Numbers,
		Tier:          slot.Tier,
		IssueDate:     issueDate,
		ExpiryDate:    competition.EndDate.AddDate(0, 0, s.options.ExpiryGraceDays),
		IsSuperTicket: registrant.IsSuperTicket,
		ProofImage:    registrant.ProofImage,
		PurchaseProof: registrant.PurchaseProof,
		FollowProof:   registrant.FollowProof,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// claimCountedSlot 搶到票號後遞增該等級的中獎數；名額已滿的中獎票號會被消耗掉，改搶下一個
func (s *TicketServiceImpl) claimCountedSlot(ctx context.Context, tx pgx.Tx, competitionID int) (*model.GeneratedSlot, error) {
	for attempt := 0; attempt < s.options.MaxClaimAttempts; attempt++ {
		slot, err := s.claimSlot(ctx, tx, competitionID)
		if err != nil {
			return nil, err
		}

		err = s.competitionRepository.IncrementWinners(ctx, tx, competitionID, slot.Tier)
		if err == nil {
			return slot, nil
		}
		if !errors.Is(err, apperrors.ErrQuotaExceeded) {
			return nil, err
		}
		s.log.Warn("Tier quota already filled, discarding slot",
			zap.Int("competition_id", competitionID),
			zap.Int("slot_id", slot.ID),
			zap.String("tier", string(slot.Tier)),
		)
	}
	return nil, apperrors.ErrPoolExhausted
}

// claimSlot 隨機挑選未發出的票號並以 CAS 標記，搶輸時重新挑選
func (s *TicketServiceImpl) claimSlot(ctx context.Context, tx pgx.Tx, competitionID int) (*model.GeneratedSlot, error) {
	for attempt := 0; attempt < s.options.MaxClaimAttempts; attempt++ {
		slot, err := s.slotRepository.PickRandomUnassigned(ctx, tx, competitionID)
		if err != nil {
			return nil, err
		}

		claimed, err := s.slotRepository.ClaimSlot(ctx, tx, slot.ID)
		if err != nil {
			return nil, err
		}
		if claimed {
			return slot, nil
		}

		metrics.RecordSlotClaimConflict()
	}
	return nil, apperrors.ErrPoolExhausted
}

// checkExhaustion 票池全部發出時送出補票任務
func (s *TicketServiceImpl) checkExhaustion(ctx context.Context, competitionID int) {
	stats, err := s.slotRepository.Stats(ctx, competitionID)
	if err != nil {
		s.log.Error("Failed to read pool stats", zap.Int("competition_id", competitionID), zap.Error(err))
		return
	}
	if !stats.IsExhausted() {
		return
	}
	s.requestRegeneration(ctx, competitionID)
}

// requestRegeneration 失敗只記錄，不回傳給報名者
func (s *TicketServiceImpl) requestRegeneration(ctx context.Context, competitionID int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	competition, err := s.competitionRepository.FindByID(ctx, competitionID)
	if err != nil {
		s.log.Error("Failed to load competition for regeneration", zap.Int("competition_id", competitionID), zap.Error(err))
		return
	}
	if !competition.IsActive() {
		return
	}

	job := &model.RegenerationJob{
		JobID:             uuid.NewString(),
		CompetitionID:     competition.ID,
		Round:             competition.PoolRound,
		Numbers:           competition.Numbers,
		Quotas:            competition.Quotas,
		TotalParticipants: competition.TotalParticipants,
		RequestedAt:       s.now().UTC(),
	}

	if err := s.queue.PublishRegeneration(ctx, job); err != nil {
		s.log.Error("Failed to publish regeneration job",
			zap.String("job_id", job.JobID),
			zap.Int("competition_id", competition.ID),
			zap.Error(err),
		)
		return
	}

	s.log.Info("Regeneration requested",
		zap.String("job_id", job.JobID),
		zap.Int("competition_id", competition.ID),
		zap.Int("round", job.Round),
	)
}

func (s *TicketServiceImpl) GetByTicketID(ctx context.Context, ticketID string) (*model.IssuedTicket, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return nil, apperrors.NewValidationError("ticket_id", "is required")
	}
	return s.ticketRepository.FindByTicketID(ctx, ticketID)
}

func (s *TicketServiceImpl) ListCurrent(ctx context.Context) ([]*model.IssuedTicket, error) {
	competition, err := resolveCurrent(ctx, s.competitionRepository)
	if err != nil {
		return nil, err
	}
	return s.ticketRepository.ListByCompetition(ctx, competition.ID)
}

func (s *TicketServiceImpl) Winners(ctx context.Context, competitionID int) (model.WinnersByTier, error) {
	if _, err := s.competitionRepository.FindByID(ctx, competitionID); err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepository.ListWinners(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	winners := make(model.WinnersByTier, len(model.WinningTiers))
	for _, tier := range model.WinningTiers {
		winners[tier] = make([]*model.IssuedTicket, 0)
	}
	for _, t := range tickets {
		winners[t.Tier] = append(winners[t.Tier], t)
	}
	return winners, nil
}
