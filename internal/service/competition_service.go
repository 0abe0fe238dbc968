package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lucky-draw-backend/internal/allocator"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/numberset"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CompetitionService interface {
	// Create 建立新活動並產生第一輪票池，已有進行中活動時必須先結束
	Create(ctx context.Context, params model.CreateCompetitionParams) (*model.Competition, error)
	// End 結束目前進行中的活動
	End(ctx context.Context) (*model.Competition, error)
	// ExpireOverdue 結束所有已過 end_date 的活動 (排程使用)
	ExpireOverdue(ctx context.Context) ([]int, error)
	// Current 進行中的活動，沒有時回傳最近結束的一場
	Current(ctx context.Context) (*model.Competition, error)
	Get(ctx context.Context, id int) (*model.Competition, error)
	List(ctx context.Context) ([]*model.Competition, error)
	Detail(ctx context.Context, id int) (*model.CompetitionDetail, error)
	PoolStats(ctx context.Context, id int) (model.PoolStats, error)
	// Slots 後台分頁列出票池 (含尚未上線的輪次)
	Slots(ctx context.Context, id int, filter model.SlotFilter) (*model.SlotPage, error)
}

type CompetitionServiceImpl struct {
	repository           repository.CompetitionRepository
	slotRepository       repository.SlotRepository
	ticketRepository     repository.TicketRepository
	activationRepository repository.ActivationRepository
	allocator            allocator.QuotaAllocator
	now                  func() time.Time
	log                  *zap.Logger
}

func NewCompetitionService(
	competitionRepository repository.CompetitionRepository,
	slotRepository repository.SlotRepository,
	ticketRepository repository.TicketRepository,
	activationRepository repository.ActivationRepository,
	quotaAllocator allocator.QuotaAllocator,
) CompetitionService {
	return &CompetitionServiceImpl{
		repository:           competitionRepository,
		slotRepository:       slotRepository,
		ticketRepository:     ticketRepository,
		activationRepository: activationRepository,
		allocator:            quotaAllocator,
		now:                  time.Now,
		log:                  logger.WithComponent("service"),
	}
}

func (s *CompetitionServiceImpl) Create(ctx context.Context, params model.CreateCompetitionParams) (*model.Competition, error) {
	if err := validateCompetitionParams(params); err != nil {
		return nil, err
	}

	if active, err := s.repository.FindActive(ctx); err == nil {
		s.log.Warn("Active competition exists", zap.Int("active_id", active.ID))
		return nil, apperrors.ErrActiveCompetitionExists
	} else if !errors.Is(err, apperrors.ErrNoActiveCompetition) {
		return nil, err
	}

	// 同時建立時由 partial unique index 擋下第二筆
	competition, err := s.repository.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	if _, err := s.allocator.Allocate(ctx, competition); err != nil {
		s.log.Error("Pool allocation failed, ending competition",
			zap.Int("competition_id", competition.ID),
			zap.Error(err),
		)
		if _, endErr := s.repository.End(context.WithoutCancel(ctx), competition.ID); endErr != nil {
			s.log.Error("Failed to end competition after allocation failure",
				zap.Int("competition_id", competition.ID),
				zap.Error(endErr),
			)
		}
		return nil, fmt.Errorf("allocate pool: %w", err)
	}

	// Allocate 之後 pool_round 已推進，回傳上線後的狀態
	if live, err := s.repository.FindByID(ctx, competition.ID); err == nil {
		competition = live
	} else {
		s.log.Warn("Failed to reload competition after allocation",
			zap.Int("competition_id", competition.ID),
			zap.Error(err),
		)
	}

	s.log.Info("Competition created",
		zap.Int("competition_id", competition.ID),
		zap.Int("total_participants", competition.TotalParticipants),
	)
	return competition, nil
}

func validateCompetitionParams(params model.CreateCompetitionParams) error {
	if err := numberset.ValidateSeed(params.Numbers); err != nil {
		return err
	}
	if params.TotalParticipants <= 0 {
		return apperrors.NewValidationError("total_participants", "must be greater than 0")
	}

	for _, tier := range model.WinningTiers {
		quota := params.Quotas.For(tier)
		if quota < 0 {
			return apperrors.NewValidationError("quotas", fmt.Sprintf("%s quota must not be negative", tier))
		}
		if capacity := numberset.Capacity(tier.MatchCount()); quota > capacity {
			return apperrors.NewValidationError("quotas", fmt.Sprintf("%s quota exceeds %d unique combinations", tier, capacity))
		}
	}
	if params.Quotas.Total() > params.TotalParticipants {
		return apperrors.NewValidationError("quotas", "sum of quotas exceeds total_participants")
	}

	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return apperrors.NewValidationError("start_date", "start_date and end_date are required")
	}
	if params.EndDate.Before(params.StartDate) {
		return apperrors.NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

func (s *CompetitionServiceImpl) End(ctx context.Context) (*model.Competition, error) {
	active, err := s.repository.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if !active.Status.CanTransitionTo(model.CompetitionStatusEnded) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	ended, err := s.repository.End(ctx, active.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Competition ended", zap.Int("competition_id", ended.ID))
	return ended, nil
}

func (s *CompetitionServiceImpl) ExpireOverdue(ctx context.Context) ([]int, error) {
	ids, err := s.repository.EndOverdue(ctx, today(s.now()))
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		s.log.Info("Overdue competitions ended", zap.Ints("competition_ids", ids))
	}
	return ids, nil
}

func (s *CompetitionServiceImpl) Current(ctx context.Context) (*model.Competition, error) {
	return resolveCurrent(ctx, s.repository)
}

func (s *CompetitionServiceImpl) Get(ctx context.Context, id int) (*model.Competition, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *CompetitionServiceImpl) List(ctx context.Context) ([]*model.Competition, error) {
	return s.repository.List(ctx)
}

func (s *CompetitionServiceImpl) Detail(ctx context.Context, id int) (*model.CompetitionDetail, error) {
	competition, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.CompetitionDetail{Competition: competition}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tickets, err := s.ticketRepository.ListByCompetition(gctx, id)
		detail.Tickets = tickets
		return err
	})
	g.Go(func() error {
		activations, err := s.activationRepository.ListByCompetition(gctx, id)
		detail.Activations = activations
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *CompetitionServiceImpl) PoolStats(ctx context.Context, id int) (model.PoolStats, error) {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		return model.PoolStats{}, err
	}
	return s.slotRepository.Stats(ctx, id)
}

func (s *CompetitionServiceImpl) Slots(ctx context.Context, id int, filter model.SlotFilter) (*model.SlotPage, error) {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = repository.DefaultSlotPageSize
	}

	page := &model.SlotPage{Limit: filter.Limit, Offset: filter.Offset}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.slotRepository.Count(gctx, id, filter.Assigned)
		page.Total = total
		return err
	})
	g.Go(func() error {
		slots, err := s.slotRepository.List(gctx, id, filter)
		page.Slots = slots
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}
