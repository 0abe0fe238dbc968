package service

import (
	"context"
	"strings"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
)

type PrizeTierService interface {
	List(ctx context.Context) ([]*model.PrizeTier, error)
	// Save 同一個等級與票種已有設定時直接覆蓋獎品
	Save(ctx context.Context, req model.SavePrizeTierRequest) (*model.PrizeTier, error)
	Update(ctx context.Context, id int, req model.UpdatePrizeRequest) (*model.PrizeTier, error)
	Delete(ctx context.Context, id int) error
}

type PrizeTierServiceImpl struct {
	repository repository.PrizeTierRepository
}

func NewPrizeTierService(prizeTierRepository repository.PrizeTierRepository) PrizeTierService {
	return &PrizeTierServiceImpl{
		repository: prizeTierRepository,
	}
}

func (s *PrizeTierServiceImpl) List(ctx context.Context) ([]*model.PrizeTier, error) {
	return s.repository.List(ctx)
}

func (s *PrizeTierServiceImpl) Save(ctx context.Context, req model.SavePrizeTierRequest) (*model.PrizeTier, error) {
	if !req.MatchType.IsWinning() {
		return nil, apperrors.NewValidationError("match_type", "must be one of Grand, Silver, Bronze, Consolation")
	}
	if !req.TicketType.IsValid() {
		return nil, apperrors.NewValidationError("ticket_type", "must be regular or super")
	}

	prize := strings.TrimSpace(req.Prize)
	if prize == "" {
		return nil, apperrors.NewValidationError("prize", "is required")
	}

	return s.repository.Upsert(ctx, req.MatchType, req.TicketType, prize)
}

func (s *PrizeTierServiceImpl) Update(ctx context.Context, id int, req model.UpdatePrizeRequest) (*model.PrizeTier, error) {
	prize := strings.TrimSpace(req.Prize)
	if prize == "" {
		return nil, apperrors.NewValidationError("prize", "is required")
	}
	return s.repository.UpdatePrize(ctx, id, prize)
}

func (s *PrizeTierServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repository.Delete(ctx, id)
}
