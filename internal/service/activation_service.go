package service

import (
	"context"
	"errors"
	"strings"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
)

type ActivationService interface {
	// Submit 針對已發出的票券提出兌獎申請
	Submit(ctx context.Context, req model.SubmitActivationRequest) (*model.Activation, error)
	ListCurrent(ctx context.Context) ([]*model.Activation, error)
}

type ActivationServiceImpl struct {
	repository            repository.ActivationRepository
	ticketRepository      repository.TicketRepository
	competitionRepository repository.CompetitionRepository
	guard                 DuplicateGuard
	log                   *zap.Logger
}

func NewActivationService(
	activationRepository repository.ActivationRepository,
	ticketRepository repository.TicketRepository,
	competitionRepository repository.CompetitionRepository,
	guard DuplicateGuard,
) ActivationService {
	return &ActivationServiceImpl{
		repository:            activationRepository,
		ticketRepository:      ticketRepository,
		competitionRepository: competitionRepository,
		guard:                 guard,
		log:                   logger.WithComponent("service"),
	}
}

func (s *ActivationServiceImpl) Submit(ctx context.Context, req model.SubmitActivationRequest) (*model.Activation, error) {
	req.TicketID = strings.TrimSpace(req.TicketID)
	req.Identifiers = req.Identifiers.Normalize()

	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Phone == "" && req.Email == "" {
		return nil, apperrors.NewValidationError(model.FieldPhone, "phone or email is required")
	}

	ticket, err := s.ticketRepository.FindByTicketID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTicketNotFound) {
			s.log.Info("Activation for unknown ticket", zap.String("ticket_id", req.TicketID))
		}
		return nil, err
	}

	// handle 沿用票券上的資料，與 phone / email 一起檢查重複
	ids := model.Identifiers{
		Phone:  req.Phone,
		Email:  req.Email,
		Handle: ticket.Handle,
	}

	release, err := s.guard.Guard(ctx, ticket.CompetitionID, ids)
	if err != nil {
		return nil, err
	}

	activation, err := s.repository.Create(ctx, &model.Activation{
		TicketID:      ticket.TicketID,
		CompetitionID: ticket.CompetitionID,
		Name:          ticket.Name,
		Identifiers:   ids,
		CountryCode:   strings.TrimSpace(req.CountryCode),
		Numbers:       ticket.Numbers,
		TicketImage:   req.TicketImage,
		ProofImage:    req.ProofImage,
	})
	if err != nil {
		release()
		return nil, err
	}

	s.log.Info("Activation submitted",
		zap.Int("competition_id", activation.CompetitionID),
		zap.String("ticket_id", activation.TicketID),
	)
	return activation, nil
}

func (s *ActivationServiceImpl) ListCurrent(ctx context.Context) ([]*model.Activation, error) {
	competition, err := resolveCurrent(ctx, s.competitionRepository)
	if err != nil {
		return nil, err
	}
	return s.repository.ListByCompetition(ctx, competition.ID)
}
