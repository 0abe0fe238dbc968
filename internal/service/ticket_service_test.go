package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"lucky-draw-backend/internal/model"
	queueMocks "lucky-draw-backend/internal/queue/mocks"
	repoMocks "lucky-draw-backend/internal/repository/mocks"
	"lucky-draw-backend/internal/service"
	serviceMocks "lucky-draw-backend/internal/service/mocks"
	"lucky-draw-backend/internal/testutil"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ticketIDPattern = regexp.MustCompile(`^SLH-2025-\d{6}$`)

type ticketMocks struct {
	db              *testutil.FakeTxBeginner
	competitionRepo *repoMocks.MockCompetitionRepository
	slotRepo        *repoMocks.MockSlotRepository
	ticketRepo      *repoMocks.MockTicketRepository
	guard           *serviceMocks.MockDuplicateGuard
	queue           *queueMocks.MockRegenerationQueue
	releases        *releaseCounter
}

func setupTicketMocks(t *testing.T) (*ticketMocks, service.TicketService) {
	m := &ticketMocks{
		db:              testutil.NewFakeTxBeginner(),
		competitionRepo: repoMocks.NewMockCompetitionRepository(t),
		slotRepo:        repoMocks.NewMockSlotRepository(t),
		ticketRepo:      repoMocks.NewMockTicketRepository(t),
		guard:           serviceMocks.NewMockDuplicateGuard(t),
		queue:           queueMocks.NewMockRegenerationQueue(t),
		releases:        &releaseCounter{},
	}
	svc := service.NewTicketService(m.db, m.competitionRepo, m.slotRepo, m.ticketRepo, m.guard, m.queue, service.TicketOptions{})
	return m, svc
}

func newSlot(id int, tier model.Tier) *model.GeneratedSlot {
	return &model.GeneratedSlot{
		ID:            id,
		CompetitionID: 1,
		Numbers:       []string{"07", "14", "21", "35", "50", "51", "52"},
		Tier:          tier,
		PoolRound:     1,
	}
}

// echoCreate 回傳寫入的票券本身
func echoCreate(_ context.Context, _ pgx.Tx, ticket *model.IssuedTicket) (*model.IssuedTicket, error) {
	created := *ticket
	created.ID = 99
	return &created, nil
}

func TestTicketService_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		competition := newActiveCompetition(1)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(competition, nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, model.Identifiers{Phone: "+886912345678", Email: "amy@example.com"}).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierBronze), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierBronze).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 1}, nil).Once()

		registrant := model.Registrant{
			Name:        "  Amy  ",
			Identifiers: model.Identifiers{Phone: "+886912345678", Email: " Amy@Example.com "},
		}
		ticket, err := svc.Issue(ctx, 1, registrant)
		require.NoError(t, err)

		assert.Regexp(t, ticketIDPattern, ticket.TicketID)
		assert.Equal(t, "Amy", ticket.Name)
		assert.Equal(t, "amy@example.com", ticket.Email)
		assert.Equal(t, model.TierBronze, ticket.Tier)
		assert.Equal(t, 5, ticket.SlotID)
		assert.Equal(t, newSlot(5, model.TierBronze).Numbers, ticket.Numbers)
		// 到期日 = 活動結束日 + 20 天
		assert.Equal(t, competition.EndDate.AddDate(0, 0, 20), ticket.ExpiryDate)
		assert.Equal(t, time.UTC, ticket.IssueDate.Location())

		assert.Equal(t, 1, m.db.CommitCount())
		assert.Equal(t, 0, m.releases.Count(), "成功發券不應釋放保留")
		m.queue.AssertNotCalled(t, "PublishRegeneration", mock.Anything, mock.Anything)
	})

	t.Run("Success - retries lost slot race", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(6, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 6).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 2}, nil).Once()

		ticket, err := svc.Issue(ctx, 1, newRegistrant("Ben", "+886911111111"))
		require.NoError(t, err)
		assert.Equal(t, 6, ticket.SlotID)
	})

	t.Run("Success - quota filled slot is discarded", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierGrand), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierGrand).Return(apperrors.ErrQuotaExceeded).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(8, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 8).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 3}, nil).Once()

		ticket, err := svc.Issue(ctx, 1, newRegistrant("Cat", "+886922222222"))
		require.NoError(t, err)
		assert.Equal(t, model.TierNone, ticket.Tier)
		assert.Equal(t, 8, ticket.SlotID)
	})

	t.Run("Success - ticket id collision retries", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(true, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Twice()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierNone), nil).Twice()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(true, nil).Twice()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Twice()
		// 第一次寫入時 unique index 撞號
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrTicketIDCollision).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 1}, nil).Once()

		ticket, err := svc.Issue(ctx, 1, newRegistrant("Dan", "+886933333333"))
		require.NoError(t, err)
		assert.Regexp(t, ticketIDPattern, ticket.TicketID)

		txs := m.db.Txs()
		require.Len(t, txs, 2)
		assert.True(t, txs[0].RolledBack())
		assert.True(t, txs[1].Committed())
	})

	t.Run("Success - last slot publishes regeneration", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		competition := newActiveCompetition(1)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(competition, nil).Twice()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(20, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 20).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 20}, nil).Once()

		var published *model.RegenerationJob
		m.queue.EXPECT().PublishRegeneration(mock.Anything, mock.Anything).
			Run(func(_ context.Context, job *model.RegenerationJob) { published = job }).
			Return(nil).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Eve", "+886944444444"))
		require.NoError(t, err)

		require.NotNil(t, published)
		assert.NotEmpty(t, published.JobID)
		assert.Equal(t, 1, published.CompetitionID)
		assert.Equal(t, 1, published.Round)
		assert.Equal(t, competition.Quotas, published.Quotas)
		assert.Equal(t, competition.Numbers, published.Numbers)
		assert.Equal(t, competition.TotalParticipants, published.TotalParticipants)
	})

	t.Run("Success - publish failure is not returned", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Twice()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(20, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 20).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).RunAndReturn(echoCreate).Once()
		m.slotRepo.EXPECT().Stats(ctx, 1).Return(model.PoolStats{Generated: 20, Assigned: 20}, nil).Once()
		m.queue.EXPECT().PublishRegeneration(mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

		ticket, err := svc.Issue(ctx, 1, newRegistrant("Fay", "+886955555555"))
		require.NoError(t, err)
		assert.NotNil(t, ticket)
	})

	t.Run("Failed - ValidationError without identifiers", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		_, err := svc.Issue(ctx, 1, model.Registrant{Name: "Gus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.FieldPhone, vErr.Field)
		m.competitionRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ValidationError invalid email", func(t *testing.T) {
		_, svc := setupTicketMocks(t)

		_, err := svc.Issue(ctx, 1, model.Registrant{Name: "Hal", Identifiers: model.Identifiers{Email: "not-an-email"}})

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	})

	t.Run("Failed - ValidationError missing name", func(t *testing.T) {
		_, svc := setupTicketMocks(t)

		_, err := svc.Issue(ctx, 1, model.Registrant{Identifiers: model.Identifiers{Handle: "@ivy"}})

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "name", vErr.Field)
	})

	t.Run("Failed - ErrNoActiveCompetition", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		competition := newActiveCompetition(1)
		competition.Status = model.CompetitionStatusEnded

		m.competitionRepo.EXPECT().FindByID(ctx, 1).Return(competition, nil).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Jay", "+886966666666"))
		assert.ErrorIs(t, err, apperrors.ErrNoActiveCompetition)
	})

	t.Run("Failed - DuplicateRegistrantError", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(ctx, 1).Return(newActiveCompetition(1), nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(nil, apperrors.NewDuplicateRegistrantError(model.FieldPhone)).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Kim", "+886977777777"))
		require.Error(t, err)

		var dupErr *apperrors.DuplicateRegistrantError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, model.FieldPhone, dupErr.Field)
		assert.Empty(t, m.db.Txs(), "重複報名不應開啟 transaction")
	})

	t.Run("Failed - ErrPoolExhausted releases reservation", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Twice()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(nil, apperrors.ErrPoolExhausted).Once()
		m.queue.EXPECT().PublishRegeneration(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Leo", "+886988888888"))
		assert.ErrorIs(t, err, apperrors.ErrPoolExhausted)
		assert.Equal(t, 1, m.releases.Count())
		assert.Equal(t, 0, m.db.CommitCount())
	})

	t.Run("Failed - claim attempts exhausted", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(mock.Anything, 1).Return(newActiveCompetition(1), nil).Twice()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierNone), nil).Times(service.DefaultMaxClaimAttempts)
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(false, nil).Times(service.DefaultMaxClaimAttempts)
		m.queue.EXPECT().PublishRegeneration(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Mia", "+886999999999"))
		assert.ErrorIs(t, err, apperrors.ErrPoolExhausted)
		assert.Equal(t, 1, m.releases.Count())
	})

	t.Run("Failed - duplicate caught by unique index", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindByID(ctx, 1).Return(newActiveCompetition(1), nil).Once()
		m.guard.EXPECT().Guard(ctx, 1, mock.Anything).Return(m.releases.release, nil).Once()
		m.ticketRepo.EXPECT().ExistsTicketID(ctx, mock.Anything).Return(false, nil).Once()
		m.slotRepo.EXPECT().PickRandomUnassigned(ctx, mock.Anything, 1).Return(newSlot(5, model.TierNone), nil).Once()
		m.slotRepo.EXPECT().ClaimSlot(ctx, mock.Anything, 5).Return(true, nil).Once()
		m.competitionRepo.EXPECT().IncrementWinners(ctx, mock.Anything, 1, model.TierNone).Return(nil).Once()
		m.ticketRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(nil, apperrors.NewDuplicateRegistrantError(model.FieldPhone)).Once()

		_, err := svc.Issue(ctx, 1, newRegistrant("Ned", "+886900000000"))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateRegistrant)
		assert.Equal(t, 1, m.releases.Count())

		// 搶到的票號隨 transaction 回滾
		txs := m.db.Txs()
		require.Len(t, txs, 1)
		assert.True(t, txs[0].RolledBack())
	})
}

func TestTicketService_IssueForCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - ErrNoActiveCompetition", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		m.competitionRepo.EXPECT().FindActive(ctx).Return(nil, apperrors.ErrNoActiveCompetition).Once()

		_, err := svc.IssueForCurrent(ctx, newRegistrant("Oli", "+886912300000"))
		assert.ErrorIs(t, err, apperrors.ErrNoActiveCompetition)
	})
}

func TestTicketService_ListCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - falls back to latest ended", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		ended := newActiveCompetition(3)
		ended.Status = model.CompetitionStatusEnded

		m.competitionRepo.EXPECT().FindActive(ctx).Return(nil, apperrors.ErrNoActiveCompetition).Once()
		m.competitionRepo.EXPECT().FindLatestEnded(ctx).Return(ended, nil).Once()
		m.ticketRepo.EXPECT().ListByCompetition(ctx, 3).Return([]*model.IssuedTicket{{TicketID: "SLH-2025-000001"}}, nil).Once()

		tickets, err := svc.ListCurrent(ctx)
		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("Failed - no competition at all", func(t *testing.T) {
		m, svc := setupTicketMocks(t)

		m.competitionRepo.EXPECT().FindActive(ctx).Return(nil, apperrors.ErrNoActiveCompetition).Once()
		m.competitionRepo.EXPECT().FindLatestEnded(ctx).Return(nil, apperrors.ErrNoActiveCompetition).Once()

		_, err := svc.ListCurrent(ctx)
		assert.ErrorIs(t, err, apperrors.ErrNoActiveCompetition)
	})
}

func TestTicketService_Winners(t *testing.T) {
	ctx := context.Background()
	m, svc := setupTicketMocks(t)

	m.competitionRepo.EXPECT().FindByID(ctx, 1).Return(newActiveCompetition(1), nil).Once()
	m.ticketRepo.EXPECT().ListWinners(ctx, 1).Return([]*model.IssuedTicket{
		{TicketID: "SLH-2025-000001", Tier: model.TierGrand},
		{TicketID: "SLH-2025-000002", Tier: model.TierConsolation},
		{TicketID: "SLH-2025-000003", Tier: model.TierConsolation},
	}, nil).Once()

	winners, err := svc.Winners(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, winners[model.TierGrand], 1)
	assert.Empty(t, winners[model.TierSilver])
	assert.NotNil(t, winners[model.TierSilver])
	assert.Len(t, winners[model.TierConsolation], 2)
}

func TestTicketService_GetByTicketID(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - ErrTicketNotFound", func(t *testing.T) {
		m, svc := setupTicketMocks(t)
		m.ticketRepo.EXPECT().FindByTicketID(ctx, "SLH-2025-123456").Return(nil, apperrors.ErrTicketNotFound).Once()

		_, err := svc.GetByTicketID(ctx, " SLH-2025-123456 ")
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})

	t.Run("Failed - empty ticket id", func(t *testing.T) {
		_, svc := setupTicketMocks(t)

		_, err := svc.GetByTicketID(ctx, "  ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
