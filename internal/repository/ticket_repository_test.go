package repository_test

import (
	"context"
	"testing"
	"time"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTestTicket(t *testing.T, pool *pgxpool.Pool, competition *model.Competition, ticketID string, ids model.Identifiers, numbers []string) (*model.IssuedTicket, error) {
	t.Helper()
	ctx := context.Background()

	insertTestSlots(t, pool, []*model.GeneratedSlot{{
		CompetitionID: competition.ID,
		Numbers:       numbers,
		NumberKey:     ticketID,
		Tier:          model.TierNone,
		PoolRound:     1,
	}})
	slots, err := repository.NewSlotRepository(pool).List(ctx, competition.ID, model.SlotFilter{Limit: 1000})
	require.NoError(t, err)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	created, err := repository.NewTicketRepository(pool).Create(ctx, tx, &model.IssuedTicket{
		TicketID:      ticketID,
		CompetitionID: competition.ID,
		SlotID:        slots[len(slots)-1].ID,
		Name:          "Tester",
		Identifiers:   ids,
		Numbers:       numbers,
		Tier:          model.TierNone,
		IssueDate:     today,
		ExpiryDate:    competition.EndDate.AddDate(0, 0, 20),
	})
	if err != nil {
		return nil, err
	}
	require.NoError(t, tx.Commit(ctx))
	return created, nil
}

func TestTicketRepository_CreateAndFind(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewTicketRepository(pool)

	competition := createTestCompetition(t, pool, model.TierCounts{}, 5)
	numbers := []string{"00", "01", "02", "04", "05", "06", "07"}

	created, err := issueTestTicket(t, pool, competition, "SLH-2025-000001", model.Identifiers{Phone: "+886912345678"}, numbers)
	require.NoError(t, err)
	assert.Equal(t, "+886912345678", created.Phone)
	assert.Empty(t, created.Email)

	found, err := repo.FindByTicketID(ctx, "SLH-2025-000001")
	require.NoError(t, err)
	assert.Equal(t, numbers, found.Numbers)

	exists, err := repo.ExistsTicketID(ctx, "SLH-2025-000001")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByTicketID(ctx, "SLH-2025-999999")
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}

func TestTicketRepository_DuplicateIdentifierPerCompetition(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewTicketRepository(pool)

	competition := createTestCompetition(t, pool, model.TierCounts{}, 5)
	ids := model.Identifiers{Phone: "+886912345678", Email: "a@example.com"}

	_, err := issueTestTicket(t, pool, competition, "SLH-2025-000001", ids, []string{"00", "01", "02", "04", "05", "06", "07"})
	require.NoError(t, err)

	field, err := repo.FindRegistrationByIdentifiers(ctx, competition.ID, model.Identifiers{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.FieldEmail, field)

	field, err = repo.FindRegistrationByIdentifiers(ctx, competition.ID, model.Identifiers{Handle: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, field)

	// unique index 作為最後防線
	_, err = issueTestTicket(t, pool, competition, "SLH-2025-000002", model.Identifiers{Phone: "+886912345678"}, []string{"00", "01", "02", "04", "05", "06", "08"})
	var dup *apperrors.DuplicateRegistrantError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, model.FieldPhone, dup.Field)
}
