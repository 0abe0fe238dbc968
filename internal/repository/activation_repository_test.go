package repository_test

import (
	"context"
	"errors"
	"testing"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationRepository_CreateAndList(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewActivationRepository(pool)

	competition := createTestCompetition(t, pool, model.TierCounts{}, 5)
	numbers := []string{"00", "01", "02", "04", "05", "06", "07"}
	_, err := issueTestTicket(t, pool, competition, "SLH-2025-000001", model.Identifiers{Phone: "+886912345678"}, numbers)
	require.NoError(t, err)

	created, err := repo.Create(ctx, &model.Activation{
		TicketID:      "SLH-2025-000001",
		CompetitionID: competition.ID,
		Name:          "Tester",
		Identifiers:   model.Identifiers{Phone: "+886912345678", Handle: "@tester"},
		Numbers:       numbers,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "@tester", created.Handle)
	assert.Empty(t, created.Email)
	assert.Empty(t, created.ProofImage)

	activations, err := repo.ListByCompetition(ctx, competition.ID)
	require.NoError(t, err)
	require.Len(t, activations, 1)
	assert.Equal(t, numbers, activations[0].Numbers)

	field, err := repo.FindRegistrationByIdentifiers(ctx, competition.ID, model.Identifiers{Email: "x@y.z", Handle: "@tester"})
	require.NoError(t, err)
	assert.Equal(t, model.FieldHandle, field)

	field, err = repo.FindRegistrationByIdentifiers(ctx, competition.ID, model.Identifiers{Email: "x@y.z"})
	require.NoError(t, err)
	assert.Empty(t, field)
}

func TestActivationRepository_DuplicatePhone(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewActivationRepository(pool)

	competition := createTestCompetition(t, pool, model.TierCounts{}, 5)
	numbers := []string{"00", "01", "02", "04", "05", "06", "07"}
	_, err := issueTestTicket(t, pool, competition, "SLH-2025-000001", model.Identifiers{Phone: "+886912345678"}, numbers)
	require.NoError(t, err)

	activation := &model.Activation{
		TicketID:      "SLH-2025-000001",
		CompetitionID: competition.ID,
		Identifiers:   model.Identifiers{Phone: "+886912345678"},
		Numbers:       numbers,
	}
	_, err = repo.Create(ctx, activation)
	require.NoError(t, err)

	_, err = repo.Create(ctx, activation)
	require.Error(t, err)

	var dup *apperrors.DuplicateRegistrantError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, model.FieldPhone, dup.Field)
}
