package repository_test

import (
	"context"
	"testing"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrizeTierRepository_UpsertAndList(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewPrizeTierRepository(pool)

	_, err := repo.Upsert(ctx, model.TierBronze, model.TicketTypeRegular, "Mug")
	require.NoError(t, err)
	first, err := repo.Upsert(ctx, model.TierGrand, model.TicketTypeSuper, "Car")
	require.NoError(t, err)

	again, err := repo.Upsert(ctx, model.TierGrand, model.TicketTypeSuper, "Motorbike")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Motorbike", again.Prize)

	tiers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, model.TierGrand, tiers[0].MatchType)
	assert.Equal(t, model.TierBronze, tiers[1].MatchType)
}

func TestPrizeTierRepository_UpdateAndDelete(t *testing.T) {
	pool := setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewPrizeTierRepository(pool)

	created, err := repo.Upsert(ctx, model.TierSilver, model.TicketTypeRegular, "Headphones")
	require.NoError(t, err)

	updated, err := repo.UpdatePrize(ctx, created.ID, "Speaker")
	require.NoError(t, err)
	assert.Equal(t, "Speaker", updated.Prize)

	_, err = repo.UpdatePrize(ctx, created.ID+100, "Speaker")
	assert.ErrorIs(t, err, apperrors.ErrPrizeTierNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrPrizeTierNotFound)
}
