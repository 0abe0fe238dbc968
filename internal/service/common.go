package service

import (
	"context"
	"errors"
	"time"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/repository"
	apperrors "lucky-draw-backend/pkg/app_errors"
)

// resolveCurrent 進行中的活動，沒有時退回最近結束的一場
func resolveCurrent(ctx context.Context, repo repository.CompetitionRepository) (*model.Competition, error) {
	competition, err := repo.FindActive(ctx)
	if err == nil {
		return competition, nil
	}
	if !errors.Is(err, apperrors.ErrNoActiveCompetition) {
		return nil, err
	}
	return repo.FindLatestEnded(ctx)
}

// today UTC 的當天零點
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
