package service

import (
	"context"
	"fmt"

	"lucky-draw-backend/internal/cache"
	"lucky-draw-backend/internal/model"
	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
)

// RegistrationFinder 查詢同一場活動中已使用的聯絡欄位 (tickets 或 activations)
type RegistrationFinder interface {
	FindRegistrationByIdentifiers(ctx context.Context, competitionID int, ids model.Identifiers) (string, error)
}

type DuplicateGuard interface {
	// CheckDuplicate 回傳第一個已被使用的欄位名稱 (phone -> email -> handle)，沒有衝突回傳空字串
	CheckDuplicate(ctx context.Context, competitionID int, ids model.Identifiers) (string, error)
	// Guard 檢查 DB 後在 Redis 保留欄位；後續步驟失敗時呼叫 release 回滾保留
	Guard(ctx context.Context, competitionID int, ids model.Identifiers) (release func(), err error)
}

type DuplicateGuardImpl struct {
	scope    string
	finder   RegistrationFinder
	reserver cache.RegistrantReserver
	log      *zap.Logger
}

// NewDuplicateGuard reserver 可為 nil，此時只依賴 DB 查詢與 unique index
func NewDuplicateGuard(scope string, finder RegistrationFinder, reserver cache.RegistrantReserver) DuplicateGuard {
	return &DuplicateGuardImpl{
		scope:    scope,
		finder:   finder,
		reserver: reserver,
		log:      logger.WithComponent("service").With(zap.String("guard_scope", scope)),
	}
}

func (g *DuplicateGuardImpl) CheckDuplicate(ctx context.Context, competitionID int, ids model.Identifiers) (string, error) {
	if ids.IsEmpty() {
		return "", nil
	}
	field, err := g.finder.FindRegistrationByIdentifiers(ctx, competitionID, ids)
	if err != nil {
		return "", fmt.Errorf("check duplicate registrant: %w", err)
	}
	return field, nil
}

func (g *DuplicateGuardImpl) Guard(ctx context.Context, competitionID int, ids model.Identifiers) (func(), error) {
	noop := func() {}

	field, err := g.CheckDuplicate(ctx, competitionID, ids)
	if err != nil {
		return noop, err
	}
	if field != "" {
		return noop, apperrors.NewDuplicateRegistrantError(field)
	}

	if g.reserver == nil {
		return noop, nil
	}

	token, field, err := g.reserver.Reserve(ctx, g.scope, competitionID, ids)
	if err != nil {
		// Redis 不可用時退回 DB unique index 保護
		g.log.Warn("Failed to reserve registrant identifiers", zap.Int("competition_id", competitionID), zap.Error(err))
		return noop, nil
	}
	if field != "" {
		return noop, apperrors.NewDuplicateRegistrantError(field)
	}

	return func() {
		// 使用 context.Background()，確保請求取消後仍會回滾保留
		if err := g.reserver.Release(context.Background(), g.scope, competitionID, ids, token); err != nil {
			g.log.Warn("Failed to release registrant reservation", zap.Int("competition_id", competitionID), zap.Error(err))
		}
	}, nil
}
