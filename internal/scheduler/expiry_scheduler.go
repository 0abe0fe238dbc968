package scheduler

import (
	"context"
	"fmt"
	"time"

	"lucky-draw-backend/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultExpirySpec = "@every 1m"
	// 單次檢查的時間上限
	expiryTimeout = 30 * time.Second
)

// CompetitionExpirer 結束已過期的活動，回傳被結束的活動 ID
type CompetitionExpirer interface {
	ExpireOverdue(ctx context.Context) ([]int, error)
}

type ExpiryScheduler interface {
	// Run 啟動時先檢查一次，之後依 cron spec 定期執行，直到 ctx 結束
	Run(ctx context.Context) error
	// RunOnce 立即檢查一次
	RunOnce(ctx context.Context)
}

type ExpirySchedulerImpl struct {
	expirer CompetitionExpirer
	spec    string
	log     *zap.Logger
}

func NewExpiryScheduler(expirer CompetitionExpirer, spec string) ExpiryScheduler {
	if spec == "" {
		spec = DefaultExpirySpec
	}
	return &ExpirySchedulerImpl{
		expirer: expirer,
		spec:    spec,
		log:     logger.WithComponent("scheduler"),
	}
}

func (s *ExpirySchedulerImpl) Run(ctx context.Context) error {
	cronLogger := zapCronLogger{log: s.log.Sugar()}
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := c.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid expiry spec %q: %w", s.spec, err)
	}

	s.RunOnce(ctx)

	c.Start()
	s.log.Info("Expiry scheduler started", zap.String("spec", s.spec))

	<-ctx.Done()

	// 等待執行中的檢查結束
	<-c.Stop().Done()
	s.log.Info("Expiry scheduler stopped")
	return nil
}

func (s *ExpirySchedulerImpl) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, expiryTimeout)
	defer cancel()

	ended, err := s.expirer.ExpireOverdue(ctx)
	if err != nil {
		s.log.Error("Failed to expire overdue competitions", zap.Error(err))
		return
	}
	if len(ended) > 0 {
		s.log.Info("Overdue competitions ended", zap.Ints("competition_ids", ended))
	}
}

// zapCronLogger 把 cron 的內部 log 轉給 zap
type zapCronLogger struct {
	log *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
