package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lucky-draw-backend/internal/allocator"
	"lucky-draw-backend/internal/metrics"
	"lucky-draw-backend/internal/queue"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultConcurrency 同時處理的補票任務數
	DefaultConcurrency = 4
	// DefaultRegenerationTimeout 單一補票任務的執行上限
	DefaultRegenerationTimeout = 5 * time.Minute
)

type RegenerationWorker interface {
	// 訂閱補票隊列並處理，直到 ctx 結束且所有進行中的任務完成
	Run(ctx context.Context) error
}

type RegenerationWorkerImpl struct {
	allocator   allocator.QuotaAllocator
	queue       queue.RegenerationQueue
	concurrency int
	timeout     time.Duration
	// 同一場活動同一輪的重複任務在同一個 process 內只執行一次
	group singleflight.Group
	log   *zap.Logger
}

func NewRegenerationWorker(allocator allocator.QuotaAllocator, queue queue.RegenerationQueue, concurrency int, timeout time.Duration) RegenerationWorker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultRegenerationTimeout
	}
	return &RegenerationWorkerImpl{
		allocator:   allocator,
		queue:       queue,
		concurrency: concurrency,
		timeout:     timeout,
		log:         logger.WithComponent("worker"),
	}
}

func (w *RegenerationWorkerImpl) Run(ctx context.Context) error {
	msgs, err := w.queue.SubscribeRegenerations(ctx)
	if err != nil {
		return fmt.Errorf("subscribe regenerations: %w", err)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, w.concurrency)

	for msg := range msgs {
		sem <- struct{}{}
		wg.Add(1)
		go func(d queue.Delivery) {
			defer func() {
				<-sem
				wg.Done()
			}()
			w.handle(ctx, d)
		}(msg)
	}

	wg.Wait()
	return nil
}

func (w *RegenerationWorkerImpl) handle(ctx context.Context, d queue.Delivery) {
	job := d.Data
	if job == nil {
		d.Nack(false)
		return
	}

	log := w.log.With(
		zap.String("job_id", job.JobID),
		zap.Int("competition_id", job.CompetitionID),
		zap.Int("round", job.Round),
	)

	// 關閉訊號只停止接收新任務，已開始的補票要跑完，避免留下寫到一半的輪次
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	key := fmt.Sprintf("%d:%d", job.CompetitionID, job.Round)
	result, err, shared := w.group.Do(key, func() (any, error) {
		return w.allocator.Regenerate(runCtx, *job)
	})

	if err != nil {
		// 補票失敗只記錄，留給 queue 重試；已發出的票券不受影響
		log.Error("Pool regeneration failed", zap.Error(err))
		metrics.RecordRegeneration("failed")
		d.Nack(true)
		return
	}

	regenerated, _ := result.(bool)
	switch {
	case shared:
		metrics.RecordRegeneration("shared")
	case regenerated:
		metrics.RecordRegeneration("regenerated")
	default:
		metrics.RecordRegeneration("skipped")
	}
	log.Debug("Regeneration job done", zap.Bool("regenerated", regenerated), zap.Bool("shared", shared))
	d.Ack()
}
