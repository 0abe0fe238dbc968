package queue

import (
	"context"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.RegenerationJob
	Ack  func()
	Nack func(requeue bool)
}

type RegenerationQueue interface {
	// 發送補票任務到隊列
	PublishRegeneration(ctx context.Context, job *model.RegenerationJob) error
	// 訂閱補票隊列
	SubscribeRegenerations(ctx context.Context) (<-chan Delivery, error)
}

type RegenerationQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.RegenerationJob
}

func NewRegenerationQueue(bufferSize int) RegenerationQueue {
	return &RegenerationQueueImpl{
		ch: make(chan *model.RegenerationJob, bufferSize),
	}
}

func (q *RegenerationQueueImpl) PublishRegeneration(ctx context.Context, job *model.RegenerationJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *RegenerationQueueImpl) SubscribeRegenerations(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				// 將原始 job 包裝成 Delivery 格式給 Worker
				d := Delivery{
					Data: job,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// 簡單模擬重回隊列，buffer 滿時丟棄
						select {
						case q.ch <- job:
						default:
							logger.WithComponent("mq").Warn("memory queue full, drop requeued job", zap.String("job_id", job.JobID))
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
