package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lucky-draw-backend/internal/allocator"
	allocatorMocks "lucky-draw-backend/internal/allocator/mocks"
	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/queue"
	queueMocks "lucky-draw-backend/internal/queue/mocks"
	"lucky-draw-backend/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// 簡單的 allocator 實作，記錄 Regenerate 被呼叫的次數
type countingAllocator struct {
	allocator.QuotaAllocator // 嵌入介面
	calls                    atomic.Int32
	gate                     chan struct{}
	failFirst                bool
	done                     chan model.RegenerationJob
}

func (a *countingAllocator) Regenerate(ctx context.Context, job model.RegenerationJob) (bool, error) {
	n := a.calls.Add(1)
	if a.gate != nil {
		<-a.gate
	}
	if a.failFirst && n == 1 {
		return false, errors.New("regeneration failed")
	}
	if a.done != nil {
		a.done <- job
	}
	return true, nil
}

func runWorker(t *testing.T, w worker.RegenerationWorker) (context.CancelFunc, *sync.WaitGroup) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, w.Run(ctx))
	}()
	return cancel, &wg
}

func newJob(id string, round int) *model.RegenerationJob {
	return &model.RegenerationJob{
		JobID:             id,
		CompetitionID:     1,
		Round:             round,
		Numbers:           []string{"01", "02", "03", "04", "05", "06", "07"},
		Quotas:            model.TierCounts{Grand: 1, Consolation: 2},
		TotalParticipants: 10,
	}
}

func TestRegenerationWorker_ProcessesJob(t *testing.T) {
	q := queue.NewRegenerationQueue(10)
	alloc := &countingAllocator{done: make(chan model.RegenerationJob, 1)}

	cancel, wg := runWorker(t, worker.NewRegenerationWorker(alloc, q, 2, 0))
	defer func() {
		cancel()
		wg.Wait()
	}()

	require.NoError(t, q.PublishRegeneration(context.Background(), newJob("job-1", 1)))

	select {
	case job := <-alloc.done:
		assert.Equal(t, "job-1", job.JobID)
		assert.Equal(t, 1, job.CompetitionID)
		assert.Equal(t, 1, job.Round)
	case <-time.After(2 * time.Second):
		t.Fatal("超時！Worker 沒有在時間內處理補票任務")
	}
}

func TestRegenerationWorker_CollapsesDuplicateJobs(t *testing.T) {
	q := queue.NewRegenerationQueue(10)
	alloc := &countingAllocator{gate: make(chan struct{})}

	cancel, wg := runWorker(t, worker.NewRegenerationWorker(alloc, q, 4, 0))
	defer func() {
		cancel()
		wg.Wait()
	}()

	// 同一場活動同一輪的三個任務同時進行
	for _, id := range []string{"job-a", "job-b", "job-c"} {
		require.NoError(t, q.PublishRegeneration(context.Background(), newJob(id, 1)))
	}

	require.Eventually(t, func() bool { return alloc.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond) // 等待其他任務加入 singleflight
	close(alloc.gate)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), alloc.calls.Load(), "重複的補票任務只應執行一次")
}

func TestRegenerationWorker_RequeuesOnFailure(t *testing.T) {
	q := queue.NewRegenerationQueue(10)
	alloc := &countingAllocator{failFirst: true, done: make(chan model.RegenerationJob, 1)}

	cancel, wg := runWorker(t, worker.NewRegenerationWorker(alloc, q, 1, 0))
	defer func() {
		cancel()
		wg.Wait()
	}()

	require.NoError(t, q.PublishRegeneration(context.Background(), newJob("job-retry", 1)))

	select {
	case job := <-alloc.done:
		assert.Equal(t, "job-retry", job.JobID)
		assert.Equal(t, int32(2), alloc.calls.Load(), "失敗後應重新投遞一次")
	case <-time.After(2 * time.Second):
		t.Fatal("超時！失敗的補票任務沒有被重新處理")
	}
}

func TestRegenerationWorker_AcksAndNacks(t *testing.T) {
	t.Run("Success - Ack", func(t *testing.T) {
		mockQueue := queueMocks.NewMockRegenerationQueue(t)
		mockAllocator := allocatorMocks.NewMockQuotaAllocator(t)

		acked := make(chan struct{})
		msgs := make(chan queue.Delivery, 1)
		msgs <- queue.Delivery{
			Data: newJob("job-ack", 3),
			Ack:  func() { close(acked) },
			Nack: func(bool) { t.Error("不應該 Nack") },
		}
		close(msgs)

		mockQueue.EXPECT().SubscribeRegenerations(mock.Anything).Return((<-chan queue.Delivery)(msgs), nil).Once()
		mockAllocator.EXPECT().Regenerate(mock.Anything, *newJob("job-ack", 3)).Return(false, nil).Once()

		w := worker.NewRegenerationWorker(mockAllocator, mockQueue, 1, 0)
		require.NoError(t, w.Run(context.Background()))

		select {
		case <-acked:
		default:
			t.Fatal("任務應該被 Ack")
		}
	})

	t.Run("Failed - Nack with requeue", func(t *testing.T) {
		mockQueue := queueMocks.NewMockRegenerationQueue(t)
		mockAllocator := allocatorMocks.NewMockQuotaAllocator(t)

		var requeued atomic.Bool
		msgs := make(chan queue.Delivery, 1)
		msgs <- queue.Delivery{
			Data: newJob("job-nack", 1),
			Ack:  func() { t.Error("失敗的任務不應該 Ack") },
			Nack: func(requeue bool) { requeued.Store(requeue) },
		}
		close(msgs)

		mockQueue.EXPECT().SubscribeRegenerations(mock.Anything).Return((<-chan queue.Delivery)(msgs), nil).Once()
		mockAllocator.EXPECT().Regenerate(mock.Anything, mock.Anything).Return(false, errors.New("db down")).Once()

		w := worker.NewRegenerationWorker(mockAllocator, mockQueue, 1, 0)
		require.NoError(t, w.Run(context.Background()))
		assert.True(t, requeued.Load())
	})

	t.Run("Failed - subscribe error", func(t *testing.T) {
		mockQueue := queueMocks.NewMockRegenerationQueue(t)
		mockAllocator := allocatorMocks.NewMockQuotaAllocator(t)

		mockQueue.EXPECT().SubscribeRegenerations(mock.Anything).Return(nil, errors.New("redis down")).Once()

		w := worker.NewRegenerationWorker(mockAllocator, mockQueue, 1, 0)
		require.Error(t, w.Run(context.Background()))
	})
}

func TestRegenerationWorker_ShutdownDoesNotAbortRegeneration(t *testing.T) {
	mockQueue := queueMocks.NewMockRegenerationQueue(t)
	mockAllocator := allocatorMocks.NewMockQuotaAllocator(t)

	acked := make(chan struct{})
	msgs := make(chan queue.Delivery, 1)
	msgs <- queue.Delivery{
		Data: newJob("job-shutdown", 2),
		Ack:  func() { close(acked) },
		Nack: func(bool) { t.Error("不應該 Nack") },
	}
	close(msgs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockQueue.EXPECT().SubscribeRegenerations(mock.Anything).Return((<-chan queue.Delivery)(msgs), nil).Once()
	mockAllocator.EXPECT().Regenerate(mock.Anything, mock.Anything).
		RunAndReturn(func(runCtx context.Context, _ model.RegenerationJob) (bool, error) {
			// worker 已收到關閉訊號，補票仍應在自己的逾時內完成
			assert.NoError(t, runCtx.Err())
			deadline, ok := runCtx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return true, nil
		}).Once()

	w := worker.NewRegenerationWorker(mockAllocator, mockQueue, 1, time.Minute)
	require.NoError(t, w.Run(ctx))

	select {
	case <-acked:
	default:
		t.Fatal("任務應該被 Ack")
	}
}
