package queue_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lucky-draw-backend/internal/queue"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestRdb(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis not available")
	}
	ctx := context.Background()
	_ = testRdb.Del(ctx, queue.StreamKey).Err()
	if keys, err := testRdb.Keys(ctx, "pool:regeneration:dedupe:*").Result(); err == nil && len(keys) > 0 {
		_ = testRdb.Del(ctx, keys...).Err()
	}
	return testRdb
}

func TestRedisStreamQueue_Subscribe_deliversPublishedMessage(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "deliver-test", nil)
	require.NoError(t, err)

	job := newTestJob("job-deliver")
	require.NoError(t, q.PublishRegeneration(ctx, job))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeRegenerations(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok, "應收到一筆")
		require.NotNil(t, d.Data)
		assert.Equal(t, job.JobID, d.Data.JobID)
		assert.Equal(t, job.CompetitionID, d.Data.CompetitionID)
		assert.Equal(t, job.Round, d.Data.Round)
		assert.Equal(t, job.Numbers, d.Data.Numbers)
		assert.Equal(t, job.Quotas, d.Data.Quotas)
		assert.Equal(t, job.TotalParticipants, d.Data.TotalParticipants)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}
}

func TestRedisStreamQueue_Ack_preventsRedelivery(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	cfg := &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 300 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "ack-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.PublishRegeneration(ctx, newTestJob("job-ack")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeRegenerations(subCtx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到第一筆")
	}

	// 超過 ClaimMinIdleTime 也不應再被領回
	select {
	case d, ok := <-delCh:
		if ok && d.Data != nil && d.Data.JobID == "job-ack" {
			t.Fatalf("Ack 後不應再收到同一筆: JobID=%s", d.Data.JobID)
		}
	case <-time.After(time.Second):
	}
}

func TestRedisStreamQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	cfg := &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 300 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "nack-requeue-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.PublishRegeneration(ctx, newTestJob("job-requeue")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeRegenerations(subCtx)
	require.NoError(t, err)

	first := <-delCh
	require.NotNil(t, first.Data)
	first.Nack(true)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		assert.Equal(t, "job-requeue", d.Data.JobID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("Nack(true) 後應在 ClaimMinIdleTime 後重新投遞")
	}
}

func TestRedisStreamQueue_Publish_dedupesSameRound(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()
	_ = rdb.Del(ctx, queue.DedupeKey(1, 1), queue.DedupeKey(1, 2)).Err()

	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "dedupe-test", nil)
	require.NoError(t, err)

	first := newTestJob("job-first")
	first.Round = 1
	dup := newTestJob("job-dup")
	dup.Round = 1
	next := newTestJob("job-next")
	next.Round = 2

	require.NoError(t, q.PublishRegeneration(ctx, first))
	require.NoError(t, q.PublishRegeneration(ctx, dup))
	require.NoError(t, q.PublishRegeneration(ctx, next))

	n, err := rdb.XLen(ctx, queue.StreamKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "同一輪只應寫入一筆")

	owner, err := rdb.Get(ctx, queue.DedupeKey(1, 1)).Result()
	require.NoError(t, err)
	assert.Equal(t, "job-first", owner)

	ttl, err := rdb.TTL(ctx, queue.DedupeKey(1, 1)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisStreamQueue_Ack_releasesDedupeKey(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	job := newTestJob("job-release")
	_ = rdb.Del(ctx, queue.DedupeKey(job.CompetitionID, job.Round)).Err()

	cfg := &queue.RedisStreamQueueConfig{ReadGroupBlockTime: 300 * time.Millisecond}
	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "release-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.PublishRegeneration(ctx, job))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.SubscribeRegenerations(subCtx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}

	exists, err := rdb.Exists(ctx, queue.DedupeKey(job.CompetitionID, job.Round)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists, "處理完成後應可再次發送同一輪")

	// 之後同一輪的任務可以再次排入
	require.NoError(t, q.PublishRegeneration(ctx, newTestJob("job-again")))
	n, err := rdb.XLen(ctx, queue.StreamKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRedisStreamQueue_Publish_trimsStream(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	const maxLen = 100
	q, err := queue.NewRedisStreamRegenerationQueue(ctx, rdb, "trim-test", &queue.RedisStreamQueueConfig{StreamMaxLen: maxLen})
	require.NoError(t, err)

	for round := 1; round <= 1000; round++ {
		_ = rdb.Del(ctx, queue.DedupeKey(7, round)).Err()
		job := newTestJob(fmt.Sprintf("job-trim-%d", round))
		job.CompetitionID = 7
		job.Round = round
		require.NoError(t, q.PublishRegeneration(ctx, job))
	}

	n, err := rdb.XLen(ctx, queue.StreamKey).Result()
	require.NoError(t, err)
	// MAXLEN ~ 以 macro node 為單位修剪，長度會略大於上限
	assert.Less(t, n, int64(1000))
	assert.GreaterOrEqual(t, n, int64(maxLen))
}
