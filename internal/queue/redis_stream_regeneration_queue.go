package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "pool:regeneration:stream"
	ConsumerGroupName  = "regeneration-workers"
	ConsumerNamePrefix = "worker"
	jobField           = "job"
	// 同一場活動同一輪在處理完成前只保留一筆任務
	dedupeKeyFormat = "pool:regeneration:dedupe:%d:%d"
)

// RedisStreamQueueConfig 可注入的逾時、重試與容量設定；零值時使用預設。
type RedisStreamQueueConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領取
	MaxRetryCount      int           // 超過此次數視為毒藥消息並丟棄
	ReadGroupBlockTime time.Duration // XReadGroup 阻塞時間
	DedupeTTL          time.Duration // 去重 key 的存活時間，Ack 後會提早刪除
	StreamMaxLen       int64         // XADD 時以 MAXLEN ~ 修剪 stream
}

func defaultRedisStreamConfig() RedisStreamQueueConfig {
	return RedisStreamQueueConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
		DedupeTTL:          10 * time.Minute,
		StreamMaxLen:       10000,
	}
}

func (c *RedisStreamQueueConfig) merge(override *RedisStreamQueueConfig) {
	if override == nil {
		return
	}
	if override.ClaimMinIdleTime > 0 {
		c.ClaimMinIdleTime = override.ClaimMinIdleTime
	}
	if override.MaxRetryCount > 0 {
		c.MaxRetryCount = override.MaxRetryCount
	}
	if override.ReadGroupBlockTime > 0 {
		c.ReadGroupBlockTime = override.ReadGroupBlockTime
	}
	if override.DedupeTTL > 0 {
		c.DedupeTTL = override.DedupeTTL
	}
	if override.StreamMaxLen > 0 {
		c.StreamMaxLen = override.StreamMaxLen
	}
}

// DedupeKey 補票任務的去重 key
func DedupeKey(competitionID, round int) string {
	return fmt.Sprintf(dedupeKeyFormat, competitionID, round)
}

type RedisStreamRegenerationQueueImpl struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamQueueConfig
	log          *zap.Logger
}

// NewRedisStreamRegenerationQueue 建立 Redis Stream 版 RegenerationQueue。config 可為 nil，則全部使用預設值。
func NewRedisStreamRegenerationQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamQueueConfig) (RegenerationQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	cfg.merge(config)
	q := &RedisStreamRegenerationQueueImpl{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
		log:          logger.WithComponent("mq"),
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamRegenerationQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// PublishRegeneration 同一場活動同一輪已有任務在排隊或處理中時直接略過，
// 票池用盡瞬間大量搶票失敗的請求只會寫入一筆。
func (q *RedisStreamRegenerationQueueImpl) PublishRegeneration(ctx context.Context, job *model.RegenerationJob) error {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal regeneration job: %w", err)
	}

	key := DedupeKey(job.CompetitionID, job.Round)
	acquired, err := q.client.SetNX(ctx, key, job.JobID, q.cfg.DedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("setnx dedupe key: %w", err)
	}
	if !acquired {
		q.log.Debug("Regeneration job already queued, skip publish",
			zap.String("job_id", job.JobID),
			zap.Int("competition_id", job.CompetitionID),
			zap.Int("round", job.Round),
		)
		return nil
	}

	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		MaxLen: q.cfg.StreamMaxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{jobField: string(jobJSON)},
	}).Err()
	if err != nil {
		q.releaseDedupe(ctx, key)
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamRegenerationQueueImpl) releaseDedupe(ctx context.Context, key string) {
	if err := q.client.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
		q.log.Warn("Release dedupe key failed", zap.String("key", key), zap.Error(err))
	}
}

func (q *RedisStreamRegenerationQueueImpl) SubscribeRegenerations(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		done := make(chan struct{})
		go func() {
			defer close(done)
			q.runAutoClaim(ctx, out)
		}()
		q.runReadLoop(ctx, out)
		<-done
	}()
	return out, nil
}

// runReadLoop 主讀取循環，只讀新消息(">")
func (q *RedisStreamRegenerationQueueImpl) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

// readAndDeliver 執行一輪讀取並投遞到 out
// Pending 的訊息已投遞過，不再重複投遞，改由 XAUTOCLAIM 超時後領回重試。
func (q *RedisStreamRegenerationQueueImpl) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		q.log.Error("XReadGroup failed", zap.Error(err))
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
		}
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			d := q.newDelivery(ctx, msg)
			if d != nil {
				select {
				case out <- *d:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// shouldProcessMessage 檢查是否應處理（含毒藥消息判斷）
func (q *RedisStreamRegenerationQueueImpl) shouldProcessMessage(ctx context.Context, msg redis.XMessage) bool {
	messageID := msg.ID
	n, err := q.getMessageRetryCount(ctx, messageID)
	if err != nil {
		q.log.Warn("getMessageRetryCount failed", zap.String("message_id", messageID), zap.Error(err))
		return true
	}
	if n >= q.cfg.MaxRetryCount {
		q.log.Warn("discard poison message", zap.String("message_id", messageID), zap.Int("retries", n), zap.Int("max_retries", q.cfg.MaxRetryCount))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
		q.releaseDedupeFor(ctx, msg)
		return false
	}
	return true
}

func (q *RedisStreamRegenerationQueueImpl) getMessageRetryCount(ctx context.Context, messageID string) (int, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return int(pending[0].RetryCount), nil
}

// runAutoClaim 定時用 XAUTOCLAIM 領取超時未處理的消息
func (q *RedisStreamRegenerationQueueImpl) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() == nil {
					q.log.Error("XAutoClaim failed", zap.Error(err))
				}
				continue
			}
			if nextID != "" && nextID != "0-0" {
				startID = nextID
			} else {
				startID = "0-0"
			}

			for _, msg := range claimed {
				if !q.shouldProcessMessage(ctx, msg) {
					continue
				}
				d := q.newDelivery(ctx, msg)
				if d != nil {
					select {
					case out <- *d:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}
}

// newDelivery 從 Redis 消息組裝 Delivery（含 Ack/Nack），格式錯誤的消息直接 Ack 丟棄
func (q *RedisStreamRegenerationQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	jobJSON, ok := msg.Values[jobField].(string)
	if !ok {
		q.log.Warn("invalid message: missing job field", zap.String("message_id", msg.ID))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	var job model.RegenerationJob
	if err := json.Unmarshal([]byte(jobJSON), &job); err != nil {
		q.log.Warn("unmarshal regeneration job failed", zap.String("message_id", msg.ID), zap.Error(err))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	msgID := msg.ID
	key := DedupeKey(job.CompetitionID, job.Round)
	return &Delivery{
		Data: &job,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				q.log.Error("XAck failed", zap.String("message_id", msgID), zap.Error(err))
			}
			q.releaseDedupe(ctx, key)
		},
		Nack: func(requeue bool) {
			if requeue {
				// 不做任何事：消息留在 PEL，等 ClaimMinIdleTime 後由 XAUTOCLAIM 領取，形成延遲重試
				q.log.Info("message nack(requeue), will retry", zap.String("message_id", msgID), zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				q.log.Error("XAck discard failed", zap.String("message_id", msgID), zap.Error(err))
			}
			q.releaseDedupe(ctx, key)
		},
	}
}

// releaseDedupeFor 丟棄的毒藥消息也要釋放去重 key，否則要等 TTL 才能重新發送
func (q *RedisStreamRegenerationQueueImpl) releaseDedupeFor(ctx context.Context, msg redis.XMessage) {
	jobJSON, ok := msg.Values[jobField].(string)
	if !ok {
		return
	}
	var job model.RegenerationJob
	if err := json.Unmarshal([]byte(jobJSON), &job); err != nil {
		return
	}
	q.releaseDedupe(ctx, DedupeKey(job.CompetitionID, job.Round))
}
