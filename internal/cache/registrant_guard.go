package cache

import (
	"context"
	"fmt"
	"time"

	"lucky-draw-backend/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 報名作業的範圍，票券與兌獎各自獨立
const (
	ScopeTicket     = "ticket"
	ScopeActivation = "activation"
)

// DefaultReservationTTL 保留紀錄的存活時間，活動結束後自然過期
const DefaultReservationTTL = 60 * 24 * time.Hour

type RegistrantReserver interface {
	// 保留：原子地檢查並佔用聯絡欄位，衝突時回傳第一個衝突的欄位名稱
	Reserve(ctx context.Context, scope string, competitionID int, ids model.Identifiers) (token string, conflictField string, err error)
	// 釋放：只刪除同一個 token 佔用的欄位 (報名失敗時回滾)
	Release(ctx context.Context, scope string, competitionID int, ids model.Identifiers, token string) error
}

type RedisRegistrantReserverImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistrantReserver(client *redis.Client, ttl time.Duration) RegistrantReserver {
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	return &RedisRegistrantReserverImpl{
		client: client,
		ttl:    ttl,
	}
}

// 該場活動已佔用的聯絡欄位 key
func (m *RedisRegistrantReserverImpl) getRegistrantsKey(scope string, competitionID int) string {
	return fmt.Sprintf("competition:%d:%s:registrants", competitionID, scope)
}

func fieldKeys(ids model.Identifiers) ([]string, []string) {
	supplied := ids.Supplied()
	keys := make([]string, 0, len(supplied))
	names := make([]string, 0, len(supplied))
	for _, iv := range supplied {
		keys = append(keys, iv.Field+":"+iv.Value)
		names = append(names, iv.Field)
	}
	return keys, names
}

/*
*

	保留聯絡欄位 (使用Lua腳本確保原子性)
	1. 依序檢查每個欄位是否已被佔用
	2. 有衝突回傳欄位順序 (1-based)
	3. 全部可用時寫入 token 並更新 TTL
*/
var reserveScript = redis.NewScript(`
	-- 1. 取得參數
	local registrants_key = KEYS[1]
	local token = ARGV[1]
	local ttl = tonumber(ARGV[2])

	-- 2. 檢查是否有欄位已被佔用
	for i = 3, #ARGV do
		if redis.call('HEXISTS', registrants_key, ARGV[i]) == 1 then
			return i - 2 -- 錯誤：欄位已使用
		end
	end

	-- 3. 佔用所有欄位
	for i = 3, #ARGV do
		redis.call('HSET', registrants_key, ARGV[i], token)
	end
	redis.call('PEXPIRE', registrants_key, ttl)

	return 0 -- 保留成功
`)

// 只刪除自己佔用的欄位，避免誤刪其他請求的保留
var releaseScript = redis.NewScript(`
	local registrants_key = KEYS[1]
	local token = ARGV[1]
	local released = 0

	for i = 2, #ARGV do
		if redis.call('HGET', registrants_key, ARGV[i]) == token then
			redis.call('HDEL', registrants_key, ARGV[i])
			released = released + 1
		end
	end

	return released
`)

func (m *RedisRegistrantReserverImpl) Reserve(ctx context.Context, scope string, competitionID int, ids model.Identifiers) (string, string, error) {
	keys, names := fieldKeys(ids)
	if len(keys) == 0 {
		return "", "", nil
	}

	token := uuid.New().String()
	args := make([]any, 0, len(keys)+2)
	args = append(args, token, m.ttl.Milliseconds())
	for _, k := range keys {
		args = append(args, k)
	}

	code, err := reserveScript.Run(ctx, m.client, []string{m.getRegistrantsKey(scope, competitionID)}, args...).Int()
	if err != nil {
		return "", "", err
	}

	if code == 0 {
		return token, "", nil
	}
	if code < 1 || code > len(names) {
		return "", "", fmt.Errorf("unexpected reserve result: %d", code)
	}
	return "", names[code-1], nil
}

func (m *RedisRegistrantReserverImpl) Release(ctx context.Context, scope string, competitionID int, ids model.Identifiers, token string) error {
	keys, _ := fieldKeys(ids)
	if len(keys) == 0 || token == "" {
		return nil
	}

	args := make([]any, 0, len(keys)+1)
	args = append(args, token)
	for _, k := range keys {
		args = append(args, k)
	}

	return releaseScript.Run(ctx, m.client, []string{m.getRegistrantsKey(scope, competitionID)}, args...).Err()
}
