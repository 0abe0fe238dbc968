// Package testutil 連線測試用的 Postgres (5433) 與 Redis (6380)。
// 測試環境沒有啟動這兩個服務時，依賴它們的測試會被 skip。
package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"lucky-draw-backend/config"
	"lucky-draw-backend/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 3 * time.Second

// Setup 連線測試 DB 與 Redis，並套用 migration
func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	testDB, dbCleanup, err := SetupDatabaseOnly()
	if err != nil {
		return nil, nil, nil, err
	}

	testRdb, rdbCleanup, err := SetupRedisOnly()
	if err != nil {
		dbCleanup()
		return nil, nil, nil, err
	}

	cleanup := func() {
		dbCleanup()
		rdbCleanup()
	}

	return testDB, testRdb, cleanup, nil
}

// SetupDatabaseOnly 僅初始化 Postgres，用於 repository / allocator 整合測試
func SetupDatabaseOnly() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	testDB, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	if err := database.MigrateUp(&cfg.Database); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}
	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（如 queue 整合測試）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() { _ = rdb.Close() }
	return rdb, cleanup, nil
}

// TruncateAll 清空所有測試資料，保留 schema
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		"TRUNCATE activations, tickets, generated_slots, competitions, prize_tiers RESTART IDENTITY CASCADE")
	return err
}
