package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       ServerConfig    `yaml:"app"       envconfig:"APP"`
	Database  DatabaseConfig  `yaml:"database"  envconfig:"DB"`
	Redis     RedisConfig     `yaml:"redis"     envconfig:"REDIS"`
	Pool      PoolConfig      `yaml:"pool"      envconfig:"POOL"`
	Queue     QueueConfig     `yaml:"queue"     envconfig:"QUEUE"`
	Scheduler SchedulerConfig `yaml:"scheduler" envconfig:"SCHEDULER"`
}

type ServerConfig struct {
	Port    string `yaml:"port"    envconfig:"PORT"`
	GinMode string `yaml:"ginMode" envconfig:"GIN_MODE"`
	// 報名端點每個 IP 的速率限制
	RegisterRatePerSecond float64 `yaml:"registerRatePerSecond" envconfig:"REGISTER_RATE"`
	RegisterBurst         int     `yaml:"registerBurst"         envconfig:"REGISTER_BURST"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"     envconfig:"HOST"`
	Port     string `yaml:"port"     envconfig:"PORT"`
	User     string `yaml:"user"     envconfig:"USER"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DBName   string `yaml:"dbName"   envconfig:"NAME"`
	SSLMode  string `yaml:"sslMode"  envconfig:"SSL_MODE"`
	MaxConns int32  `yaml:"maxConns" envconfig:"MAX_CONNS"`
	MinConns int32  `yaml:"minConns" envconfig:"MIN_CONNS"`
}

type RedisConfig struct {
	Host     string `yaml:"host"     envconfig:"HOST"`
	Port     string `yaml:"port"     envconfig:"PORT"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DB       int    `yaml:"db"       envconfig:"DB"`
}

// PoolConfig 票池產生與發券的參數
type PoolConfig struct {
	TicketPrefix          string `yaml:"ticketPrefix"          envconfig:"TICKET_PREFIX"`
	TicketExpiryGraceDays int    `yaml:"ticketExpiryGraceDays" envconfig:"TICKET_EXPIRY_GRACE_DAYS"`
	FillerBatchSize       int    `yaml:"fillerBatchSize"       envconfig:"FILLER_BATCH_SIZE"`
	MaxGenerationAttempts int    `yaml:"maxGenerationAttempts" envconfig:"MAX_GENERATION_ATTEMPTS"`
	MaxClaimAttempts      int    `yaml:"maxClaimAttempts"      envconfig:"MAX_CLAIM_ATTEMPTS"`
	MaxTicketIDAttempts   int    `yaml:"maxTicketIDAttempts"   envconfig:"MAX_TICKET_ID_ATTEMPTS"`
}

type QueueConfig struct {
	// redis 或 memory
	Driver             string        `yaml:"driver"             envconfig:"DRIVER"`
	ConsumerID         string        `yaml:"consumerID"         envconfig:"CONSUMER_ID"`
	MemoryBufferSize   int           `yaml:"memoryBufferSize"   envconfig:"MEMORY_BUFFER_SIZE"`
	ClaimMinIdleTime   time.Duration `yaml:"claimMinIdleTime"   envconfig:"CLAIM_MIN_IDLE_TIME"`
	MaxRetryCount      int           `yaml:"maxRetryCount"      envconfig:"MAX_RETRY_COUNT"`
	ReadGroupBlockTime time.Duration `yaml:"readGroupBlockTime" envconfig:"READ_GROUP_BLOCK_TIME"`
	DedupeTTL          time.Duration `yaml:"dedupeTTL"          envconfig:"DEDUPE_TTL"`
	StreamMaxLen       int64         `yaml:"streamMaxLen"       envconfig:"STREAM_MAX_LEN"`
	// 單一補票任務的執行上限，不受 worker 關閉影響
	RegenerationTimeout time.Duration `yaml:"regenerationTimeout" envconfig:"REGENERATION_TIMEOUT"`
}

type SchedulerConfig struct {
	// cron 表達式，預設每分鐘檢查一次過期活動
	ExpirySpec string `yaml:"expirySpec" envconfig:"EXPIRY_SPEC"`
}

var AppConfig *Config

func defaultConfig() *Config {
	return &Config{
		App: ServerConfig{
			Port:                  "8080",
			GinMode:               "release",
			RegisterRatePerSecond: 5,
			RegisterBurst:         10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "postgres",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		Pool: PoolConfig{
			TicketPrefix:          "SLH-2025",
			TicketExpiryGraceDays: 20,
			FillerBatchSize:       1000,
			MaxGenerationAttempts: 10000,
			MaxClaimAttempts:      5,
			MaxTicketIDAttempts:   10,
		},
		Queue: QueueConfig{
			Driver:             "redis",
			MemoryBufferSize:   100,
			ClaimMinIdleTime:   5 * time.Second,
			MaxRetryCount:      5,
			ReadGroupBlockTime: 2 * time.Second,
			DedupeTTL:          10 * time.Minute,
			StreamMaxLen:       10000,

			RegenerationTimeout: 5 * time.Minute,
		},
		Scheduler: SchedulerConfig{
			ExpirySpec: "@every 1m",
		},
	}
}

// LoadConfig 設定讀取順序：預設值 -> YAML 檔 (可省略) -> 環境變數
func LoadConfig(configFile string) (*Config, error) {
	cfg := defaultConfig()

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	cfg := defaultConfig()

	cfg.Database = DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 25,
		MinConns: 1,
	}

	cfg.Redis = RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	cfg.Queue.Driver = "memory"

	return cfg
}
