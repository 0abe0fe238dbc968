package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lucky-draw-backend/config"
	"lucky-draw-backend/internal/allocator"
	"lucky-draw-backend/internal/cache"
	"lucky-draw-backend/internal/database"
	"lucky-draw-backend/internal/handler"
	"lucky-draw-backend/internal/metrics"
	"lucky-draw-backend/internal/numberset"
	"lucky-draw-backend/internal/queue"
	"lucky-draw-backend/internal/repository"
	"lucky-draw-backend/internal/scheduler"
	"lucky-draw-backend/internal/service"
	"lucky-draw-backend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, regeneration worker and expiry scheduler",
		Run:   serveRun,
	}
}

func serveRun(_ *cobra.Command, _ []string) {
	cfg, log := commonRun()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, log); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
	log.Info("Server stopped")
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := database.MigrateUp(&cfg.Database); err != nil {
		return err
	}

	pool, err := database.InitDatabase(startCtx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := database.InitRedis(startCtx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	regenerationQueue, err := newRegenerationQueue(ctx, cfg, rdb)
	if err != nil {
		return err
	}

	competitionRepo := repository.NewCompetitionRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	activationRepo := repository.NewActivationRepository(pool)
	prizeTierRepo := repository.NewPrizeTierRepository(pool)

	reserver := cache.NewRedisRegistrantReserver(rdb, cache.DefaultReservationTTL)
	quotaAllocator := allocator.NewQuotaAllocator(pool, competitionRepo, slotRepo,
		numberset.NewGenerator(cfg.Pool.MaxGenerationAttempts), cfg.Pool.FillerBatchSize)

	competitionService := service.NewCompetitionService(competitionRepo, slotRepo, ticketRepo, activationRepo, quotaAllocator)
	ticketService := service.NewTicketService(pool, competitionRepo, slotRepo, ticketRepo,
		service.NewDuplicateGuard(cache.ScopeTicket, ticketRepo, reserver),
		regenerationQueue,
		service.TicketOptions{
			Prefix:              cfg.Pool.TicketPrefix,
			ExpiryGraceDays:     cfg.Pool.TicketExpiryGraceDays,
			MaxClaimAttempts:    cfg.Pool.MaxClaimAttempts,
			MaxTicketIDAttempts: cfg.Pool.MaxTicketIDAttempts,
		},
	)
	activationService := service.NewActivationService(activationRepo, ticketRepo, competitionRepo,
		service.NewDuplicateGuard(cache.ScopeActivation, activationRepo, reserver))
	prizeTierService := service.NewPrizeTierService(prizeTierRepo)

	gin.SetMode(cfg.App.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), metrics.GinMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	limiter := handler.NewIPRateLimiter(cfg.App.RegisterRatePerSecond, cfg.App.RegisterBurst)
	handler.NewCompetitionHandler(competitionService, ticketService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService, limiter.Middleware()).RegisterRoutes(router)
	handler.NewActivationHandler(activationService).RegisterRoutes(router)
	handler.NewPrizeTierHandler(prizeTierService).RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return worker.NewRegenerationWorker(quotaAllocator, regenerationQueue, 0, cfg.Queue.RegenerationTimeout).Run(gctx)
	})

	g.Go(func() error {
		return scheduler.NewExpiryScheduler(competitionService, cfg.Scheduler.ExpirySpec).Run(gctx)
	})

	return g.Wait()
}

// newRegenerationQueue memory 只適合單一 process
func newRegenerationQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.RegenerationQueue, error) {
	if cfg.Queue.Driver == "memory" {
		return queue.NewRegenerationQueue(cfg.Queue.MemoryBufferSize), nil
	}
	return queue.NewRedisStreamRegenerationQueue(ctx, rdb, cfg.Queue.ConsumerID, &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   cfg.Queue.ClaimMinIdleTime,
		MaxRetryCount:      cfg.Queue.MaxRetryCount,
		ReadGroupBlockTime: cfg.Queue.ReadGroupBlockTime,
		DedupeTTL:          cfg.Queue.DedupeTTL,
		StreamMaxLen:       cfg.Queue.StreamMaxLen,
	})
}
