package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hituru/admin-backend/internal/config"
	"github.com/hituru/admin-backend/internal/handler"
	"github.com/hituru/admin-backend/internal/middleware"
	"github.com/hituru/admin-backend/internal/routes"
	"github.com/hituru/admin-backend/pkg/auth"
	pkgcache "github.com/hituru/admin-backend/pkg/cache"
	pkglogger "github.com/hituru/admin-backend/pkg/logger"
	pkgredis "github.com/hituru/admin-backend/pkg/redis"
)

const serviceName = "hituru-admin-backend"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

// @title           Hituru Admin API
// @version         1.0
// @description     hituru 관리자 대시보드 백엔드 API (회원, 게시글, 신고, 문의, 통계)
//
// @host            localhost:8080
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 관리자 JWT. 예: "Bearer {token}"
func main() {
	dotenvFiles := config.LoadDotEnv(".")

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	log := pkglogger.GetLogger()
	log.Info().Str("app_env", env).Strs("env_files", dotenvFiles).Msg("starting")

	// 설정 로드
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
	config.LogResolved(cfg, log)

	// MySQL 연결
	db, err := initDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("connected to MySQL")

	// Redis 연결 (선택)
	cacheService := pkgcache.NewService(nil)
	redisClient, err := connectRedis(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without verdict cache and shared rate limit")
	} else if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		log.Info().Msg("connected to Redis")
	}

	verifier, err := newVerifier(cfg, cacheService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure admin token verification")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if cfg.RateLimit.Enabled {
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
		router.Use(middleware.RateLimit(redisClient, rl))
	}

	// 인증 없이 접근 가능한 운영 엔드포인트
	router.GET("/health", handler.Health(serviceName, db, cacheService))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	loc, err := time.LoadLocation(config.Location)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load time zone")
	}
	routes.Setup(router, routes.NewHandlers(db, cfg.Analysis.MaxPeriods, loc),
		middleware.AdminCheck(verifier),
		middleware.Audit(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reportDBStats(ctx, db)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// connectRedis returns nil without error when Redis is not configured
func connectRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Host == "" {
		return nil, nil
	}
	return pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
}

// newVerifier selects the admin token verifier for cfg.Auth.Mode and wraps it with the
// Redis verdict cache when Redis is connected
func newVerifier(cfg *config.Config, cache pkgcache.Service) (auth.Verifier, error) {
	var v auth.Verifier
	switch cfg.Auth.Mode {
	case "remote":
		if cfg.Auth.IntrospectURL == "" {
			return nil, errors.New("auth.introspect_url is required in remote mode")
		}
		v = auth.NewRemoteVerifier(cfg.Auth.IntrospectURL, cfg.AuthTimeout())
	case "jwt":
		if cfg.Auth.JWTSecret == "" {
			return nil, errors.New("auth.jwt_secret is required in jwt mode")
		}
		v = auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}

	if cache.IsAvailable() {
		v = auth.NewCachedVerifier(v, cache, cfg.AuthCacheTTL(), pkglogger.GetLogger())
	}
	return v, nil
}

// initDB MySQL 연결 초기화
func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := cfg.Database.MySQLConfig()
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.Database.LogLevel == "info" {
		level = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}

// reportDBStats feeds the connection pool gauge until ctx is done
func reportDBStats(ctx context.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			middleware.SetDBConnectionsActive(float64(sqlDB.Stats().InUse))
		}
	}
}
