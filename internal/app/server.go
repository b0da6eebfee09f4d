package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/provider"
	"github.com/eshop-next/internal/router"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// Options 进程选项
type Options struct {
	Logger          *zap.SugaredLogger
	ShutdownTimeout time.Duration
}

// Server 店面进程。接管数据库与 Redis 连接，退出时先停 HTTP 再释放连接。
type Server struct {
	db              *gorm.DB
	httpServer      *http.Server
	log             *zap.SugaredLogger
	shutdownTimeout time.Duration
	closeOnce       sync.Once
	closeErr        error
}

// NewServer 初始化 Redis 并装配路由
func NewServer(cfg *config.Config, db *gorm.DB, opts Options) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if db == nil {
		return nil, errors.New("database is nil")
	}
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		opts.Logger.Warnw("app_init_redis_failed", "error", err)
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		// 下单锁与限流在 Redis 不可用时放行，不阻止启动
		opts.Logger.Warnw("app_redis_unreachable", "error", err)
	}

	engine := router.SetupRouter(cfg, provider.NewContainerWithDB(cfg, db))
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return &Server{
		db:              db,
		httpServer:      httpServer,
		log:             opts.Logger,
		shutdownTimeout: opts.ShutdownTimeout,
	}, nil
}

// Handler 返回路由，便于测试直接驱动
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe 监听配置地址，直到 ctx 结束
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		if closeErr := s.Close(); closeErr != nil {
			s.log.Warnw("app_close_failed", "error", closeErr)
		}
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve 在 ln 上提供服务。ctx 结束返回 nil，监听出错返回该错误；两种情况都会释放连接。
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()
	s.log.Infow("app_start", "addr", ln.Addr().String(), "redis_enabled", cache.Enabled())

	var serveErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Errorw("app_http_shutdown_failed", "error", err)
	}
	if err := s.Close(); err != nil {
		s.log.Warnw("app_close_failed", "error", err)
	}
	s.log.Infow("app_stop", "error", serveErr)
	return serveErr
}

// Close 释放 Redis 与数据库连接，重复调用返回首次结果
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// Run 进程入口，收到任一 signals 后优雅退出
func Run(cfg *config.Config, db *gorm.DB, opts Options, signals ...os.Signal) error {
	ctx := context.Background()
	if len(signals) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, signals...)
		defer stop()
	}

	srv, err := NewServer(cfg, db, opts)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
