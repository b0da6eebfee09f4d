package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupServerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := models.OpenDB("sqlite", filepath.Join(t.TempDir(), "eshop.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newTestConfig(t *testing.T, mr *miniredis.Miniredis) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if mr != nil {
		port, err := strconv.Atoi(mr.Port())
		if err != nil {
			t.Fatalf("parse miniredis port failed: %v", err)
		}
		cfg.Redis = config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port, Prefix: "eshop-test"}
	}
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, db *gorm.DB) *Server {
	t.Helper()
	logger.L = zap.NewNop()
	srv, err := NewServer(cfg, db, Options{Logger: zap.NewNop().Sugar(), ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("new server failed: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func TestServerServesUntilCanceledThenReleasesConnections(t *testing.T) {
	mr := miniredis.RunT(t)
	db := setupServerDB(t)
	srv := newTestServer(t, newTestConfig(t, mr), db)
	if !cache.Enabled() {
		t.Fatalf("redis should be enabled after NewServer")
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	var body struct {
		StatusCode int `json:"status_code"`
	}
	err = json.NewDecoder(resp.Body).Decode(&body)
	_ = resp.Body.Close()
	if err != nil || body.StatusCode != 0 {
		t.Fatalf("health want status_code 0, got %+v err=%v", body, err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("canceled serve should return nil, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}

	if cache.Enabled() {
		t.Fatalf("redis client should be closed on shutdown")
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	if err := sqlDB.Ping(); err == nil {
		t.Fatalf("database should be closed on shutdown")
	}
}

func TestServerServeErrorStillReleasesConnections(t *testing.T) {
	db := setupServerDB(t)
	srv := newTestServer(t, newTestConfig(t, nil), db)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	_ = ln.Close()

	if err := srv.Serve(context.Background(), ln); err == nil {
		t.Fatalf("serve on a closed listener should fail")
	}
	sqlDB, _ := db.DB()
	if err := sqlDB.Ping(); err == nil {
		t.Fatalf("database should be closed after serve failure")
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("repeated close should be a no-op, got %v", err)
	}
}

func TestServerStartsWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := newTestConfig(t, mr)
	mr.Close()

	srv := newTestServer(t, cfg, setupServerDB(t))
	if srv.Handler() == nil {
		t.Fatalf("handler should be built even when redis is unreachable")
	}
}

func TestNewServerRejectsMissingDependencies(t *testing.T) {
	if _, err := NewServer(nil, nil, Options{}); err == nil {
		t.Fatalf("nil config should fail")
	}
	if _, err := NewServer(&config.Config{}, nil, Options{}); err == nil {
		t.Fatalf("nil database should fail")
	}
}
