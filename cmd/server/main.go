package main

import (
	"fmt"
	"syscall"

	"github.com/eshop-next/internal/app"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	printStartupBanner(cfg)

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Mode, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 服务退出时由 app 关闭数据库与 Redis
	if err := app.Run(cfg, models.DB, app.Options{Logger: logger.S()}, syscall.SIGINT, syscall.SIGTERM); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner(cfg *config.Config) {
	name := cfg.App.Name
	if name == "" {
		name = "eshop-next"
	}
	fmt.Println(ansiCyan + ansiBold + "==============================================" + ansiReset)
	fmt.Printf(ansiCyan+ansiBold+"  %s %s 启动中"+ansiReset+"\n", name, cfg.App.Version)
	fmt.Println(ansiCyan + ansiBold + "==============================================" + ansiReset)
	fmt.Printf(ansiDim+"  listen=%s  db=%s  redis=%v"+ansiReset+"\n", cfg.Server.Addr(), cfg.Database.Driver, cfg.Redis.Enabled)
}
