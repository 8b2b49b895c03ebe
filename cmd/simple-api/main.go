package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/api"
	"github.com/wfunc/anima-counter/internal/config"
	"github.com/wfunc/anima-counter/internal/database"
	"github.com/wfunc/anima-counter/internal/logger"
	"go.uber.org/zap"
)

// 免配置文件的本地开发服务，默认使用内存数据库
func main() {
	var (
		port     = flag.Int("port", 8080, "API服务端口")
		dsn      = flag.String("db", "file:anima?mode=memory&cache=shared", "sqlite连接串")
		logLevel = flag.String("log", "debug", "日志级别(debug/info/warn/error)")
		secret   = flag.String("secret", "dev-secret", "令牌签名密钥")
	)
	flag.Parse()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: *port, Mode: gin.DebugMode, MaxBodyBytes: 1 << 20},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          *dsn,
			MaxOpenConns: 1,
			LogLevel:     "warn",
		},
		Log: config.LogConfig{Level: *logLevel, Format: "console", Output: "stdout"},
		Security: config.SecurityConfig{
			JWT:  config.JWTConfig{Secret: *secret, ExpireHours: 24, Issuer: "anima-counter"},
			CORS: config.CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: time.Hour},
		},
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("参数无效: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	defer logger.Sync()

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		log.Fatal("打开数据库失败", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	router := api.NewRouter(db, cfg, log.Named("api"))
	defer router.Close()

	fmt.Println("=== Anima Counter 开发服务 ===")
	fmt.Printf("地址: http://%s\n", cfg.Server.Addr())
	fmt.Printf("文档: http://%s/docs/redoc\n", cfg.Server.Addr())

	if err := router.GetEngine().Run(cfg.Server.Addr()); err != nil {
		log.Error("服务退出", zap.Error(err))
	}
}
