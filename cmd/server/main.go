// @title Anima Counter API
// @version 1.0
// @description Anima 魔力（Zeon）资源计数服务
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/api"
	"github.com/wfunc/anima-counter/internal/config"
	"github.com/wfunc/anima-counter/internal/database"
	"github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 版本信息
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Server 服务器实例
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	db     *gorm.DB
	router *api.Router
	http   *http.Server

	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}
	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	printStartInfo(cfg)

	server := NewServer(cfg)
	if err := server.Start(); err != nil {
		logger.Fatal("服务器启动失败", zap.Error(err))
	}

	server.WaitForShutdown()

	if err := server.Shutdown(); err != nil {
		logger.Error("服务器关闭失败", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("服务器已安全关闭")
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger.GetLogger(),
		shutdownCh: make(chan struct{}),
	}
}

// Start 启动服务器
func (s *Server) Start() error {
	s.logger.Info("正在启动 Anima Counter 服务...",
		zap.String("version", Version),
		zap.String("mode", s.cfg.Server.Mode),
	)

	if err := s.initDatabase(); err != nil {
		return err
	}

	gin.SetMode(s.cfg.Server.Mode)
	s.router = api.NewRouter(s.db, s.cfg, s.logger.Named("api"))
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router.GetEngine(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.http.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP服务异常退出", zap.Error(err))
			s.requestShutdown()
		}
	}()

	config.Watch(func(newCfg *config.Config) {
		s.logger.Info("配置已更新，正在重新加载...")
		s.reloadConfig(newCfg)
	})

	s.logger.Info("服务器启动成功", zap.String("http", s.cfg.Server.Addr()))
	return nil
}

// initDatabase 初始化数据库
func (s *Server) initDatabase() error {
	s.logger.Info("初始化数据库...")

	db, err := database.Open(&s.cfg.Database, s.logger)
	if err != nil {
		return errors.Wrap(err, errors.ErrDatabaseConnect, "初始化数据库连接失败")
	}
	s.db = db

	if s.cfg.Database.AutoMigrate {
		s.logger.Info("执行数据库自动迁移...")
		if err := database.AutoMigrate(db); err != nil {
			return errors.Wrap(err, errors.ErrDatabaseConnect, "数据库迁移失败")
		}
	}

	s.logger.Info("数据库初始化完成")
	return nil
}

// WaitForShutdown 等待关闭信号
func (s *Server) WaitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		s.logger.Info("收到退出信号", zap.String("signal", sig.String()))
	case <-s.shutdownCh:
	}
}

func (s *Server) requestShutdown() {
	select {
	case <-s.shutdownCh:
	default:
		close(s.shutdownCh)
	}
}

// Shutdown 优雅关闭服务器
func (s *Server) Shutdown() error {
	s.logger.Info("正在优雅关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Warn("关闭超时，强制退出", zap.Error(err))
			shutdownErr = errors.New(errors.ErrTimeout, "关闭超时")
		}
	}
	s.wg.Wait()

	if s.router != nil {
		s.router.Close()
	}
	if err := database.Close(s.db); err != nil {
		s.logger.Error("关闭数据库失败", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		fmt.Printf("同步日志失败: %v\n", err)
	}
	return shutdownErr
}

// reloadConfig 重新加载配置，目前只有日志级别支持热更新
func (s *Server) reloadConfig(newCfg *config.Config) {
	logger.SetLevel(newCfg.Log.Level)
	s.logger.Info("配置重新加载完成", zap.String("log_level", newCfg.Log.Level))
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("Anima Counter 服务\n")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("Anima Counter 服务")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  anima-counter [选项]")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("环境变量:")
	fmt.Printf("  %s_SERVER_PORT         监听端口\n", config.EnvPrefix)
	fmt.Printf("  %s_DATABASE_DRIVER     数据库驱动 (sqlite/postgres/mysql)\n", config.EnvPrefix)
	fmt.Printf("  %s_DATABASE_DSN        数据库连接串\n", config.EnvPrefix)
	fmt.Printf("  %s_SECURITY_JWT_SECRET 令牌签名密钥\n", config.EnvPrefix)
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  anima-counter -config=/path/to/config.yaml")
	fmt.Println("  anima-counter -version")
}

// printStartInfo 打印启动信息
func printStartInfo(cfg *config.Config) {
	fmt.Println("========================================")
	fmt.Println("  Anima Counter - Zeon 资源计数服务")
	fmt.Println("========================================")
	fmt.Printf("版本:     %s\n", Version)
	fmt.Printf("运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("监听地址: %s\n", cfg.Server.Addr())
	fmt.Printf("数据库:   %s\n", cfg.Database.Driver)
	fmt.Println()
}
