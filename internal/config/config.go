package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 ANIMA_SERVER_PORT=3000
const EnvPrefix = "ANIMA"

// Config 全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string            `mapstructure:"level"`
	Format  string            `mapstructure:"format"`
	Output  string            `mapstructure:"output"`
	File    LogFileConfig     `mapstructure:"file"`
	Modules map[string]string `mapstructure:"modules"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	JWT       JWTConfig       `mapstructure:"jwt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
	Issuer      string `mapstructure:"issuer"`
}

// Expiry 令牌有效期
func (j JWTConfig) Expiry() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
	Burst    int           `mapstructure:"burst"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
	v    *viper.Viper
)

// Init 初始化全局配置
func Init(configPath string) error {
	var err error
	once.Do(func() {
		var c *Config
		v, c, err = load(configPath)
		if err != nil {
			return
		}
		cfg = c
	})
	return err
}

// Load 加载一份独立的配置（不影响全局实例）
func Load(configPath string) (*Config, error) {
	_, c, err := load(configPath)
	return c, err
}

func load(configPath string) (*viper.Viper, *Config, error) {
	// .env 文件可选，不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("读取.env失败: %w", err)
	}

	vp := viper.New()
	if configPath != "" {
		vp.SetConfigFile(configPath)
	} else {
		vp.SetConfigName("config")
		vp.SetConfigType("yaml")
		vp.AddConfigPath("./config")
		vp.AddConfigPath(".")
	}

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	setDefaults(vp)

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	c := &Config{}
	if err := vp.Unmarshal(c); err != nil {
		return nil, nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	return vp, c, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.trusted_proxies", []string{"127.0.0.1"})
	v.SetDefault("server.max_body_bytes", 10<<20)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/anima-counter.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.filename", "anima-counter.log")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_age", 30)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("security.jwt.secret", "your-secret-key-change-this-in-production")
	v.SetDefault("security.jwt.expire_hours", 24)
	v.SetDefault("security.jwt.issuer", "anima-counter")

	// 15分钟100次请求
	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.requests", 100)
	v.SetDefault("security.rate_limit.window", "15m")
	v.SetDefault("security.rate_limit.burst", 100)

	v.SetDefault("security.cors.allowed_origins", []string{"http://localhost"})
	v.SetDefault("security.cors.max_age", "12h")
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的端口: %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("无效的运行模式: %s", c.Server.Mode)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn 不能为空")
	}
	if c.Security.JWT.Secret == "" {
		return errors.New("security.jwt.secret 不能为空")
	}
	if c.Security.JWT.ExpireHours <= 0 {
		return fmt.Errorf("无效的令牌有效期: %d", c.Security.JWT.ExpireHours)
	}
	if c.Security.RateLimit.Enabled && (c.Security.RateLimit.Requests <= 0 || c.Security.RateLimit.Window <= 0) {
		return errors.New("限流配置无效")
	}
	return nil
}

// Get 获取配置实例
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// Watch 监听配置文件变化
func Watch(callback func(*Config)) {
	if v == nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		newCfg := &Config{}
		if err := v.Unmarshal(newCfg); err != nil {
			fmt.Printf("配置重载失败: %v\n", err)
			return
		}
		if err := newCfg.Validate(); err != nil {
			fmt.Printf("配置重载被拒绝: %v\n", err)
			return
		}

		mu.Lock()
		cfg = newCfg
		mu.Unlock()

		if callback != nil {
			callback(newCfg)
		}
	})
	v.WatchConfig()
}
