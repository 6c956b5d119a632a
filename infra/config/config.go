package config

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	MySql     MySqlConfig     `mapstructure:"mysql"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Email     EmailConfig     `mapstructure:"email"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	NodeId       string   `mapstructure:"node_id"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type MySqlConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JwtSecret     string        `mapstructure:"jwt_secret"`
	TokenExpiry   time.Duration `mapstructure:"token_expiry"`    // minutes
	ResetTokenTtl time.Duration `mapstructure:"reset_token_ttl"` // minutes
	FrontendUrl   string        `mapstructure:"frontend_url"`
}

type WebhookConfig struct {
	AcquisitionUrl string        `mapstructure:"acquisition_url"`
	SendUrl        string        `mapstructure:"send_url"`
	Secret         string        `mapstructure:"secret"`
	TokenTtl       time.Duration `mapstructure:"token_ttl"` // minutes
	Timeout        time.Duration `mapstructure:"timeout"`   // seconds; scrapes can run for minutes
}

type EmailConfig struct {
	ResendApiKey string `mapstructure:"resend_api_key"`
	From         string `mapstructure:"from"`
}

type SchedulerConfig struct {
	ReconcileLimit  int           `mapstructure:"reconcile_limit"`  // 启动时恢复的最大调度数
	DispatchTimeout time.Duration `mapstructure:"dispatch_timeout"` // seconds
}

var globalConfig *Config

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 转换时间单位
	cfg.Auth.TokenExpiry *= time.Minute
	cfg.Auth.ResetTokenTtl *= time.Minute
	cfg.Webhook.TokenTtl *= time.Minute
	cfg.Webhook.Timeout *= time.Second
	cfg.Scheduler.DispatchTimeout *= time.Second

	// 设置默认值
	if cfg.Auth.TokenExpiry <= 0 {
		cfg.Auth.TokenExpiry = 30 * time.Minute
	}
	if cfg.Auth.ResetTokenTtl <= 0 {
		cfg.Auth.ResetTokenTtl = 30 * time.Minute
	}
	if cfg.Webhook.TokenTtl <= 0 {
		cfg.Webhook.TokenTtl = 5 * time.Minute
	}
	if cfg.Webhook.Timeout <= 0 {
		cfg.Webhook.Timeout = 5 * time.Minute
	}
	if cfg.Scheduler.ReconcileLimit <= 0 {
		cfg.Scheduler.ReconcileLimit = 100
	}
	if cfg.Scheduler.DispatchTimeout <= 0 {
		cfg.Scheduler.DispatchTimeout = 5 * time.Minute
	}
	if cfg.Email.From == "" {
		cfg.Email.From = "onboarding@resend.dev"
	}

	// 自动生成 NodeID
	if cfg.Server.NodeId == "" {
		hostname, _ := os.Hostname()
		cfg.Server.NodeId = hostname + "-" + uuid.New().String()[:8]
	}

	globalConfig = &cfg
	return &cfg, nil
}

func Get() *Config {
	return globalConfig
}

// SetConfig sets the global config (used for testing)
func SetConfig(cfg *Config) {
	globalConfig = cfg
}
