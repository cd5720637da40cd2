package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the client IP is always the peer address.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in release mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Mode == "release" || s.Mode == "production"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver specific connection string.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "require"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type SessionConfig struct {
	Secret  string `mapstructure:"secret"`
	TTLDays int    `mapstructure:"ttl_days"`
}

// TTL returns the session lifetime, falling back to 30 days.
func (s *SessionConfig) TTL() time.Duration {
	if s.TTLDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(s.TTLDays) * 24 * time.Hour
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   *bool  `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AdminConfig struct {
	Secret string `mapstructure:"secret"`
}

type AuthConfig struct {
	Session    SessionConfig `mapstructure:"session"`
	Cookie     CookieConfig  `mapstructure:"cookie"`
	Admin      AdminConfig   `mapstructure:"admin"`
	PolicyPath string        `mapstructure:"policy_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	ToAddress    string `mapstructure:"to_address"`
}

// Enabled reports whether ticket emails can be sent.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.ToAddress != ""
}

type TelegramConfig struct {
	BotToken   string `mapstructure:"bot_token"`
	ChatID     string `mapstructure:"chat_id"`
	APIBaseURL string `mapstructure:"api_base_url"`
}

// Enabled reports whether both bot credentials are present.
func (t *TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type NotificationConfig struct {
	QueueSize      int `mapstructure:"queue_size"`
	Workers        int `mapstructure:"workers"`
	MaxAttempts    int `mapstructure:"max_attempts"`
	RetryBackoffMs int `mapstructure:"retry_backoff_ms"`
	DrainTimeoutMs int `mapstructure:"drain_timeout_ms"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute"`
}
