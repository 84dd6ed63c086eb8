package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Pricing      PricingConfig      `toml:"pricing"`
	Slots        []SlotConfig       `toml:"slots"`
	Notification NotificationConfig `toml:"notification"`
	Payment      PaymentConfig      `toml:"payment"`
	Membership   MembershipConfig   `toml:"membership"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PricingConfig struct {
	DepositPercent        int64 `toml:"deposit_percent"`
	MemberDiscountPercent int64 `toml:"member_discount_percent"`
}

// SlotConfig слот записи; если в файле нет ни одного слота, используется сетка по умолчанию
type SlotConfig struct {
	ID        string `toml:"id"`
	Label     string `toml:"label"`
	Window    string `toml:"window"`
	Surcharge int64  `toml:"surcharge"`
}

type NotificationConfig struct {
	Enabled     bool   `toml:"enabled"`
	SMTPHost    string `toml:"smtp_host"`
	SMTPPort    int    `toml:"smtp_port"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	From        string `toml:"from"`
	StudioEmail string `toml:"studio_email"`
	Timeout     int    `toml:"timeout"` // секунды на отправку одного бронирования
}

type PaymentConfig struct {
	// StudioCheckoutURL общая ссылка на оплату предоплаты
	StudioCheckoutURL string `toml:"studio_checkout_url"`
	// ServiceLinks ссылки на оплату по названию услуги
	ServiceLinks map[string]string `toml:"service_links"`
}

type MembershipConfig struct {
	// TierLinks ссылки на оплату подписки по коду уровня (SILVER, GOLD, PLATINUM)
	TierLinks map[string]string `toml:"tier_links"`
}

// Load читает .env (если есть), TOML-файл и переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "detailing_studio"
	}
	if c.Pricing.DepositPercent == 0 {
		c.Pricing.DepositPercent = domain.DefaultDepositPercent
	}
	if c.Pricing.MemberDiscountPercent == 0 {
		c.Pricing.MemberDiscountPercent = domain.DefaultMemberDiscountPercent
	}
	if c.Notification.SMTPPort == 0 {
		c.Notification.SMTPPort = 587
	}
	if c.Notification.Timeout == 0 {
		c.Notification.Timeout = 30
	}
}

// applyEnv секреты и адреса можно переопределить переменными окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT: %v", ErrInvalidConfig, err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Notification.Password = v
	}
	return nil
}

// Validate проверяет значения, которые нельзя заменить умолчаниями
func (c *Config) Validate() error {
	if c.Pricing.DepositPercent < 0 || c.Pricing.DepositPercent > 100 {
		return fmt.Errorf("%w: deposit_percent must be within 0..100", ErrInvalidConfig)
	}
	if c.Pricing.MemberDiscountPercent < 0 || c.Pricing.MemberDiscountPercent > 100 {
		return fmt.Errorf("%w: member_discount_percent must be within 0..100", ErrInvalidConfig)
	}
	for _, s := range c.Slots {
		if s.ID == "" {
			return fmt.Errorf("%w: slot id is required", ErrInvalidConfig)
		}
		if s.Surcharge < 0 {
			return fmt.Errorf("%w: slot %s has negative surcharge", ErrInvalidConfig, s.ID)
		}
	}
	if c.Notification.Enabled {
		if c.Notification.SMTPHost == "" || c.Notification.From == "" || c.Notification.StudioEmail == "" {
			return fmt.Errorf("%w: notification requires smtp_host, from and studio_email", ErrInvalidConfig)
		}
	}
	return nil
}

// TimeSlots слоты из конфигурации в доменном виде; nil, если слоты не заданы
func (c *Config) TimeSlots() []domain.TimeSlot {
	if len(c.Slots) == 0 {
		return nil
	}
	slots := make([]domain.TimeSlot, len(c.Slots))
	for i, s := range c.Slots {
		label := s.Label
		if label == "" {
			label = s.ID
		}
		slots[i] = domain.TimeSlot{
			ID:        s.ID,
			Label:     label,
			Window:    s.Window,
			Surcharge: s.Surcharge,
		}
	}
	return slots
}
