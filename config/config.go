package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do storefront.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Serviço remoto de contas (fonte da verdade de papéis e estágio de cadastro)
	AccountAPIURL string
	RemoteTimeout time.Duration // Timeout de cada chamada de saída

	// Sessão
	SessionSecret     string
	SessionStore      string // "cookie" ou "redis"
	SessionCookieName string
	SessionTTL        time.Duration

	// Cache (Redis)
	RedisAddr string

	// Banco de Dados (PostgreSQL) - auditoria das decisões do gate; vazio desativa
	DatabaseURL string
	DBTimeout   time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// IsProduction indica se o ambiente é de produção (cookies Secure).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (quando existir) já foi carregado pelo godotenv no main.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		// 1. Geral
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		// 2. Serviço de contas
		AccountAPIURL: v.GetString("ACCOUNT_API_URL"),
		RemoteTimeout: time.Duration(v.GetInt("REMOTE_TIMEOUT_SEC")) * time.Second,

		// 3. Sessão
		SessionSecret:     v.GetString("SESSION_SECRET"),
		SessionStore:      v.GetString("SESSION_STORE"),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		SessionTTL:        time.Duration(v.GetInt("SESSION_TTL_HOURS")) * time.Hour,

		// 4. Cache (Redis)
		RedisAddr: v.GetString("REDIS_ADDR"),

		// 5. Auditoria (PostgreSQL)
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		// 6. Rate Limiting
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REMOTE_TIMEOUT_SEC", 3)
	v.SetDefault("SESSION_STORE", "cookie")
	v.SetDefault("SESSION_COOKIE_NAME", "__session")
	v.SetDefault("SESSION_TTL_HOURS", 24*7) // 7 dias
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
}

// Validate garante que a aplicação não inicie sem as variáveis obrigatórias.
func (c *Config) Validate() error {
	if c.AccountAPIURL == "" {
		return fmt.Errorf("a variável de ambiente ACCOUNT_API_URL deve ser definida")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("a variável de ambiente SESSION_SECRET deve ser definida")
	}
	if c.SessionStore != "cookie" && c.SessionStore != "redis" {
		return fmt.Errorf("SESSION_STORE inválido: %q (use cookie ou redis)", c.SessionStore)
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT_SEC deve ser maior que zero")
	}
	return nil
}

// LoadDatabaseURL lê apenas a DATABASE_URL, usada pelo cmd/migrate, que não precisa
// das variáveis do serviço de contas nem da sessão.
func LoadDatabaseURL() (string, error) {
	v := viper.New()
	v.AutomaticEnv()

	url := v.GetString("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida")
	}
	return url, nil
}
