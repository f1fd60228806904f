package config

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config armazena todas as configurações do aplicativo GoLoja.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL   string
	DBTimeout     time.Duration
	MigrationsDir string

	// Cache (Redis)
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (Tokens)
	JWTSecretKey string
	TokenStore   string // "memory" ou "redis"
}

// Valores aceitos para TOKEN_STORE.
const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

// LoadConfig carrega as configurações a partir das variáveis de ambiente do processo.
// O .env (se existir) já deve ter sido carregado pelo main via godotenv.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Sem prefixo: as chaves ficam exatamente como no ambiente (ex: DATABASE_URL).
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("falha ao ler variáveis de ambiente: %w", err)
	}

	return load(k)
}

func load(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv(k, "PORT", "8080"),
		Environment: getEnv(k, "ENV", "development"),
		LogLevel:    getEnv(k, "LOG_LEVEL", "info"),

		// 2. Banco de Dados (PostgreSQL)
		DatabaseURL:   k.String("DATABASE_URL"),
		DBTimeout:     getDurationEnv(k, "DB_TIMEOUT_SEC", 5) * time.Second,
		MigrationsDir: getEnv(k, "MIGRATIONS_DIR", "./sql"),

		// 3. Cache (Redis)
		RedisAddr: getEnv(k, "REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDurationEnv(k, "CACHE_TTL_MIN", 5) * time.Minute,

		// 4. Segurança
		JWTSecretKey: k.String("JWT_SECRET_KEY"),
		TokenStore:   getEnv(k, "TOKEN_STORE", TokenStoreMemory),
	}

	// Variáveis obrigatórias: a aplicação não sobe sem elas.
	for key, value := range map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"JWT_SECRET_KEY": cfg.JWTSecretKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("a variável de ambiente %s deve ser definida", key)
		}
	}

	if cfg.TokenStore != TokenStoreMemory && cfg.TokenStore != TokenStoreRedis {
		return nil, fmt.Errorf("TOKEN_STORE inválido: %q (use %q ou %q)", cfg.TokenStore, TokenStoreMemory, TokenStoreRedis)
	}

	return cfg, nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a chave ou retorna um valor padrão.
func getEnv(k *koanf.Koanf, key string, defaultValue string) string {
	if k.Exists(key) {
		return k.String(key)
	}
	return defaultValue
}

// getDurationEnv lê uma chave numérica e retorna-a como time.Duration (sem unidade).
func getDurationEnv(k *koanf.Koanf, key string, defaultValue int) time.Duration {
	valueStr := getEnv(k, key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}
