package config

import (
	"errors"
	"os"

	"propostasrest/internal/repositories/postgres"
	"propostasrest/internal/repositories/redis"
	"propostasrest/pkg/logger"

	"github.com/google/uuid"
)

// App agrupa as conexões e o logger compartilhados pelos handlers
type App struct {
	Redis  *redis.RedisInternal
	DB     *postgres.Internal
	Logger *logger.Logger
}

// NewConfig monta as dependências da aplicação
func NewConfig() (*App, error) {

	cfg := new(App)

	executionID := uuid.New().String()[0:5]

	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	cfg.Logger = logger.NewLogger(logger.Config{
		Service:     "propostas-api",
		Version:     "1.0.0",
		Environment: environment,
		LogLevel:    os.Getenv("LOG_LEVEL"),
		ExecutionID: executionID,
	})

	if err := cfg.newClientRedis(); err != nil {
		return cfg, err
	}

	db, err := postgres.NewPostgresInternal()
	if err != nil {
		return cfg, errors.New("creating postgres client: " + err.Error())
	}

	if err := db.Migrate(); err != nil {
		return cfg, errors.New("migrating database: " + err.Error())
	}

	cfg.DB = db

	return cfg, nil
}

// CloseAll encerra todas as conexões abertas
func (cfg *App) CloseAll() {
	if cfg.Redis != nil {
		_ = cfg.Redis.Redis.Close()
	}

	if cfg.DB != nil {
		_ = cfg.DB.Close()
	}

	if cfg.Logger != nil {
		_ = cfg.Logger.Close()
	}
}

// newClientRedis cria o cliente Redis usado pelo rate limiting
func (cfg *App) newClientRedis() error {

	r, err := redis.NewRedisInternal()
	if err != nil {
		return errors.New("creating redis client: " + err.Error())
	}

	cfg.Redis = r

	return nil
}
