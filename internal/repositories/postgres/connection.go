package postgres

import (
	"fmt"
	"os"
	"propostasrest/internal/models/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Internal is a struct that contains the Postgres database connection
type Internal struct {
	db *gorm.DB
}

// NewPostgresInternal is a function that returns a new Internal struct
func NewPostgresInternal() (*Internal, error) {

	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	name := os.Getenv("DATABASE_NAME")

	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Sao_Paulo",
		host, user, password, name, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &Internal{db: db}, nil
}

// Migrate cria ou atualiza o esquema do banco
func (s *Internal) Migrate() error {
	return s.db.AutoMigrate(
		&entities.Municipio{},
		&entities.CategoriaProduto{},
		&entities.UnidadeMedida{},
		&entities.Fornecedor{},
		&entities.Produto{},
		&entities.Licitacao{},
		&entities.Proposta{},
		&entities.ItemProposta{},
		&entities.User{},
		&entities.AuditLog{},
	)
}

// Ping verifica a conexão com o banco
func (s *Internal) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close encerra a conexão com o banco
func (s *Internal) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
