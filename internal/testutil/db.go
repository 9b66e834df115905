// Package testutil monta um banco SQLite descartável com o mesmo schema
// de produção para testes de repositories, services e handlers.
package testutil

import (
	"context"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/domain/valueobjects"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB que também é atendido por GinkgoT()
type TB interface {
	Helper()
	TempDir() string
	Cleanup(func())
	Fatalf(format string, args ...any)
}

// NewSQLiteDB cria um banco migrado em um diretório temporário.
// Uma única conexão serializa as escritas, como um lock de linha faria.
func NewSQLiteDB(t TB) *gorm.DB {
	t.Helper()
	return openSQLite(t, "?_busy_timeout=5000&_foreign_keys=on", 1)
}

// NewConcurrentSQLiteDB abre o banco com várias conexões, para que goroutines
// disputem de fato a mesma linha. _txlock=immediate faz cada transação pegar
// o lock de escrita no BEGIN e esperar pelo busy_timeout em vez de falhar.
func NewConcurrentSQLiteDB(t TB, conns int) *gorm.DB {
	t.Helper()
	return openSQLite(t, "?_busy_timeout=10000&_foreign_keys=on&_txlock=immediate", conns)
}

func openSQLite(t TB, params string, conns int) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + params
	db, err := gorm.Open(sqlite.Open(dsn), postgres.NewGormConfig("error"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// CreateUser grava um usuário sem senha com o papel informado
func CreateUser(t TB, db *gorm.DB, email string, role entities.Role) *entities.User {
	t.Helper()

	addr, err := valueobjects.NewEmail(email)
	if err != nil {
		t.Fatalf("invalid email %q: %v", email, err)
	}

	name := addr.String()
	user := &entities.User{Email: addr, Name: &name, Role: role}
	if err := postgres.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateFeature grava um feature request pendente do usuário
func CreateFeature(t TB, db *gorm.DB, owner *entities.User, title string) *entities.FeatureRequest {
	t.Helper()

	feature := entities.NewFeatureRequest(owner.ID, title, title+" description")
	if err := postgres.NewFeatureRequestRepository(db).Create(context.Background(), feature); err != nil {
		t.Fatalf("failed to create feature: %v", err)
	}
	return feature
}

// CountRows conta linhas de uma tabela com um filtro opcional
func CountRows(t TB, db *gorm.DB, table string, query string, args ...any) int64 {
	t.Helper()

	var count int64
	tx := db.Table(table)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
