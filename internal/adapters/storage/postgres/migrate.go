package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"petclinic/internal/platform/logger"

	"github.com/pressly/goose/v3"
)

// migrations lleva versión en goose_db_version. seed se corre sin versionar:
// los inserts son idempotentes y se reaplican en cada arranque.
//
//go:embed migrations/*.sql seed/*.sql
var scripts embed.FS

const (
	migrationsDir = "migrations"
	seedDir       = "seed"
)

// goose guarda FS, dialecto y logger en variables globales.
var gooseMu sync.Mutex

// Migrate aplica las migraciones pendientes y, si seed, carga los datos de ejemplo.
func Migrate(ctx context.Context, db *sql.DB, seed bool, log logger.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if !seed {
		return nil
	}
	if err := goose.UpContext(ctx, db, seedDir, goose.WithNoVersioning()); err != nil {
		return fmt.Errorf("apply seed data: %w", err)
	}
	return nil
}

// gooseLogger manda la salida de goose al logger de la app.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), map[string]any{"component": "goose"})
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), map[string]any{"component": "goose"})
	_ = g.log.Sync()
	os.Exit(1)
}
