package backend

import (
	"context"
	"fmt"

	"adspaces/internal/config"
	applog "adspaces/internal/log"
	gsheet "adspaces/internal/records/google"
	"adspaces/internal/records/memory"
	"adspaces/internal/storage"
)

// Factory creates record backends based on configuration.
type Factory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *applog.Logger) *Factory {
	return &Factory{logger: logger}
}

// Build opens the SQLite repository and constructs the record provider
// named by cfg.RecordBackend.
func (f *Factory) Build(ctx context.Context, cfg *config.Config) (*Result, error) {
	backendType := Type(cfg.RecordBackend)
	if !backendType.IsValid() {
		return nil, fmt.Errorf("invalid record backend: %q (valid: %v)", cfg.RecordBackend, Types())
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	result := &Result{Repo: repo}
	switch backendType {
	case SheetsBackend:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("initialize Google Sheets provider: %w", err)
		}
		result.Provider = cli
		f.logger.Info("Initialized Google Sheets record backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID)
	case MemoryBackend:
		result.Provider = memory.NewFromFiles(cfg.SeedDataDir)
		f.logger.Info("Initialized memory record backend", "seed_dir", cfg.SeedDataDir)
	default:
		result.Provider = repo
		f.logger.Info("Initialized SQLite record backend", "db_path", cfg.SQLiteDBPath)
	}

	return result, nil
}
