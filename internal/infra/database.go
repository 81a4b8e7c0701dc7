package infra

import (
	"fmt"

	"assettrack/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate for
// all tables, then applies the SQL patches AutoMigrate cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Company{},
		&model.Location{},
		&model.Department{},
		&model.AssetCategory{},
		&model.Vendor{},
		&model.User{},
		&model.Asset{},
		&model.AssetHistory{},
		&model.AssetTransfer{},
		&model.AssetDisposal{},
		&model.SequenceCounter{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot fully
// handle. Re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// The counter upsert relies on ON CONFLICT hitting this exact composite
		// key; AutoMigrate builds it from the composite primaryKey tags, but a
		// pre-existing table may predate the prefix column.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'sequence_counters')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'sequence_counters_pkey') THEN
		    ALTER TABLE sequence_counters ADD PRIMARY KEY (company_id, scope_date, prefix);
		  END IF;
		END $$`,
		// Partial index for the notification retry cron query.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'notifications')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notifications_pending_retry') THEN
		    CREATE INDEX idx_notifications_pending_retry
		        ON notifications (next_retry_at)
		        WHERE status = 'pending' AND next_retry_at IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch: %w", err)
		}
	}
	return nil
}
