package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. These must match the constraints in the migration
// .sql files so ent-provisioned test schemas behave like migrated ones.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one active execution per card
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS execution_card_id_single_active
		ON executions (card_id)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create single-active-execution index: %w", err)
	}

	// At most one active goal at any instant
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS goal_single_active
		ON goals (status)
		WHERE status = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create single-active-goal index: %w", err)
	}

	return nil
}
