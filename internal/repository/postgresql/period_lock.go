package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/portal-backend-go/internal/domain/period"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
)

type periodLockChecker struct {
	db *database.DB
}

func NewPeriodLockChecker(db *database.DB) period.Checker {
	return &periodLockChecker{db: db}
}

// IsLocked implements period.Checker. A company's accounting locks carry
// their own user-facing message, which is surfaced verbatim.
func (c *periodLockChecker) IsLocked(ctx context.Context, companyID string, from, to time.Time) (bool, string, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT message
		FROM accounting_period_locks
		WHERE company_id = $1
		  AND locked_from <= $3
		  AND locked_to >= $2
		LIMIT 1
	`

	var message string
	err := q.QueryRow(ctx, query, companyID, from, to).Scan(&message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check period lock: %w", err)
	}
	return true, message, nil
}
