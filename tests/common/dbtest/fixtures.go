//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a pending 100.00 -> 90.00 reduction directly, bypassing the coordinator
func CreatePendingPriceChange(t *testing.T, db DBLike, subscriptionID, orderID string, scheduledDate time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO scheduled_price_changes (
		    id, referrer_subscription_id, referred_order_id, original_price, new_price,
		    reduction_amount, reduction_percentage, referred_contribution, scheduled_date, metadata
		) VALUES ($1, $2, $3, 100.00, 90.00, 10.00, 10.00, 50.00, $4, '{"referrer_customer_id":"cus_referrer"}')`,
		id, subscriptionID, orderID, scheduledDate)
	require.NoError(t, err)

	return id
}

func CountPriceChanges(t *testing.T, db DBLike, subscriptionID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM scheduled_price_changes WHERE referrer_subscription_id = $1 AND status = $2",
		subscriptionID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountHistory(t *testing.T, db DBLike, subscriptionID, executionStatus string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM price_change_history WHERE referrer_subscription_id = $1 AND execution_status = $2",
		subscriptionID, executionStatus).Scan(&n)
	require.NoError(t, err)
	return n
}

// moves the last transition of every row for the subscription back, so the retry backoff has elapsed
func BackdatePriceChanges(t *testing.T, db DBLike, subscriptionID string, by time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE scheduled_price_changes SET updated_at = updated_at - $2::interval WHERE referrer_subscription_id = $1",
		subscriptionID, fmt.Sprintf("%d seconds", int64(by.Seconds())))
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
