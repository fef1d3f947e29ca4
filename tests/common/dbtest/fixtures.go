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

func CreateDeviceToken(t *testing.T, db DBLike, userID uuid.UUID, token string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO device_tokens (user_id, token, platform) VALUES ($1, $2, 'ios') ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id",
		userID, token)
	require.NoError(t, err)
}

// CountReminderJobs counts a schedule's jobs in the given status; an empty status counts all of them.
func CountReminderJobs(t *testing.T, db DBLike, scheduleID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reminder_jobs WHERE schedule_id = $1 AND ($2 = '' OR status = $2)",
		scheduleID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func ScheduleExists(t *testing.T, db DBLike, scheduleID uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM scheduled_recipes WHERE id = $1)", scheduleID).Scan(&exists)
	require.NoError(t, err)
	return exists
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
