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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DBLike is the slice of the pool the fixtures need; both *pgxpool.Pool and
// pgx.Tx satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Hashed once per test process at the cheapest cost; login only needs the
// hash to verify, not to be strong.
var testPasswordHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestHostProfile writes a complete payout profile so the host passes
// the eligibility gate.
func CreateTestHostProfile(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO host_profiles (user_id, full_name, bio, phone, iban, bank_name, account_holder)
		VALUES ($1, 'Test Host', 'Local guide', '+49 170 0000000', 'DE89370400440532013000', 'Testbank', 'Test Host')
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			bio = EXCLUDED.bio,
			phone = EXCLUDED.phone,
			iban = EXCLUDED.iban,
			bank_name = EXCLUDED.bank_name,
			account_holder = EXCLUDED.account_holder`,
		userID)
	require.NoError(t, err)
}

func CreateTestExperience(t *testing.T, db DBLike, hostID uuid.UUID, title string, priceCents int64) uuid.UUID {
	t.Helper()

	experienceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO experiences (id, host_id, title, price_cents, currency) VALUES ($1, $2, $3, $4, 'EUR')",
		experienceID, hostID, title, priceCents)
	require.NoError(t, err)

	return experienceID
}

func SetSetting(t *testing.T, db DBLike, key string, value float64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE settings SET value = $2, updated_at = now() WHERE key = $1", key, value)
	require.NoError(t, err)
}

// SeedReferenceData restores the commerce settings catalogue. Rows are seeded
// here and by migration; runtime code only ever updates them.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO settings (key, value) VALUES
		    ('commission_rate', 0.15),
		    ('service_fee', 250)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
