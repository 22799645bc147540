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

	"vidly/internal/infra/pgsql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestUserPassword = "password123"

var testUserPasswordHash = sync.OnceValues(func() ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.MinCost)
})

func CreateTestUser(t *testing.T, db DBLike, email string, isAdmin bool) uuid.UUID {
	t.Helper()

	hash, err := testUserPasswordHash()
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash, is_admin) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (lower(email)) DO NOTHING",
		userID, "Test User", email, string(hash), isAdmin)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func InsertGenre(t *testing.T, db DBLike, row pgsql.Genre) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO genres (id, name) VALUES ($1, $2)", row.ID, row.Name)
	require.NoError(t, err)
}

func InsertMovie(t *testing.T, db DBLike, row pgsql.Movie) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO movies (id, title, genre_id, genre, number_in_stock, daily_rental_rate_cents) VALUES ($1, $2, $3, $4, $5, $6)",
		row.ID, row.Title, row.GenreID, row.Genre, row.NumberInStock, row.DailyRentalRateCents)
	require.NoError(t, err)
}

func InsertCustomer(t *testing.T, db DBLike, row pgsql.Customer) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, name, phone, is_gold) VALUES ($1, $2, $3, $4)",
		row.ID, row.Name, row.Phone, row.IsGold)
	require.NoError(t, err)
}

func InsertRental(t *testing.T, db DBLike, row pgsql.Rental) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rentals (id, customer_id, movie_id, customer, movie, date_out, date_returned, rental_fee_cents) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		row.ID, row.CustomerID, row.MovieID, row.Customer, row.Movie, row.DateOut, row.DateReturned, row.RentalFeeCents)
	require.NoError(t, err)
}

func MovieStock(t *testing.T, db DBLike, id uuid.UUID) int {
	t.Helper()
	var stock int
	err := db.QueryRow(context.Background(), "SELECT number_in_stock FROM movies WHERE id = $1", id).Scan(&stock)
	require.NoError(t, err)
	return stock
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
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
