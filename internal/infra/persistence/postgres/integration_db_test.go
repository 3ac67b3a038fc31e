package postgres

import (
	"os"
	"testing"

	"faranah/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openIntegrationDB connects to the database named by the FARANAH_TEST_DB_*
// environment variables and migrates the storefront tables. Tests calling it
// are skipped when no database is configured, so the suite stays runnable
// without infrastructure.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	host := os.Getenv("FARANAH_TEST_DB_HOST")
	if host == "" {
		t.Skip("FARANAH_TEST_DB_HOST not set, skipping database-backed tests")
	}

	conn := &pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     envOr("FARANAH_TEST_DB_PORT", "5432"),
			UserName: envOr("FARANAH_TEST_DB_USER", "postgres"),
			Password: envOr("FARANAH_TEST_DB_PASSWORD", "postgres"),
		},
		Database: envOr("FARANAH_TEST_DB_NAME", "faranah_test"),
		SSLMode:  "disable",
	}

	db, err := pgLib.New(conn)
	require.NoError(t, err)

	// The models default their primary keys to uuid_generate_v7(), which the
	// real migrations provide. A throwaway test database gets a stand-in.
	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.Exec(
		`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT uuid_generate_v4()' LANGUAGE sql`,
	).Error)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AccessTokenModel{},
		&model.ShippingAddressModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.CartLineModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
	))

	return db
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
