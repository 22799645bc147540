//go:build unit

package repository_test

import "vidly/internal/infra/pgsql"

// mockDBTX only has to be comparable; the query mocks never touch it.
type mockDBTX struct {
	pgsql.DBTX
}
