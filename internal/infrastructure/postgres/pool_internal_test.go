package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymojammn/taxmoja-app/pkg/config"
)

func TestPoolConfig_DatabaseURLWins(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{
		DatabaseURL: "postgres://efris:pw@db.internal:6543/connector?sslmode=disable",
		Host:        "ignored",
		Port:        5432,
	})
	require.NoError(t, err)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, "connector", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_Limits(t *testing.T) {
	base := config.DBConfig{Host: "localhost", Port: 5432, User: "u", Password: "p@ss", DBName: "efris", SSLMode: "disable"}

	pc, err := poolConfig(base)
	require.NoError(t, err)
	assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
	assert.Equal(t, int32(minIdleConns), pc.MinConns)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)

	base.MaxConns = 1
	pc, err = poolConfig(base)
	require.NoError(t, err)
	assert.Equal(t, int32(1), pc.MaxConns)
	assert.Equal(t, int32(1), pc.MinConns)
}

func TestPoolConfig_InvalidURL(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	require.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	require.NotNil(t, nullIfEmpty("x"))
	assert.Equal(t, "x", *nullIfEmpty("x"))
}
