package database

import (
	"testing"

	"expensetracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestMySQLDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: "3306", Username: "root", Password: "secret", DBName: "expense_manager"}
	assert.Equal(t, "root:secret@tcp(db:3306)/expense_manager?charset=utf8mb4&parseTime=True&loc=Local", MySQLDSN(cfg))
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: "5432", Username: "pg", Password: "pw", DBName: "expenses", SSLMode: "require"}
	assert.Equal(t, "host=db port=5432 user=pg password=pw dbname=expenses sslmode=require", PostgresDSN(cfg))
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.DatabaseConfig{Driver: config.DriverMySQL})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(&config.DatabaseConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Info, LogLevel("INFO"))
	assert.Equal(t, logger.Warn, LogLevel(""))
}
