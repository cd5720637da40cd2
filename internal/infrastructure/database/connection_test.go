package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/shared/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
		name    string
	}{
		{"mysql", false, "mysql"},
		{"", false, "mysql"},
		{"postgres", false, "postgres"},
		{"sqlite", false, "sqlite"},
		{"oracle", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver, Path: ":memory:"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

func TestOpen_SQLiteInMemory(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())
}

func TestGetDSN(t *testing.T) {
	pg := &config.DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, Username: "u", Password: "p", Database: "desk"}
	assert.Contains(t, pg.GetDSN(), "host=db port=5432 user=u password=p dbname=desk sslmode=require")

	my := &config.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "desk"}
	assert.Equal(t, "u:p@tcp(db:3306)/desk?charset=utf8mb4&parseTime=True&loc=UTC", my.GetDSN())
}
