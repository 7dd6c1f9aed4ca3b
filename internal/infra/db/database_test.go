package db

import (
	"testing"

	"github.com/apptask/backend/config"
)

func TestNewConnectionSQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file:dbconn?mode=memory&cache=shared",
		MaxOpenConns: 10,
		MaxIdleConns: 1,
	}, "test")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected health check to pass")
	}

	sqlDB, err := database.DB().DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("expected sqlite to be limited to 1 open connection, got %d", got)
	}
}

func TestNewConnectionUnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}, "test")
	if err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
