// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/loftwire/loftwire-api/internal/platform/config"
)

func testConfig() *config.PostgreSQLConfig {
	return &config.PostgreSQLConfig{
		Host:            "localhost",
		Port:            5432,
		Username:        "postgres",
		Password:        "postgres",
		Database:        "loftwire_test",
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 300 * time.Second,
		ConnectTimeout:  10,
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, testConfig())
	if err != nil {
		t.Skipf("Skipping test: PostgreSQL not available: %v", err)
		return
	}
	defer client.Close()

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, testConfig())
	if err != nil {
		t.Skipf("Skipping test: PostgreSQL not available: %v", err)
		return
	}
	defer client.Close()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
}

func TestBuildConnectionString(t *testing.T) {
	got := buildConnectionString(testConfig())
	want := "host=localhost port=5432 dbname=loftwire_test user=postgres password=postgres sslmode=disable connect_timeout=10"
	if got != want {
		t.Fatalf("unexpected connection string:\n got: %s\nwant: %s", got, want)
	}
}

func TestTxFromEmptyContext(t *testing.T) {
	if _, ok := TxFrom(context.Background()); ok {
		t.Fatal("expected no transaction in empty context")
	}
}
