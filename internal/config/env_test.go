package config

import "testing"

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "TRAVEL_PLANNER_DB_URL", "TRAVEL_PLANNER_AUTO_MIGRATE", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr=%q", env.AppAddr)
	}
	if env.DatabaseURL != "sqlite:///./travel_planner.db" {
		t.Fatalf("DatabaseURL=%q", env.DatabaseURL)
	}
	if !env.AutoMigrate {
		t.Fatalf("AutoMigrate should default to true")
	}
	if len(env.CORSOrigins) != 0 {
		t.Fatalf("CORSOrigins=%v", env.CORSOrigins)
	}
	if env.LogLevel != "info" {
		t.Fatalf("LogLevel=%q", env.LogLevel)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("TRAVEL_PLANNER_DB_URL", "postgres://u:p@db/travel")
	t.Setenv("TRAVEL_PLANNER_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://planner.example ,")

	env := LoadEnv()
	if env.DatabaseURL != "postgres://u:p@db/travel" {
		t.Fatalf("DatabaseURL=%q", env.DatabaseURL)
	}
	if env.AutoMigrate {
		t.Fatalf("AutoMigrate should be false")
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://planner.example" {
		t.Fatalf("CORSOrigins=%v", env.CORSOrigins)
	}
}
