package cli

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestOpenAPICommandYAML(t *testing.T) {
	out := run(t, "openapi", "--format", "yaml")
	if !strings.Contains(out, "/destinations/search") || !strings.Contains(out, "openapi:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMigratePrint(t *testing.T) {
	out := run(t, "migrate", "--print", "--db-url", "postgresql+psycopg2://u:p@localhost/travel")
	if !strings.Contains(out, "BIGSERIAL") {
		t.Fatalf("expected postgres ddl, got:\n%s", out)
	}
}

func TestMigrateInMemory(t *testing.T) {
	run(t, "migrate", "--print=false", "--db-url", "sqlite://")
}
