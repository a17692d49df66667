package migrate

import (
	"os"
	"strings"
	"testing"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestInitSchemaDefinesAllTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	var combined strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile("migrations/" + e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		combined.Write(b)
	}

	sql := combined.String()
	for _, table := range []string{"users", "employees", "categories", "reports"} {
		if !strings.Contains(sql, "CREATE TABLE "+table) {
			t.Fatalf("expected migration to create table %q", table)
		}
	}
	for _, status := range []string{"'Pending'", "'In Progress'", "'Resolved'"} {
		if !strings.Contains(sql, status) {
			t.Fatalf("expected status CHECK to include %s", status)
		}
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Report Index!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_report_index.sql") {
		t.Fatalf("unexpected filename %q", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}
}
