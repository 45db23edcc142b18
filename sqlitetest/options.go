package sqlitetest

import (
	"os"
	"path/filepath"
	"testing"

	"maragu.dev/pager/sql"
)

// HelperOption for [NewHelper].
type HelperOption func(*helperConfig)

// helperConfig used with [HelperOption].
type helperConfig struct {
	fixtures []string
}

// WithFixtures adds SQL fixtures to be run after migrations.
// They are applied in the order given.
// Fixture names should not include the .sql extension.
// Fixtures are loaded from the sql/testdata/fixtures/ directory from the project root.
func WithFixtures(fixtures ...string) HelperOption {
	return func(c *helperConfig) {
		c.fixtures = append(c.fixtures, fixtures...)
	}
}

func loadFixtures(t *testing.T, h *sql.Helper, fixtures []string) {
	t.Helper()

	if len(fixtures) == 0 {
		return
	}

	// Try different relative paths for fixtures, depending on which package the test is in
	possiblePaths := []string{
		filepath.Join("testdata", "fixtures"),
		filepath.Join("..", "sql", "testdata", "fixtures"),
		filepath.Join("sql", "testdata", "fixtures"),
	}

	var fixturesDir string
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			fixturesDir = path
			break
		}
	}

	if fixturesDir == "" {
		t.Fatalf("error finding fixtures directory in any of: %v", possiblePaths)
	}

	for _, fixture := range fixtures {
		fixturePath := filepath.Join(fixturesDir, fixture+".sql")

		content, err := os.ReadFile(fixturePath)
		if err != nil {
			t.Fatalf("error reading fixture %s: %v", fixturePath, err)
		}

		if err := h.Exec(t.Context(), string(content)); err != nil {
			t.Fatalf("error executing fixture %s: %v", fixturePath, err)
		}
	}
}
