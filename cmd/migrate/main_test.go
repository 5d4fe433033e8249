package main

import (
	"strings"
	"testing"
)

func TestLoadMigrations(t *testing.T) {
	ms, err := loadMigrations()
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) == 0 || ms[0].version != "0001_init" {
		t.Fatalf("migrations = %+v", ms)
	}
	for i, m := range ms {
		if m.down == "" {
			t.Errorf("%s has no down file", m.version)
		}
		if i > 0 && ms[i-1].version >= m.version {
			t.Errorf("migrations out of order: %s before %s", ms[i-1].version, m.version)
		}
	}

	// constraint names the repositories map to conflicts
	for _, name := range []string{"accounts_email_key", "listings_slug_key", "ON DELETE CASCADE"} {
		if !strings.Contains(ms[0].up, name) {
			t.Errorf("initial schema is missing %s", name)
		}
	}
}
