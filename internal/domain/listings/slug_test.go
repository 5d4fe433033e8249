package listings

import (
	"strconv"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Rendang Uni Emi":   "rendang-uni-emi",
		"  Soto -- Betawi ": "soto-betawi",
		"Es Teh 2000":       "es-teh-2000",
		"!!!":               "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugNeverParsesAsID(t *testing.T) {
	s, err := NewSlugger("test-salt")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"!!!", "", "Rendang", "2024"} {
		for i := 0; i < 50; i++ {
			slug, err := s.Slug(name)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := strconv.ParseInt(slug, 10, 64); err == nil {
				t.Fatalf("slug %q for %q parses as an id", slug, name)
			}
		}
	}

	slug, _ := s.Slug("¡¿!")
	if !strings.HasPrefix(slug, "listing-") {
		t.Fatalf("slug %q should fall back to the listing prefix", slug)
	}
}
