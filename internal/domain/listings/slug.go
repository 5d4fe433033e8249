package listings

import (
	"crypto/rand"
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/speps/go-hashids/v2"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugger builds URL slugs as "<slugified-name>-<short random suffix>". The
// suffix makes the slug unique without requiring unique listing names. Names
// with no letters or digits use "listing" as the base.
type Slugger struct {
	h *hashids.HashID
}

func NewSlugger(salt string) (*Slugger, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 5
	hd.Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Slugger{h: h}, nil
}

func (s *Slugger) Slug(name string) (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}

	n := int64(binary.BigEndian.Uint32(buf[:]) & 0x7fffffff)
	suffix, err := s.h.EncodeInt64([]int64{n})
	if err != nil {
		return "", err
	}

	// the prefix keeps a slug from ever parsing as a numeric id
	base := Slugify(name)
	if base == "" {
		base = "listing"
	}
	return base + "-" + suffix, nil
}

// Slugify lower-cases name and joins alphanumeric runs with "-".
func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = strings.TrimRight(s[:80], "-")
	}
	return s
}
