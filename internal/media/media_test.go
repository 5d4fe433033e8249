package media

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/listings/soto.jpg", "listings/soto", false},
		{"https://res.cloudinary.com/demo/image/upload/listings/a/b.png", "listings/a/b", false},
		{"https://res.cloudinary.com/demo/image/upload/v99/plain", "plain", false},
		{"https://images.example.com/upload/soto.jpg", "", true},
		{"https://res.cloudinary.com/demo/image/upload/", "", true},
		{"://bad", "", true},
	}

	for _, tt := range tests {
		got, err := PublicIDFromURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("PublicIDFromURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("PublicIDFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
