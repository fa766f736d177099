package validate

import "testing"

func TestEmail(t *testing.T) {
	valids := []string{"a@b.co", "first.last@example.com", "user+tag@example.org"}
	for _, email := range valids {
		if err := Email(email); err != nil {
			t.Errorf("expected email[%s] to be valid but got error[%v]", email, err)
		}
	}
	invalids := []string{"", "not-an-email", "Name <a@b.co>", "a@b.co, c@d.co"}
	for _, email := range invalids {
		if err := Email(email); err == nil {
			t.Errorf("expected email[%s] to be invalid", email)
		}
	}
}

func TestSlug(t *testing.T) {
	valids := []string{"refugio", "refugio-patitas", "org-123"}
	for _, slug := range valids {
		if err := Slug(slug); err != nil {
			t.Errorf("expected slug[%s] to be valid but got error[%v]", slug, err)
		}
	}
	invalids := []string{"", "Refugio", "refugio patitas", "-refugio", "refugio-", "refugio--patitas"}
	for _, slug := range invalids {
		if err := Slug(slug); err == nil {
			t.Errorf("expected slug[%s] to be invalid", slug)
		}
	}
}

func TestUrl(t *testing.T) {
	valids := []string{"https://example.com/a.png", "http://cdn.example.com/img?x=1"}
	for _, raw := range valids {
		if err := Url(raw); err != nil {
			t.Errorf("expected url[%s] to be valid but got error[%v]", raw, err)
		}
	}
	invalids := []string{"", "ftp://example.com/a", "/relative/path", "https://"}
	for _, raw := range invalids {
		if err := Url(raw); err == nil {
			t.Errorf("expected url[%s] to be invalid", raw)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Refugio Patitas", "refugio-patitas"},
		{"  Hogar   Canino  ", "hogar-canino"},
		{"Asociación Ñandú", "asociacion-nandu"},
		{"Ya-Es-Slug", "ya-es-slug"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("expected slugify[%s] to be [%s] but got [%s]", tt.input, tt.expected, got)
		}
	}
}
