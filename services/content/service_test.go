package content

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Vinyasa Flow", "vinyasa-flow"},
		{"swedish letters", "Mjuk Yoga på Måndagar", "mjuk-yoga-pa-mandagar"},
		{"o umlaut", "Öppen Klass", "oppen-klass"},
		{"punctuation collapses", "Yin & Restorative!", "yin-restorative"},
		{"surrounding whitespace", "  Hatha  ", "hatha"},
		{"digits kept", "Nybörjare 101", "nyborjare-101"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
