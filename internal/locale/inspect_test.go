package locale

import (
	"slices"
	"testing"
)

func TestInspect(t *testing.T) {
	for _, tag := range []string{"en", "en-US", "de-AT", "zh-Hant-TW", "en-EN"} {
		if err := Inspect(tag); err != nil {
			t.Errorf("Inspect(%q) returned error: %v", tag, err)
		}
	}
	for _, tag := range []string{"", "   ", "not a tag!!", "e"} {
		if err := Inspect(tag); err == nil {
			t.Errorf("Inspect(%q) expected error", tag)
		}
	}
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"unique", []string{"en-US", "de-DE"}, nil},
		{"exact repeat", []string{"en-US", "de-DE", "en-US"}, []string{"en-US"}},
		{"case insensitive", []string{"en-US", "EN-us"}, []string{"EN-us"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duplicates(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("Duplicates(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("de"); got != "German" {
		t.Errorf("DisplayName(de) = %q, want German", got)
	}
	for _, tag := range []string{"!!", "not a tag!!", "xx-??", ""} {
		if got := DisplayName(tag); got != tag {
			t.Errorf("DisplayName(%q) = %q, want the tag unchanged", tag, got)
		}
	}
}

func TestDisplayNameUnknownRegionUsesLanguage(t *testing.T) {
	if got := DisplayName("en-EN"); got != "English" {
		t.Errorf("DisplayName(en-EN) = %q, want English", got)
	}
}
