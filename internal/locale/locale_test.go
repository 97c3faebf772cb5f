package locale

import "testing"

func TestFromPOSIX(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"en_US.UTF-8", "en-US", true},
		{"de_DE.UTF-8@euro", "de-DE", true},
		{"fr", "fr", true},
		{" pt_BR ", "pt-BR", true},
		{"C", "", false},
		{"POSIX", "", false},
		{"C.UTF-8", "", false},
		{"", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := FromPOSIX(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromPOSIX(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEnvironmentPrecedence(t *testing.T) {
	env := map[string]string{
		"LANG":        "en_GB.UTF-8",
		"LC_MESSAGES": "de_DE.UTF-8",
	}
	provider := Environment{Lookup: func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}}
	if got := provider.DefaultLocale(); got != "de-DE" {
		t.Fatalf("expected LC_MESSAGES to win over LANG, got %q", got)
	}

	env["LC_ALL"] = "C"
	if got := provider.DefaultLocale(); got != "de-DE" {
		t.Fatalf("expected C locale to be skipped, got %q", got)
	}

	env["LC_ALL"] = "fr_FR"
	if got := provider.DefaultLocale(); got != "fr-FR" {
		t.Fatalf("expected LC_ALL to win, got %q", got)
	}
}

func TestEnvironmentFallback(t *testing.T) {
	provider := Environment{Lookup: func(string) (string, bool) { return "", false }}
	if got := provider.DefaultLocale(); got != Fallback {
		t.Fatalf("expected fallback %q, got %q", Fallback, got)
	}
}

func TestEnvironmentReadsProcessEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "nl_NL.UTF-8")
	if got := (Environment{}).DefaultLocale(); got != "nl-NL" {
		t.Fatalf("expected nl-NL from LANG, got %q", got)
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed("sv-SE").DefaultLocale(); got != "sv-SE" {
		t.Fatalf("unexpected fixed locale %q", got)
	}
}
