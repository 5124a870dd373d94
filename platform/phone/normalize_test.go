package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "national number", input: "(212) 555-0175", want: "+12125550175"},
		{name: "already e164", input: "+12125550175", want: "+12125550175"},
		{name: "whitespace trimmed", input: "  +12125550175  ", want: "+12125550175"},
		{name: "garbage passes through", input: "not-a-number", want: "not-a-number"},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
