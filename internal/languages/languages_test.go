package languages

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNames_Order(t *testing.T) {
	want := []string{"Arabic", "Spanish", "French", "Urdu", "Chinese (Simplified)", "German"}

	got := Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"French", true},
		{"Chinese (Simplified)", true},
		{"Urdu", true},
		{"french", false},
		{"Klingon", false},
		{"", false},
		{" French", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSupported(tt.name); got != tt.expected {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestLookup_Tag(t *testing.T) {
	l, ok := Lookup("Chinese (Simplified)")
	if !ok {
		t.Fatal("expected Chinese (Simplified) to be supported")
	}
	if l.Tag != language.SimplifiedChinese {
		t.Errorf("expected tag %s, got %s", language.SimplifiedChinese, l.Tag)
	}
	if l.Tag.String() != "zh-Hans" {
		t.Errorf("expected zh-Hans, got %s", l.Tag)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "Changed"

	if Names()[0] != "Arabic" {
		t.Error("mutating All() result must not affect the supported set")
	}
}

func TestList(t *testing.T) {
	want := "Arabic, Spanish, French, Urdu, Chinese (Simplified), German"
	if got := List(); got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}
