package license

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	blob := strings.Repeat("Permission is hereby granted, free of charge.\n", 10)

	tests := []struct {
		raw  string
		want Kind
	}{
		{"MIT", KindIdentifier},
		{"Apache-2.0", KindIdentifier},
		{"MIT OR Apache-2.0", KindExpression},
		{"GPL-2.0-only AND MIT", KindExpression},
		{"https://www.apache.org/licenses/LICENSE-2.0", KindURL},
		{"http://example.com/license", KindURL},
		{"BSD 3-Clause License", KindFreeText},
		{blob, KindTextBlob},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", docShort(tt.raw), got, tt.want)
		}
	}
}

func TestClassifyShortMultilineIsNotBlob(t *testing.T) {
	// Length must exceed the cutoff; a newline alone is not enough.
	raw := "line one\nline two"
	if got := Classify(raw); got == KindTextBlob {
		t.Errorf("Classify(%q) = text blob, want non-blob", raw)
	}
}

func TestClassifyLongSingleLineIsNotBlob(t *testing.T) {
	raw := strings.Repeat("x", 300)
	if got := Classify(raw); got == KindTextBlob {
		t.Error("single-line value classified as text blob")
	}
}

func docShort(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
