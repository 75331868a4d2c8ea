package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr bool
	}{
		{"console to stdout", options{InputFile: "bom.json", Format: "console"}, false},
		{"markdown with output", options{InputFile: "bom.json", Format: "markdown", OutputFile: "out.md"}, false},
		{"markdown without output", options{InputFile: "bom.json", Format: "markdown"}, true},
		{"pdf without output", options{InputFile: "bom.json", Format: "pdf"}, true},
		{"unknown format", options{InputFile: "bom.json", Format: "docx", OutputFile: "out"}, true},
		{"missing input", options{Format: "console"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAdditionalTexts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	if err := os.WriteFile(path, []byte(`{"mit": "the text", "Custom-1.0": "other text"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	texts, err := loadAdditionalTexts(path)
	if err != nil {
		t.Fatal(err)
	}
	if texts["MIT"] != "the text" {
		t.Errorf("keys must be upper-cased: %v", texts)
	}
	if texts["CUSTOM-1.0"] != "other text" {
		t.Errorf("missing entry: %v", texts)
	}
}

func TestLoadAdditionalTextsNotAnObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	if err := os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadAdditionalTexts(path)
	if err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}

func TestLoadAdditionalTextsMissingFile(t *testing.T) {
	if _, err := loadAdditionalTexts("/nonexistent/texts.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAdditionalTextsEmptyPath(t *testing.T) {
	texts, err := loadAdditionalTexts("")
	if err != nil {
		t.Fatal(err)
	}
	if texts != nil {
		t.Errorf("expected nil table, got %v", texts)
	}
}
