package errors

import (
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "button1", false},
		{"valid underscore start", "_hidden", false},
		{"valid suffix", "ok_button_2", false},
		{"valid unicode letter", "größe", false},

		{"empty", "", true},
		{"digit start", "1button", true},
		{"space", "ok button", true},
		{"dash", "ok-button", true},
		{"dot", "ok.button", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateDocumentPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"valid json", "layout.json", ""},
		{"valid nested toml", "screens/main.toml", ""},
		{"valid absolute yaml", "/tmp/panel.yaml", ""},
		{"valid yml upper", "PANEL.YML", ""},
		{"dotdot in name is fine", "a..b.json", ""},
		{"parent directory", "../layout.json", ""},
		{"nested parent", "screens/../panel.toml", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"too long", string(make([]byte, 600)), ErrCodeInvalidPath},
		{"null byte", "foo\x00.json", ErrCodeInvalidPath},
		{"unknown extension", "layout.xaml", ErrCodeUnsupported},
		{"no extension", "layout", ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateDocumentPath(%q) code = %q, want %q (err %v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}
