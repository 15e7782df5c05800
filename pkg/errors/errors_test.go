package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidKind, "unknown element kind %q", "spinner"), `INVALID_KIND: unknown element kind "spinner"`},
		{"with cause", Wrap(ErrCodeInvalidDocument, fmt.Errorf("line 3: bad token"), "decode %s", "screen.toml"), "INVALID_DOCUMENT: decode screen.toml: line 3: bad token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "open screen.json")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), fs.ErrNotExist)
	}
}

func TestCodeLookup(t *testing.T) {
	assertion := New(ErrCodeScriptAssertion, "ok: box 0,0 100x100, got 12,12 100x100")

	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"direct", assertion, ErrCodeScriptAssertion, true, ErrCodeScriptAssertion},
		{"other code", assertion, ErrCodeInvalidScript, false, ErrCodeScriptAssertion},
		{"behind fmt wrapping", fmt.Errorf("drag.hmi:6: %w", assertion), ErrCodeScriptAssertion, true, ErrCodeScriptAssertion},
		{"outermost code wins", Wrap(ErrCodeInvalidDocument, New(ErrCodeInvalidName, "9 lives"), "element 2"), ErrCodeInvalidName, false, ErrCodeInvalidDocument},
		{"plain error", errors.New("disk full"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%v) = %v, want %v", tt.code, got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeElementNotFound, "no element named %q", "ghost"), `no element named "ghost"`},
		{"coded behind wrapping", fmt.Errorf("align: %w", New(ErrCodeInvalidAlign, "unknown alignment")), "unknown alignment"},
		{"plain", errors.New("disk full"), "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidAlign, http.StatusBadRequest},
		{ErrCodeInvalidKind, http.StatusBadRequest},
		{ErrCodeInvalidName, http.StatusBadRequest},
		{ErrCodeInvalidDocument, http.StatusBadRequest},
		{ErrCodeInvalidScript, http.StatusBadRequest},
		{ErrCodeInvalidPath, http.StatusBadRequest},
		{ErrCodeElementNotFound, http.StatusNotFound},
		{ErrCodeFileNotFound, http.StatusNotFound},
		{ErrCodeScriptAssertion, http.StatusUnprocessableEntity},
		{ErrCodeUnsupported, http.StatusNotImplemented},
		{ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatus(New(tt.code, "x")); got != tt.want {
				t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
			}
			wrapped := fmt.Errorf("handler: %w", New(tt.code, "x"))
			if got := HTTPStatus(wrapped); got != tt.want {
				t.Errorf("HTTPStatus(wrapped %s) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want %d", got, http.StatusInternalServerError)
	}
}
