package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple key", key: "hello", wantErr: false},
		{name: "dot path", key: "menu.file.open", wantErr: false},
		{name: "digits and dashes", key: "error.404-page", wantErr: false},
		{name: "underscores", key: "form_field.label_1", wantErr: false},
		{name: "empty", key: "", wantErr: true},
		{name: "whitespace", key: "menu file", wantErr: true},
		{name: "leading dot", key: ".menu", wantErr: true},
		{name: "trailing dot", key: "menu.", wantErr: true},
		{name: "double dot", key: "menu..file", wantErr: true},
		{name: "newline", key: "menu\nfile", wantErr: true},
		{name: "too long", key: strings.Repeat("a", MaxKeyLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
