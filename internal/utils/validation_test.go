package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"valid query", "faizabad", false},
		{"minimum length", "pi", false},
		{"query with spaces", "parade ground", false},
		{"too short", "f", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 201), true},
		{"sql comment", "stops--", true},
		{"angle brackets", "<script>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStopName(t *testing.T) {
	tests := []struct {
		name     string
		stopName string
		wantErr  bool
	}{
		{"plain name", "Faizabad", false},
		{"name with spaces", "Parade Ground", false},
		{"name with hyphen and slash", "G-7 / G-8", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"injection pattern", "name; drop --", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStopName(tt.stopName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
