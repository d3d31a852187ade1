package view

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"grid", Grid, false},
		{"list", List, false},
		{"", "", true},
		{"table", "", true},
		{"Grid", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tt.in)
			} else if !errors.Is(err, domain.ErrInvalidViewMode) {
				t.Errorf("ParseMode(%q): error %v, want ErrInvalidViewMode", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
