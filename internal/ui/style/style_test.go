package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scriptmerge/internal/ui/style"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status string
		icon   string
	}{
		{"merged", style.Check},
		{"up-to-date", style.Tilde},
		{"failed", style.Cross},
		{"unchanged", style.Circle},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			icon, color := style.StatusIcon(tt.status)
			assert.Equal(t, tt.icon, icon)
			assert.NotEmpty(t, string(color))
		})
	}
}
