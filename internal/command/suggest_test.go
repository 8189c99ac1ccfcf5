package command

import (
	"testing"

	"github.com/samdwyer/charcanvas/internal/testutil/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"LINE", "LIN"},
		{"rect", "REC"},
		{"fil", "FILL"},
		{"exot", "EXIT"},
		{"hepl", "HELP"},
		{"RECTANGLE", "REC"},
		{"xyzzy", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.in))
		})
	}
}
