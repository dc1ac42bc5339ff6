package edenweb_test

import (
	"testing"

	"github.com/rplatt/edenweb"
	"github.com/stretchr/testify/assert"
)

func TestIsPageFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"fbe005.htm", true},
		{"fbe117.htm", true},
		{"fbe299.htm", true},
		{"fbe000.htm", false}, // title page
		{"fbe004.htm", false}, // last front matter page
		{"index.htm", false},
		{"pageidx.htm", false},
		{"errata.htm", false},
		{"fbeerrata.htm", false},
		{"fbe05.htm", false},   // two digits
		{"fbe0050.htm", false}, // four digits
		{"fbe005.html", false},
		{"abc005.htm", false},
		{"fbe005.htm.bak", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, edenweb.IsPageFile(tt.name))
		})
	}
}
