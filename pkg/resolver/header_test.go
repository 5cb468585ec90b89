package resolver_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tooinfinity/lingua/pkg/resolver"
)

func TestHeaderResolveAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		useQuality bool
		expected   []string
	}{
		{
			name:       "quality ordering",
			header:     "en;q=0.5,fr;q=0.9,de;q=0.7",
			useQuality: true,
			expected:   []string{"fr", "de", "en"},
		},
		{
			name:       "default quality is highest",
			header:     "en;q=0.5,fr",
			useQuality: true,
			expected:   []string{"fr", "en"},
		},
		{
			name:       "ties keep header order",
			header:     "en;q=0.8,fr;q=0.8,de;q=0.8",
			useQuality: true,
			expected:   []string{"en", "fr", "de"},
		},
		{
			name:       "unparsable quality sinks to zero",
			header:     "en;q=oops,fr;q=0.1",
			useQuality: true,
			expected:   []string{"fr", "en"},
		},
		{
			name:       "quality clamped to one",
			header:     "en;q=9,fr;q=0.9",
			useQuality: true,
			expected:   []string{"en", "fr"},
		},
		{
			name:       "simple mode preserves header order",
			header:     "en;q=0.5,fr;q=0.9,de",
			useQuality: false,
			expected:   []string{"en", "fr", "de"},
		},
		{
			name:       "malformed segments skipped",
			header:     ",, ;q=0.9, en , ,fr",
			useQuality: false,
			expected:   []string{"en", "fr"},
		},
		{
			name:       "empty header",
			header:     "",
			useQuality: true,
			expected:   nil,
		},
		{
			name:       "only garbage",
			header:     " , ; ,",
			useQuality: true,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}

			res := &resolver.Header{UseQuality: tt.useQuality}
			assert.Equal(t, tt.expected, res.ResolveAll(req))
		})
	}
}

func TestHeaderCustomName(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Locale", "pt-BR")

	res := &resolver.Header{Name: "X-Locale"}
	assert.Equal(t, []string{"pt-BR"}, res.ResolveAll(req))
}

func TestHeaderNeverYieldsEmptyCandidates(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", ";q=0.9,,")

	res := &resolver.Header{UseQuality: true}
	for _, candidate := range res.ResolveAll(req) {
		assert.NotEmpty(t, candidate)
	}
}
