package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/mapper"
)

const payload = `{
	"id": 7,
	"active": true,
	"user": {"name": "Ada", "tags": ["a", "b"]},
	"items": [{"sku": "x1"}, {"sku": "x2"}]
}`

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"empty template", "", ""},
		{"no placeholders", "free text response", "free text response"},
		{"string value", "Hello {{ $.user.name }}", "Hello Ada"},
		{"number value", `{"id": {{$.id}}}`, `{"id": 7}`},
		{"bool value", "{{ $.active }}", "true"},
		{"object value", "{{ $.user }}", `{"name":"Ada","tags":["a","b"]}`},
		{"array value", "{{ $.user.tags }}", `["a","b"]`},
		{"wildcard", "{{ $.items[*].sku }}", `["x1","x2"]`},
		{"multiple", "{{ $.user.name }}-{{ $.id }}-{{ $.items[1].sku }}", "Ada-7-x2"},
	}

	render := mapper.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render(tt.template, []byte(payload))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		payload  string
	}{
		{"unclosed", "Hello {{ $.user.name", payload},
		{"empty expression", "Hello {{  }}", payload},
		{"missing key", "{{ $.nope }}", payload},
		{"null value", "{{ $.gone }}", `{"gone": null}`},
		{"invalid expression", "{{ $.[ }}", payload},
		{"invalid payload", "{{ $.id }}", "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := mapper.Render(tt.template, []byte(tt.payload))
			require.Error(t, err)
			assert.True(t, fault.TypeOf(err, fault.MappingFormat), "got %v", err)
			assert.False(t, fault.Transient(err))
			assert.Empty(t, out)
		})
	}
}

func TestRenderIgnoresPayloadWithoutPlaceholders(t *testing.T) {
	out, err := mapper.Render("static", []byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, "static", out)
}
