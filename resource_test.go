package beca_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/beca"
)

func TestResourceName(t *testing.T) {
	t.Run("build order", func(t *testing.T) {
		names := beca.ResourceNames()
		require.Len(t, names, 11)
		assert.Equal(t, beca.DBClient, names[0])
		assert.Equal(t, beca.DB, names[1])
		assert.Equal(t, beca.MapperService, names[len(names)-1])
	})

	t.Run("String", func(t *testing.T) {
		tests := []struct {
			name     beca.ResourceName
			expected string
		}{
			{beca.DBClient, "dbClient"},
			{beca.DB, "db"},
			{beca.SourcesCollection, "sourcesCollection"},
			{beca.MappingsCollection, "mappingsCollection"},
			{beca.TargetsCollection, "targetsCollection"},
			{beca.ResponsesCollection, "responsesCollection"},
			{beca.SourcesService, "sourcesService"},
			{beca.MappingsService, "mappingsService"},
			{beca.TargetsService, "targetsService"},
			{beca.ResponsesService, "responsesService"},
			{beca.MapperService, "mapperService"},
			{beca.ResourceName(99), "Unknown(99)"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.name.String())
		}
	})

	t.Run("IsValid", func(t *testing.T) {
		for _, name := range beca.ResourceNames() {
			assert.True(t, name.IsValid(), name.String())
		}
		assert.False(t, beca.ResourceName(11).IsValid())
		assert.False(t, beca.ResourceName(255).IsValid())
	})

	t.Run("ParseResourceName", func(t *testing.T) {
		for _, name := range beca.ResourceNames() {
			parsed, ok := beca.ParseResourceName(name.String())
			assert.True(t, ok)
			assert.Equal(t, name, parsed)
		}

		for _, unknown := range []string{"", "DBClient", "dbclient", "notloadeddependency", "Unknown(99)"} {
			_, ok := beca.ParseResourceName(unknown)
			assert.False(t, ok, unknown)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal([]beca.ResourceName{beca.DB, beca.TargetsService})
		require.NoError(t, err)
		assert.JSONEq(t, `["db","targetsService"]`, string(data))

		var names []beca.ResourceName
		require.NoError(t, json.Unmarshal(data, &names))
		assert.Equal(t, []beca.ResourceName{beca.DB, beca.TargetsService}, names)
	})

	t.Run("JSON map keys", func(t *testing.T) {
		data, err := json.Marshal(map[beca.ResourceName]int{beca.MapperService: 1})
		require.NoError(t, err)
		assert.JSONEq(t, `{"mapperService":1}`, string(data))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		var name beca.ResourceName
		err := json.Unmarshal([]byte(`"notARealName"`), &name)

		var unknown beca.UnknownResourceError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "notARealName", unknown.Name)

		assert.Error(t, json.Unmarshal([]byte(`7`), &name))

		_, err = json.Marshal(beca.ResourceName(42))
		assert.Error(t, err)
	})
}
