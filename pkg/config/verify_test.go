package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second

	assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	t.Run("missing listen", func(t *testing.T) {
		bad := &Config{}
		bad.Server.Timeout = 30 * time.Second
		err := VerifyAgainstEmbeddedSchema(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen")
	})

	t.Run("llm enabled without model", func(t *testing.T) {
		bad := &Config{}
		bad.Server.Listen = ":8080"
		bad.Server.Timeout = 30 * time.Second
		bad.LLM.Enabled = true
		bad.LLM.Endpoint = "http://localhost:11434/v1"
		err := VerifyAgainstEmbeddedSchema(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.model")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "server")
	assert.Contains(t, string(data), "nlp")
	assert.Contains(t, string(data), "deck")
}
