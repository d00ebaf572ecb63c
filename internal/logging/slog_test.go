package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON_WritesStructuredRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewJSON(&buf)

	log.Info(context.Background(), "hello", "answer", 42)

	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err, "not valid JSON: %s", buf.String())

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, float64(42), entry["answer"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "level")
}

func TestWith_AttachesPermanentAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewJSON(&buf).With("module", "httpapi")

	log.Warn(context.Background(), "slow request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "httpapi", entry["module"])
}
