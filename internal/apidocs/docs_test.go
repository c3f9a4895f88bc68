package apidocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/tidwall/gjson"
)

func TestDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	require.True(t, gjson.Valid(doc), "document must be valid JSON")
	assert.Equal(t, "llmgateway API", gjson.Get(doc, "info.title").String())
	for _, p := range []string{"/complete", "/explain", "/refactor", "/reason", "/generate", "/chat", "/preload", "/health", "/models"} {
		assert.True(t, gjson.Get(doc, "paths."+p).Exists(), p)
	}
}
