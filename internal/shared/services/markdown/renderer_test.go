package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_StripsScripts(t *testing.T) {
	out, err := NewRenderer().Render("hello <script>alert(1)</script> **world**")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<strong>world</strong>")
}

func TestRender_HardWraps(t *testing.T) {
	out, err := NewRenderer().Render("line one\nline two")

	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}
