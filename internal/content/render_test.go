package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Über uns\n\nSeit **1987** Kultur im Dorf.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Über uns</h1>")
	assert.Contains(t, out, "<strong>1987</strong>")
}

func TestRenderMarkdown_EscapesRawHTML(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown(`<script>alert(1)</script>`)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
}
