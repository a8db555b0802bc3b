package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultTheme(t *testing.T) {
	th := NewDefaultTheme()

	require.NotNil(t, th)
	assert.NotNil(t, th.Primary())
	assert.NotNil(t, th.Secondary())
	assert.NotNil(t, th.Success())
	assert.NotNil(t, th.Error())
	assert.NotNil(t, th.Warning())
	assert.NotNil(t, th.Info())
	assert.NotNil(t, th.Subtle())
}

func TestManager(t *testing.T) {
	t.Run("uses provided theme", func(t *testing.T) {
		th := NewDefaultTheme()
		m := NewManager(th)
		assert.Equal(t, Theme(th), m.GetCurrentTheme())
	})

	t.Run("nil theme falls back to default", func(t *testing.T) {
		m := NewManager(nil)
		assert.NotNil(t, m.GetCurrentTheme())
	})
}

func TestStyle_WithWriter(t *testing.T) {
	var buf bytes.Buffer

	th := NewDefaultTheme()
	th.Success().WithWriter(&buf).Println("imported")

	assert.Contains(t, buf.String(), "imported")
}
