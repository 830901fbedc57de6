package service

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRRenderer_Render(t *testing.T) {
	r := NewQRRenderer()

	t.Run("png_data_url", func(t *testing.T) {
		got, err := r.Render("2@AbCdEf,ghIjK=,lmNoP=")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

		png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})

	t.Run("empty_challenge", func(t *testing.T) {
		_, err := r.Render("")
		require.Error(t, err)
		assert.True(t, IsBadParameterError(err))
	})
}
