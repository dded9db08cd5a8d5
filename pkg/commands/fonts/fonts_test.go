package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	fontscan "github.com/arthur-debert/fontweak/pkg/fonts"
)

func TestListFonts(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/fonts", 0755))
	require.NoError(t, fsys.WriteFile("/fonts/Go-Regular.ttf", goregular.TTF, 0644))
	require.NoError(t, fsys.WriteFile("/fonts/Go-Mono.ttf", gomono.TTF, 0644))

	result, err := ListFonts(ListFontsOptions{Scanner: fontscan.NewScanner(fsys, []string{"/fonts"})})
	require.NoError(t, err)
	assert.Equal(t, []string{"/fonts"}, result.Dirs)
	assert.Equal(t, []string{"Go", "Go Mono"}, result.Families)
}

func TestListFontsEmpty(t *testing.T) {
	result, err := ListFonts(ListFontsOptions{Scanner: fontscan.NewScanner(filesystem.NewMemory(), nil)})
	require.NoError(t, err)
	assert.Empty(t, result.Families)

	_, err = ListFonts(ListFontsOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
