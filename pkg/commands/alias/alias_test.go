package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontweak/pkg/binding"
	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/prefs"
	"github.com/arthur-debert/fontweak/pkg/types"
)

const confPath = "/tmp/fontconfig/fonts.conf"

func TestAddRemove(t *testing.T) {
	fsys := filesystem.NewMemory()
	cfg := prefs.StoreConfig{FS: fsys, Path: confPath, Resolver: binding.Parse("C")}
	store, err := prefs.Open(cfg)
	require.NoError(t, err)

	result, err := Add(AddOptions{Store: store, Family: " Helvetica ", Prefer: "Liberation Sans"})
	require.NoError(t, err)
	assert.Equal(t, "Helvetica now prefers Liberation Sans", result.Message)

	_, err = Add(AddOptions{Store: store, Family: "Arial", Prefer: "Liberation Sans"})
	require.NoError(t, err)

	data, err := fsys.ReadFile(confPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<alias binding=\"strong\">")

	reloaded, err := prefs.Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, []types.Alias{
		{Family: "Helvetica", Prefer: "Liberation Sans"},
		{Family: "Arial", Prefer: "Liberation Sans"},
	}, reloaded.Model().Aliases())

	_, err = Remove(RemoveOptions{Store: store, Family: "helvetica"})
	require.NoError(t, err)
	reloaded, err = prefs.Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, []types.Alias{{Family: "Arial", Prefer: "Liberation Sans"}}, reloaded.Model().Aliases())

	_, err = Remove(RemoveOptions{Store: store, Family: "Helvetica"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasNotFound))
}

func TestAddIncomplete(t *testing.T) {
	store, err := prefs.Open(prefs.StoreConfig{FS: filesystem.NewMemory(), Path: confPath})
	require.NoError(t, err)

	_, err = Add(AddOptions{Store: store, Family: "Helvetica"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, store.Model().Aliases())
}
