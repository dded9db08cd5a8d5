package schemes

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
)

const (
	schemeDir = "/app/scheme"
	stateFile = "/app/state.toml"
	confPath  = "/conf/fontconfig/fonts.conf"
)

const sansConf = `<?xml version="1.0"?>
<fontconfig>
  <match>
    <test name="family"><string>sans-serif</string></test>
    <edit name="family" mode="prepend" binding="strong"><string>Ubuntu</string></edit>
  </match>
</fontconfig>
`

func setup(t *testing.T) (filesystem.FS, *Manager) {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/conf/fontconfig", 0755))
	require.NoError(t, fsys.WriteFile(confPath, []byte(sansConf), 0644))
	return fsys, New(fsys, schemeDir, stateFile)
}

func TestListEmpty(t *testing.T) {
	_, m := setup(t)
	names, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "", current)
}

func TestSaveAndList(t *testing.T) {
	fsys, m := setup(t)

	require.NoError(t, m.Save("work", confPath, false))
	require.NoError(t, m.Save("home", confPath, false))
	require.NoError(t, fsys.WriteFile(schemeDir+"/notes.txt", []byte("x"), 0644))

	names, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "work"}, names)

	err = m.Save("work", confPath, false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeExists))
	require.NoError(t, m.Save("work", confPath, true))

	err = m.Save("../escape", confPath, false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeInvalid))
}

func TestSaveRejectsBrokenSource(t *testing.T) {
	fsys, m := setup(t)
	require.NoError(t, fsys.WriteFile(confPath, []byte("<fontconfig>"), 0644))

	err := m.Save("broken", confPath, false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
	assert.False(t, m.Exists("broken"))
}

func TestApply(t *testing.T) {
	fsys, m := setup(t)
	require.NoError(t, m.Save("ubuntu", confPath, false))
	require.NoError(t, fsys.WriteFile(confPath, []byte("<fontconfig/>"), 0644))

	require.NoError(t, m.Apply("ubuntu", confPath))

	data, err := fsys.ReadFile(confPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ubuntu")

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "ubuntu", current)

	err = m.Apply("missing", confPath)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeNotFound))
}

func TestApplyInvalidScheme(t *testing.T) {
	fsys, m := setup(t)
	require.NoError(t, fsys.MkdirAll(schemeDir, 0755))
	require.NoError(t, fsys.WriteFile(m.Path("bad"), []byte("<html/>"), 0644))

	err := m.Apply("bad", confPath)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeInvalid))

	data, err := fsys.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, sansConf, string(data))
}

func TestRename(t *testing.T) {
	_, m := setup(t)
	require.NoError(t, m.Save("a", confPath, false))
	require.NoError(t, m.Save("b", confPath, false))
	require.NoError(t, m.SetCurrent("a"))

	err := m.Rename("a", "b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeExists))

	require.NoError(t, m.Rename("a", "c"))
	assert.False(t, m.Exists("a"))
	assert.True(t, m.Exists("c"))

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "c", current)

	err = m.Rename("nope", "d")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSchemeNotFound))
}

func TestDelete(t *testing.T) {
	_, m := setup(t)
	require.NoError(t, m.Save("a", confPath, false))
	require.NoError(t, m.Save("b", confPath, false))
	require.NoError(t, m.SetCurrent("b"))

	require.NoError(t, m.Delete("a"))
	current, _ := m.Current()
	assert.Equal(t, "b", current)

	require.NoError(t, m.Delete("b"))
	current, _ = m.Current()
	assert.Equal(t, "", current)

	names, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	assert.True(t, errors.IsErrorCode(m.Delete("b"), errors.ErrSchemeNotFound))
}

func TestCorruptState(t *testing.T) {
	fsys, m := setup(t)
	require.NoError(t, fsys.MkdirAll("/app", 0755))
	require.NoError(t, fsys.WriteFile(stateFile, []byte("current_scheme = "), 0644))

	_, err := m.Current()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestSchemeOperationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	_, m := setup(t)
	require.NoError(t, m.Save("work", confPath, false))
	require.NoError(t, m.Apply("work", confPath))

	out := buf.String()
	assert.Contains(t, out, `"component":"schemes"`)
	assert.Contains(t, out, "Saved scheme")
	assert.Contains(t, out, "Applied scheme")
	assert.Contains(t, out, "Scheme selection updated")
}
