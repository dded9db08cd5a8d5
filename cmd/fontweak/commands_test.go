package fontweak

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/fontweak/pkg/testutil"
)

func setupEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	return testutil.NewTestEnvironment(t, testutil.EnvIsolated)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--plain"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestShowCreatesDefaultFile(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "file: "+env.FontsConf)
	assert.Contains(t, out, "hintstyle=none")
	assert.Contains(t, out, "sans-serif (strong):")

	_, err = os.Stat(env.FontsConf)
	assert.NoError(t, err, "show installs the template")
}

func TestOptionCommands(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "option", "set", "hintstyle", "slight")
	require.NoError(t, err)
	assert.Contains(t, out, "hintstyle set to slight")

	out, err = execute(t, "option", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hintstyle=slight")

	_, err = execute(t, "option", "set", "hintstyle", "extreme")
	assert.Error(t, err)

	_, err = execute(t, "option", "reset", "hintstyle")
	require.NoError(t, err)
	out, err = execute(t, "option", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hintstyle=none")
}

func TestFamilyBindingFollowsLocale(t *testing.T) {
	env := setupEnv(t)

	_, err := execute(t, "family", "set", "sans-serif", "--lang", "ja", "Noto Sans CJK JP", "IPAGothic")
	require.NoError(t, err)

	out, err := execute(t, "--locale", "ja_JP.UTF-8", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "sans-serif [ja] (default): Noto Sans CJK JP, IPAGothic")

	out, err = execute(t, "--locale", "en_US.UTF-8", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "sans-serif [ja] (strong): Noto Sans CJK JP, IPAGothic")

	// The written file follows the locale active when saving
	data, err := os.ReadFile(env.FontsConf)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<edit name="family" mode="prepend" binding="strong">`)

	_, err = execute(t, "--locale", "ja_JP.UTF-8", "family", "add", "sans-serif", "--lang", "ja", "TakaoGothic")
	require.NoError(t, err)
	data, err = os.ReadFile(env.FontsConf)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<edit name="family" mode="prepend">`)
	assert.NotContains(t, string(data), `binding="strong"`)

	_, err = execute(t, "family", "move", "sans-serif", "--lang", "ja", "2", "1")
	require.NoError(t, err)
	out, err = execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "IPAGothic, Noto Sans CJK JP")

	_, err = execute(t, "family", "move", "sans-serif", "--lang", "ja", "zero", "1")
	assert.Error(t, err)

	_, err = execute(t, "family", "set", "fantasy", "Comic Sans")
	assert.Error(t, err)
}

func TestAliasCommands(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "alias", "add", "Helvetica", "Liberation Sans")
	require.NoError(t, err)
	out, err := execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Helvetica -> Liberation Sans")

	_, err = execute(t, "alias", "remove", "Helvetica")
	require.NoError(t, err)
	_, err = execute(t, "alias", "remove", "Helvetica")
	assert.Error(t, err)
}

func TestStructuredOutput(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, "--format", "json", "show")
	require.NoError(t, err)
	var shown struct {
		Path  string `json:"path"`
		Slots []struct {
			Binding string `json:"binding"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, env.FontsConf, shown.Path)
	assert.Len(t, shown.Slots, 3)

	out, err = execute(t, "-o", "yaml", "option", "list")
	require.NoError(t, err)
	var listed struct {
		Options []struct {
			Name string `yaml:"name"`
		} `yaml:"options"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &listed))
	assert.NotEmpty(t, listed.Options)

	_, err = execute(t, "--format", "xml", "show")
	assert.Error(t, err)
}

func TestSchemeCommands(t *testing.T) {
	env := setupEnv(t)

	_, err := execute(t, "option", "set", "rgba", "rgb")
	require.NoError(t, err)
	_, err = execute(t, "scheme", "save", "lcd")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.AppDir, "scheme", "lcd.xml"))

	_, err = execute(t, "option", "set", "rgba", "none")
	require.NoError(t, err)
	_, err = execute(t, "scheme", "apply", "lcd")
	require.NoError(t, err)

	out, err := execute(t, "option", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "rgba=rgb")

	out, err = execute(t, "scheme", "list")
	require.NoError(t, err)
	assert.Equal(t, "* lcd\n", out)

	_, err = execute(t, "scheme", "save", "lcd")
	assert.Error(t, err, "existing schemes need --force")
	_, err = execute(t, "scheme", "save", "--force", "lcd")
	assert.NoError(t, err)

	_, err = execute(t, "scheme", "rename", "lcd", "subpixel")
	require.NoError(t, err)
	_, err = execute(t, "scheme", "delete", "subpixel")
	require.NoError(t, err)
	out, err = execute(t, "scheme", "list")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestResetNeedsConfirmation(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "option", "set", "antialias", "false")
	require.NoError(t, err)

	out, err := execute(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
	out, err = execute(t, "option", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "antialias=false")

	_, err = execute(t, "reset", "--yes")
	require.NoError(t, err)
	out, err = execute(t, "option", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "antialias=true")
}

func TestGenConfigAndSettings(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[save]")

	_, err = execute(t, "genconfig", "-w")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.AppDir, "config.toml"))

	// Settings from config.toml relocate the managed file
	other := filepath.Join(t.TempDir(), "other.conf")
	settings := "[paths]\nconfig_file = \"" + other + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.AppDir, "config.toml"), []byte(settings), 0644))
	out, err = execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "file: "+other)
}

func TestSuggestWithoutFonts(t *testing.T) {
	setupEnv(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	_, err := execute(t, "suggest", "--lang", "ko")
	assert.NoError(t, err)
}

func TestMiscCommands(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fontweak version")

	out, err = execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "bindings")

	out, err = execute(t, "help", "bindings")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "fontweak")

	_, err = execute(t)
	assert.Error(t, err)
}
