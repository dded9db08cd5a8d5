package family

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

const confPath = "/home/.config/fontconfig/fonts.conf"

type env struct {
	fs    filesystem.FS
	store *prefs.Store
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fsys := filesystem.NewMemory()
	store, err := prefs.Open(prefs.StoreConfig{FS: fsys, Path: confPath, Resolver: binding.Parse("en_US")})
	require.NoError(t, err)
	return &env{fs: fsys, store: store}
}

func (e *env) slot(generic, lang string) SlotOptions {
	return SlotOptions{Store: e.store, Generic: generic, Lang: lang}
}

// saved reloads the file from disk
func (e *env) saved(t *testing.T) *prefs.Model {
	t.Helper()
	store, err := prefs.Open(prefs.StoreConfig{FS: e.fs, Path: confPath, Resolver: binding.Parse("en_US")})
	require.NoError(t, err)
	return store.Model()
}

func families(m *prefs.Model, g types.GenericFamily, lang string) []string {
	slot, _ := m.Slot(types.NewSlotKey(g, lang))
	return slot.Families
}

func TestParseSlotKey(t *testing.T) {
	tests := []struct {
		generic, lang string
		want          types.SlotKey
		wantErr       bool
	}{
		{"sans", "", types.SlotKey{Family: types.SansSerif, Lang: types.DefaultLang}, false},
		{"Monospace", "zh_TW", types.SlotKey{Family: types.Monospace, Lang: "zh-tw"}, false},
		{"serif", "default", types.SlotKey{Family: types.Serif, Lang: types.DefaultLang}, false},
		{"fantasy", "", types.SlotKey{}, true},
		{"serif", "ja jp", types.SlotKey{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.generic+"/"+tt.lang, func(t *testing.T) {
			got, err := ParseSlotKey(tt.generic, tt.lang)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetAndClear(t *testing.T) {
	e := newEnv(t)

	result, err := Set(SetOptions{SlotOptions: e.slot("sans-serif", ""), Families: []string{"Noto Sans", " DejaVu Sans ", "Noto Sans"}})
	require.NoError(t, err)
	assert.Equal(t, "sans-serif: Noto Sans, DejaVu Sans", result.Message)
	assert.Equal(t, []string{"Noto Sans", "DejaVu Sans"}, families(e.saved(t), types.SansSerif, ""))

	_, err = Set(SetOptions{SlotOptions: e.slot("sans", "ja"), Families: []string{"Noto Sans CJK JP"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Noto Sans CJK JP"}, families(e.saved(t), types.SansSerif, "ja"))

	_, err = Clear(e.slot("sans-serif", ""))
	require.NoError(t, err)
	saved := e.saved(t)
	assert.Empty(t, families(saved, types.SansSerif, ""))
	_, ok := saved.Slot(types.NewSlotKey(types.SansSerif, ""))
	assert.True(t, ok, "base slot survives clearing")

	_, err = Clear(e.slot("serif", "ko"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSlotNotFound))
}

func TestSlots(t *testing.T) {
	e := newEnv(t)

	_, err := AddSlot(e.slot("serif", "ja"))
	require.NoError(t, err)
	_, err = AddSlot(e.slot("serif", "JA"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSlotExists))

	// an empty slot is not written, so it does not survive a reload
	_, ok := e.saved(t).Slot(types.NewSlotKey(types.Serif, "ja"))
	assert.False(t, ok)

	_, err = Append(AppendOptions{SlotOptions: e.slot("serif", "ja"), Family: "IPAMincho"})
	require.NoError(t, err)
	assert.Equal(t, []string{"IPAMincho"}, families(e.saved(t), types.Serif, "ja"))

	result, err := RemoveSlot(e.slot("serif", "ja"))
	require.NoError(t, err)
	assert.Equal(t, "serif [ja] removed", result.Message)
	_, ok = e.saved(t).Slot(types.NewSlotKey(types.Serif, "ja"))
	assert.False(t, ok)

	_, err = RemoveSlot(e.slot("serif", "ja"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSlotNotFound))

	result, err = RemoveSlot(e.slot("mono", ""))
	require.NoError(t, err)
	assert.Equal(t, "monospace cleared", result.Message)
}

func TestAppendRemoveMove(t *testing.T) {
	e := newEnv(t)
	base := e.slot("monospace", "")

	for _, f := range []string{"Go Mono", "DejaVu Sans Mono", "Liberation Mono"} {
		_, err := Append(AppendOptions{SlotOptions: base, Family: f})
		require.NoError(t, err)
	}
	_, err := Append(AppendOptions{SlotOptions: base, Family: "Go Mono"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	result, err := Move(MoveOptions{SlotOptions: base, From: 3, To: 1})
	require.NoError(t, err)
	assert.Equal(t, "monospace: Liberation Mono, Go Mono, DejaVu Sans Mono", result.Message)

	_, err = Move(MoveOptions{SlotOptions: base, From: 0, To: 1})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Remove(AppendOptions{SlotOptions: base, Family: "Go Mono"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Liberation Mono", "DejaVu Sans Mono"}, families(e.saved(t), types.Monospace, ""))

	_, err = Remove(AppendOptions{SlotOptions: base, Family: "Go Mono"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFamilyNotFound))
}

func TestRejectsUnknownGeneric(t *testing.T) {
	e := newEnv(t)
	_, err := Set(SetOptions{SlotOptions: e.slot("cursive", ""), Families: []string{"Comic Neue"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Clear(SlotOptions{Generic: "serif"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
