package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/arthur-debert/fontweak/pkg/types"
)

func TestResolve(t *testing.T) {
	enUS := New(language.AmericanEnglish)

	tests := []struct {
		name     string
		resolver *Resolver
		lang     string
		want     Binding
	}{
		{"default slot", enUS, types.DefaultLang, Strong},
		{"empty language is the default slot", enUS, "", Strong},
		{"legacy en spelling", enUS, "en", Strong},
		{"other language", enUS, "zh-cn", Strong},
		{"matching language and region", enUS, "en-us", Default},
		{"matching region with underscore", enUS, "en_US", Default},
		{"other region", enUS, "en-gb", Strong},
		{"language without region matches", New(language.MustParse("zh-CN")), "zh", Default},
		{"chinese variants differ by region", New(language.MustParse("zh-CN")), "zh-tw", Strong},
		{"chinese locale own region", New(language.MustParse("zh-CN")), "zh-cn", Default},
		{"japanese locale", New(language.Japanese), "ja", Default},
		{"korean under japanese locale", New(language.Japanese), "ko", Strong},
		{"unparsable tag compared textually", New(language.Japanese), "ja-xyzzy1234", Default},
		{"unparsable tag other language", enUS, "qqqqqqqqqq-us", Strong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resolver.Resolve(tt.lang))
		})
	}
}

func TestResolveSlot(t *testing.T) {
	r := New(language.AmericanEnglish)
	assert.True(t, r.ResolveSlot(types.NewSlotKey(types.Serif, "")).IsStrong())
	assert.False(t, r.ResolveSlot(types.NewSlotKey(types.Serif, "en-US")).IsStrong())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"C", "en"},
		{"POSIX", "en"},
		{"C.UTF-8", "en"},
		{"en_US.UTF-8", "en-US"},
		{"en_US.UTF-8@euro", "en-US"},
		{"zh_CN.GB18030", "zh-CN"},
		{"ja_JP", "ja-JP"},
		{"de", "de"},
		{"!!garbage!!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.in).String())
		})
	}
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "ja_JP.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "ja-JP", FromEnvironment().Locale.String())

	t.Setenv("LC_ALL", "zh_TW.UTF-8")
	assert.Equal(t, "zh-TW", FromEnvironment().Locale.String())

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "en", FromEnvironment().Locale.String())
}

func TestBindingString(t *testing.T) {
	assert.Equal(t, "strong", Strong.String())
	assert.Equal(t, "default", Default.String())
}
