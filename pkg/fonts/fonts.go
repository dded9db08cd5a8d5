// Package fonts lists the font families installed on the machine. Family
// names are read from the name table of every font file found under the
// configured directories, with weight suffixes and generic aliases removed.
package fonts

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/logging"
)

// fontExts are the file types the scanner parses
var fontExts = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// weightSuffixes are dropped from the end of family names
var weightSuffixes = []string{
	" demilight",
	" light",
	" thin",
	" normal",
	" regular",
	" medium",
	" semibold",
	" bold",
	" extrabold",
	" black",
}

// genericNames are aliases rather than real families
var genericNames = map[string]bool{
	"Sans Serif": true,
	"SansSerif":  true,
	"Serif":      true,
	"Monospace":  true,
	"Monospaced": true,
}

// Scanner enumerates installed font families
type Scanner struct {
	FS   filesystem.FS
	Dirs []string
}

// NewScanner returns a scanner over dirs on fsys
func NewScanner(fsys filesystem.FS, dirs []string) *Scanner {
	return &Scanner{FS: fsys, Dirs: dirs}
}

// Families returns the normalized family names found, sorted and without
// duplicates. Unreadable directories and files that are not fonts are
// skipped.
func (s *Scanner) Families() []string {
	logger := logging.GetLogger("fonts")
	seen := make(map[string]bool)
	var files int

	for _, dir := range s.Dirs {
		s.walk(dir, func(path string) {
			files++
			for _, name := range s.familiesOf(path) {
				if name = Normalize(name); name != "" {
					seen[name] = true
				}
			}
		})
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	logger.Debug().Int("files", files).Int("families", len(out)).Msg("Scanned fonts")
	return out
}

func (s *Scanner) walk(dir string, visit func(path string)) {
	entries, err := s.FS.ReadDir(dir)
	if err != nil {
		logger := logging.GetLogger("fonts")
		logger.Trace().Err(err).Str("dir", dir).Msg("Skipping font directory")
		return
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			s.walk(path, visit)
			continue
		}
		if fontExts[strings.ToLower(filepath.Ext(e.Name()))] {
			visit(path)
		}
	}
}

func (s *Scanner) familiesOf(path string) []string {
	logger := logging.GetLogger("fonts")
	data, err := s.FS.ReadFile(path)
	if err != nil {
		logger.Trace().Err(err).Str("path", path).Msg("Cannot read font")
		return nil
	}

	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		logger.Trace().Err(err).Str("path", path).Msg("Not a font")
		return nil
	}

	var buf sfnt.Buffer
	var names []string
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		if name := familyName(f, &buf); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// familyName prefers the typographic family, which groups all weights
func familyName(f *sfnt.Font, buf *sfnt.Buffer) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDTypographicFamily, sfnt.NameIDFamily} {
		if name, err := f.Name(buf, id); err == nil && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// Normalize strips a trailing weight word from a family name. Generic
// aliases normalize to the empty string.
func Normalize(family string) string {
	family = strings.TrimSpace(family)
	lower := strings.ToLower(family)
	for _, suffix := range weightSuffixes {
		if strings.HasSuffix(lower, suffix) {
			family = strings.TrimSpace(family[:len(family)-len(suffix)])
			break
		}
	}
	if genericNames[family] {
		return ""
	}
	return family
}

// NormalizeAll normalizes names, dropping generics and duplicates while
// keeping the first occurrence order.
func NormalizeAll(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Normalize(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
