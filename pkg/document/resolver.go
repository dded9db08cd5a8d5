package document

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
)

// SchemaFile is the DTD of the fontconfig rule language
const SchemaFile = "fonts.dtd"

// EntityResolver satisfies external references found in a document's DOCTYPE
type EntityResolver interface {
	ResolveEntity(publicID, systemID string) ([]byte, error)
}

// SchemaResolver answers references to fonts.dtd with an empty fragment and
// reads every other local reference through FS, relative to BaseDir.
type SchemaResolver struct {
	FS      filesystem.FS
	BaseDir string
}

// NewSchemaResolver creates a resolver for documents located in baseDir
func NewSchemaResolver(fsys filesystem.FS, baseDir string) *SchemaResolver {
	return &SchemaResolver{FS: fsys, BaseDir: baseDir}
}

// ResolveEntity implements EntityResolver
func (r *SchemaResolver) ResolveEntity(publicID, systemID string) ([]byte, error) {
	if strings.Contains(systemID, SchemaFile) {
		return []byte{}, nil
	}
	if strings.Contains(systemID, "://") {
		return nil, errors.Newf(errors.ErrExternalRef, "remote reference %q is not fetched", systemID).
			WithDetail("publicId", publicID)
	}
	if r.FS == nil {
		return nil, errors.Newf(errors.ErrExternalRef, "cannot resolve %q without a filesystem", systemID)
	}

	path := systemID
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.BaseDir, path)
	}
	data, err := r.FS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalRef, "cannot resolve external reference %q", systemID).
			WithDetail("path", path)
	}
	return data, nil
}

var doctypePattern = regexp.MustCompile(
	`(?is)^DOCTYPE\s+\S+\s+(?:SYSTEM\s+("[^"]*"|'[^']*')|PUBLIC\s+("[^"]*"|'[^']*')\s+("[^"]*"|'[^']*'))`)

// externalID extracts the public and system identifiers of a DOCTYPE
// directive. ok is false when the directive declares no external subset.
func externalID(directive string) (publicID, systemID string, ok bool) {
	m := doctypePattern.FindStringSubmatch(strings.TrimSpace(directive))
	if m == nil {
		return "", "", false
	}
	if m[1] != "" {
		return "", unquote(m[1]), true
	}
	return unquote(m[2]), unquote(m[3]), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
