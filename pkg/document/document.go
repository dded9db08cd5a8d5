package document

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontweak/pkg/errors"
	"github.com/arthur-debert/fontweak/pkg/filesystem"
	"github.com/arthur-debert/fontweak/pkg/logging"
)

// RootTag is the document element of every fontconfig file
const RootTag = "fontconfig"

// IndentSpaces is the indentation used when writing documents
const IndentSpaces = 2

// FileMode is the permission used for files fontweak writes
const FileMode fs.FileMode = 0644

const doctype = `DOCTYPE fontconfig SYSTEM "` + SchemaFile + `"`

// New returns an empty fontconfig document with the usual prolog
func New() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	doc.CreateDirective(doctype)
	doc.CreateElement(RootTag)
	return doc
}

// Load reads and parses the fontconfig file at path. A file that cannot be
// read yields ErrFileNotFound or ErrFileAccess; content that is not a
// fontconfig document yields ErrDocumentParse.
func Load(fsys filesystem.FS, path string) (*etree.Document, error) {
	logger := logging.GetLogger("document")

	data, err := fsys.ReadFile(path)
	if err != nil {
		code := errors.ErrFileAccess
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		logger.Error().Err(err).Str("path", path).Msg("Cannot read font configuration")
		return nil, errors.Wrapf(err, code, "cannot read %s", path).WithDetail("path", path)
	}

	doc, err := Parse(data, NewSchemaResolver(fsys, filepath.Dir(path)))
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Cannot parse font configuration")
		return nil, err
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Loaded font configuration")
	return doc, nil
}

// Parse builds a document from data. External references in the DOCTYPE are
// handed to resolver; a nil resolver only accepts fonts.dtd.
func Parse(data []byte, resolver EntityResolver) (*etree.Document, error) {
	if resolver == nil {
		resolver = &SchemaResolver{}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "malformed font configuration")
	}

	for _, tok := range doc.Child {
		directive, ok := tok.(*etree.Directive)
		if !ok {
			continue
		}
		publicID, systemID, ok := externalID(directive.Data)
		if !ok {
			continue
		}
		if _, err := resolver.ResolveEntity(publicID, systemID); err != nil {
			return nil, err
		}
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocumentParse, "font configuration has no root element")
	}
	if root.Tag != RootTag {
		return nil, errors.Newf(errors.ErrDocumentParse, "unexpected root element <%s>", root.Tag).
			WithDetail("root", root.Tag)
	}
	return doc, nil
}

// Serialize renders doc with two-space indentation. doc itself is not
// modified.
func Serialize(doc *etree.Document) ([]byte, error) {
	if doc == nil || doc.Root() == nil {
		return nil, errors.New(errors.ErrDocumentSerialize, "document has no root element")
	}

	out := doc.Copy()
	if !hasDeclaration(out) {
		out.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0"`))
	}
	out.Indent(IndentSpaces)

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentSerialize, "cannot serialize font configuration")
	}
	data := buf.Bytes()
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}

// Save serializes doc and atomically replaces path with it. On any failure
// the error is logged and the existing file is left as it was.
func Save(fsys filesystem.FS, doc *etree.Document, path string) error {
	logger := logging.GetLogger("document")

	data, err := Serialize(doc)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Cannot serialize font configuration")
		return err
	}

	if err := filesystem.WriteFileAtomic(fsys, path, data, FileMode); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Cannot write font configuration")
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Saved font configuration")
	return nil
}

func hasDeclaration(doc *etree.Document) bool {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && strings.EqualFold(pi.Target, "xml") {
			return true
		}
	}
	return false
}
