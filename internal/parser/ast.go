package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/alexhholmes/bitcheck/internal/catalog"
)

// Record represents a parsed struct with a @bitfield annotation
type Record struct {
	Name   string
	Anno   *Annotation
	Fields []Field

	// Err holds the extraction failure for this record, if any.
	// A record with a non-nil Err is rejected without ever reaching
	// the width accumulator.
	Err error
}

// Field is a struct field resolved against the width catalog
type Field struct {
	Name   string
	Marker string // specifier name, e.g. "B12"
	Width  uint
}

// ParseFile parses a Go source file and extracts structs with @bitfield annotations
func ParseFile(filename string) ([]*Record, error) {
	return ParseSource(filename, nil)
}

// ParseSource is ParseFile over in-memory source. src follows the contract of
// go/parser.ParseFile: nil reads from filename.
func ParseSource(filename string, src any) ([]*Record, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractRecords(file), nil
}

// PackageName returns the package clause of a Go source file.
func PackageName(filename string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	return file.Name.Name, nil
}

func extractRecords(file *ast.File) []*Record {
	var records []*Record
	imports := newBitsImports(file)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			// Extract @bitfield annotation from comments directly above type
			anno, annoErr := extractAnnotation(genDecl.Doc, typeSpec.Doc)
			if anno == nil && annoErr == nil {
				continue // No @bitfield, skip this type
			}

			rec := &Record{
				Name: typeSpec.Name.Name,
				Anno: anno,
			}
			if annoErr != nil {
				// A malformed annotation must reject the record, not
				// silently un-annotate it
				rec.Err = fmt.Errorf("invalid @bitfield annotation: %w", annoErr)
			} else {
				rec.Fields, rec.Err = extractFields(structType, imports)
			}

			records = append(records, rec)
		}
	}

	return records
}

func extractAnnotation(docs ...*ast.CommentGroup) (*Annotation, error) {
	// Extract comment text lines
	var lines []string
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, comment := range doc.List {
			lines = append(lines, CleanComment(comment.Text))
		}
	}

	// Search for @bitfield annotation
	return FindAnnotation(lines)
}

// extractFields resolves every field of an annotated struct against the width
// catalog, preserving declaration order. The first field that does not name a
// specifier fails the whole record.
func extractFields(structType *ast.StructType, imports bitsImports) ([]Field, error) {
	var fields []Field

	for _, field := range structType.Fields.List {
		marker, err := imports.markerName(field.Type)
		if err != nil {
			return nil, err
		}

		width, err := catalog.Resolve(marker)
		if err != nil {
			return nil, err
		}

		if len(field.Names) == 0 {
			// Embedded specifier still occupies its width
			fields = append(fields, Field{Name: marker, Marker: marker, Width: width})
			continue
		}

		// "A, B bits.B4" declares two fields of the same width
		for _, name := range field.Names {
			fields = append(fields, Field{Name: name.Name, Marker: marker, Width: width})
		}
	}

	return fields, nil
}

// bitsImportPath is the only package whose types declare bit-widths.
const bitsImportPath = "github.com/alexhholmes/bitcheck/bits"

// bitsImports tracks how the bits package is reachable in one source file,
// so a B12 from some other package cannot pass as a width specifier.
type bitsImports struct {
	names map[string]bool // local names bound to the bits import
	dot   bool            // bits was dot-imported
}

func newBitsImports(file *ast.File) bitsImports {
	bi := bitsImports{names: make(map[string]bool)}

	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != bitsImportPath {
			continue
		}
		if imp.Name == nil {
			bi.names["bits"] = true
			continue
		}
		switch imp.Name.Name {
		case ".":
			bi.dot = true
		case "_":
			// Blank import binds no name
		default:
			bi.names[imp.Name.Name] = true
		}
	}

	return bi
}

// markerName extracts the specifier name from a field type expression.
// Accepts "bits.B12" through any alias of the bits import, and bare "B12"
// under a dot-import. Selectors into other packages carry no width.
func (bi bitsImports) markerName(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok && bi.names[pkg.Name] {
			return t.Sel.Name, nil
		}
	case *ast.Ident:
		if bi.dot {
			return t.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", catalog.ErrUnknownFieldWidth, typeToString(expr))
}

// typeToString renders an AST type expression for diagnostics
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return "[...]" + typeToString(t.Elt)
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	default:
		return "unknown"
	}
}
