package library

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/internal/trace"
	"github.com/modc-lang/modc/location"
	"github.com/modc-lang/modc/translator"
)

// Library owns a file-system path and the root Entity loaded from it
// (spec §3). Constructed only by Load; torn down as a unit by letting it
// fall out of scope.
type Library struct {
	Root       *Entity
	Path       string
	Translator *translator.Table
}

// Load reads a Modelica library from path, which may name either a single
// .mo file (an unstructured entity) or a directory (structured if it
// contains package.mo). Sub-entities of a structured directory are
// spliced into the package class's element list in package.order (or
// locale-collated) order, so ordinary instantiation of the returned root
// class instance walks the whole tree uniformly.
//
// Load requires WithParser; there is no concrete grammar shipped with this
// module (spec §1/§6).
func Load(path string, opts ...Option) (*Library, diag.Result, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)
	if cfg.parser == nil {
		return nil, diag.Result{}, ErrNoParser
	}

	ctx := context.Background()
	if cfg.requestID != "" {
		ctx = trace.WithRequestID(ctx, cfg.requestID)
	}
	op := trace.Begin(ctx, cfg.logger, "modc.library.load", slog.String("path", path))
	var err error
	defer func() { op.End(err) }()

	collector := diag.NewCollector(cfg.issueLimit)
	ld := &loader{cfg: cfg, collector: collector}

	name := dirEntryName(filepath.Base(strings.TrimRight(path, "/")), true)

	var root *Entity
	root, err = ld.load(path, name)
	if err != nil {
		return nil, collector.Result(), err
	}

	lib := &Library{Root: root, Path: path, Translator: cfg.translator}
	return lib, collector.Result(), nil
}

type loader struct {
	cfg       *config
	collector *diag.Collector
}

// load dispatches on what path actually is: a directory (structured if it
// carries package.mo, otherwise a flat aggregate of its .mo children) or a
// single file.
func (l *loader) load(path, name string) (*Entity, error) {
	if entries, err := l.cfg.fs.ReadDir(path); err == nil {
		if l.isPackageDir(path) {
			return l.loadStructured(path, name, entries)
		}
		return l.loadFlatDirectory(path, name, entries)
	}

	content, err := l.cfg.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotFound, path, err)
	}
	return l.loadUnstructured(path, name, content), nil
}

func (l *loader) isPackageDir(dirPath string) bool {
	_, err := l.cfg.fs.ReadFile(filepath.Join(dirPath, "package.mo"))
	return err == nil
}

// loadUnstructured builds an Entity from a single .mo file's content.
func (l *loader) loadUnstructured(path, name string, content []byte) *Entity {
	def := l.parseFile(path, content)
	ent := &Entity{Name: name, Path: path}
	if def == nil {
		return ent
	}
	ent.Defs = def.Classes
	for _, d := range def.Classes {
		ent.Classes = append(ent.Classes, instance.NewClassInstance(classDefName(d), d, nil, nil))
	}
	return ent
}

// loadStructured builds a structured Entity from a directory carrying
// package.mo, splicing each sub-entity's root classes into package.mo's
// single class as nested-class elements (spec §3's "directory with an
// optional package.mo and zero or more sub-entities").
func (l *loader) loadStructured(dirPath, name string, entries []fs.DirEntry) (*Entity, error) {
	pkgPath := filepath.Join(dirPath, "package.mo")
	pkgContent, err := l.cfg.fs.ReadFile(pkgPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", pkgPath, err)
	}

	ent := &Entity{Name: name, Path: dirPath, Structured: true}
	def := l.parseFile(pkgPath, pkgContent)
	var target *ast.ClassDefinition
	if def != nil {
		ent.Defs = def.Classes
		if len(def.Classes) > 0 {
			target = def.Classes[0]
		} else {
			l.collector.Collect(diag.NewIssue(diag.Error, diag.E_MISSING_CLASS_DEFINITION,
				fmt.Sprintf("package.mo at %q declares no class", dirPath)).Build())
		}
	}

	order := l.readOrder(dirPath)
	names, byName := l.packageChildren(entries)
	for _, key := range orderNames(names, order) {
		child := byName[key]
		sub, err := l.loadChild(dirPath, child)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			continue
		}
		ent.SubEntities = append(ent.SubEntities, sub)
		if target != nil && target.Long != nil {
			for _, scd := range sub.Defs {
				target.Long.Elements = append(target.Long.Elements, ast.NestedClass{Def: scd})
			}
		}
	}

	if target != nil {
		ent.Classes = []*instance.ClassInstance{instance.NewClassInstance(classDefName(target), target, nil, nil)}
	}
	return ent, nil
}

// loadFlatDirectory handles a root directory that is not itself a package
// (no package.mo): each .mo child and each package subdirectory becomes an
// independent sub-entity, with no wrapping class to splice them into. This
// is the common shape for a top-level collection of standalone models.
func (l *loader) loadFlatDirectory(dirPath, name string, entries []fs.DirEntry) (*Entity, error) {
	ent := &Entity{Name: name, Path: dirPath}
	names, byName := l.packageChildren(entries)
	for _, key := range orderNames(names, nil) {
		sub, err := l.loadChild(dirPath, byName[key])
		if err != nil {
			return nil, err
		}
		if sub != nil {
			ent.SubEntities = append(ent.SubEntities, sub)
		}
	}
	return ent, nil
}

// loadChild loads one entry of a directory being crawled: a .mo file
// becomes an unstructured sub-entity; a directory is a recognized
// sub-package only if it itself carries package.mo (spec §6's Library
// layout rule), otherwise it is not a sub-entity at all and is skipped.
func (l *loader) loadChild(dirPath string, e fs.DirEntry) (*Entity, error) {
	childPath := filepath.Join(dirPath, e.Name())
	childName := dirEntryName(e.Name(), e.IsDir())
	if e.IsDir() {
		if !l.isPackageDir(childPath) {
			return nil, nil
		}
		childEntries, err := l.cfg.fs.ReadDir(childPath)
		if err != nil {
			return nil, fmt.Errorf("read dir %q: %w", childPath, err)
		}
		return l.loadStructured(childPath, childName, childEntries)
	}
	content, err := l.cfg.fs.ReadFile(childPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", childPath, err)
	}
	return l.loadUnstructured(childPath, childName, content), nil
}

func (l *loader) packageChildren(entries []fs.DirEntry) ([]string, map[string]fs.DirEntry) {
	names := make([]string, 0, len(entries))
	byName := make(map[string]fs.DirEntry, len(entries))
	for _, e := range entries {
		if e.Name() == "package.mo" || e.Name() == "package.order" {
			continue
		}
		if !e.IsDir() && !strings.HasSuffix(e.Name(), ".mo") {
			continue
		}
		key := dirEntryName(e.Name(), e.IsDir())
		names = append(names, key)
		byName[key] = e
	}
	return names, byName
}

func (l *loader) readOrder(dirPath string) []string {
	content, err := l.cfg.fs.ReadFile(filepath.Join(dirPath, "package.order"))
	if err != nil {
		return nil
	}
	return parseOrderFile(content)
}

func (l *loader) parseFile(path string, content []byte) *ast.StoredDefinition {
	sourceID, err := location.SourceIDFromPath(path)
	if err != nil {
		sourceID = location.NewSourceID("mo://" + path)
	}
	node, err := l.cfg.parser.Parse(content, sourceID)
	if err != nil {
		l.collector.Collect(diag.NewIssue(diag.Error, diag.E_SYNTAX, err.Error()).
			WithSpan(location.Point(sourceID, 1, 1)).Build())
		return nil
	}
	return ast.NewBuilder(l.collector).BuildStoredDefinition(node)
}

func classDefName(d *ast.ClassDefinition) string {
	switch {
	case d.Long != nil:
		return d.Long.Identifier
	case d.Short != nil:
		return d.Short.Identifier
	case d.Der != nil:
		return d.Der.Identifier
	default:
		return ""
	}
}
