// Package main is the entry point for modc, a thin host binary that loads
// a Modelica library and flattens one root class. It is deliberately a
// single verb rather than a command tree: there is nothing here for a
// cobra-style framework to dispatch between.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/flatten"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/interp"
	"github.com/modc-lang/modc/jsonio"
	"github.com/modc-lang/modc/library"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "modc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("modc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		libPath    = fs.String("library", "", "path to a Modelica library root (.mo file or directory)")
		class      = fs.String("class", "", "fully qualified class name to flatten, e.g. Package.Model")
		configPath = fs.String("config", "", "path to a modc.jsonc sidecar config (optional)")
		asJSON     = fs.Bool("json", false, "emit the flattened result as JSON instead of Modelica text")
		issueLimit = fs.Int("issue-limit", 0, "diagnostic issue cap; 0 uses the sidecar value, and 0 there too means no cap")
		logLevel   = fs.String("log-level", "warn", "log level: error|warn|info|debug")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: modc -library PATH -class NAME [options]\n\n")
		fmt.Fprintf(stderr, "Loads a Modelica library and flattens one root class to stdout.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.SetOutput(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := loadSidecarConfig(*configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	rootPath := *libPath
	rootClass := *class
	if rootPath == "" && len(cfg.LibraryRoots) > 0 {
		rootPath = cfg.LibraryRoots[0]
	}
	if rootClass == "" {
		rootClass = cfg.RootClass
	}
	if rootPath == "" || rootClass == "" {
		fs.Usage()
		return errors.New("both -library and -class are required (or set in the config sidecar)")
	}

	limit := *issueLimit
	if limit == 0 {
		limit = cfg.IssueLimit
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	reqID := uuid.NewString()
	logger = logger.With(slog.String("request_id", reqID))

	lib, loadResult, err := library.Load(rootPath,
		library.WithIssueLimit(limit),
		library.WithLogger(logger),
		library.WithRequestID(reqID),
	)
	renderer := diag.NewRenderer()
	if !loadResult.OK() {
		fmt.Fprint(stderr, renderer.FormatResult(loadResult))
	}
	if err != nil {
		if errors.Is(err, library.ErrNoParser) {
			return fmt.Errorf("%w (no concrete Modelica grammar is wired into this binary; "+
				"link one in via library.WithParser before loading real source)", err)
		}
		return fmt.Errorf("load library: %w", err)
	}

	folder := interp.New(diag.NewCollector(limit))

	root, err := resolveClass(folder, lib.Root.ClassByName, rootClass)
	if err != nil {
		return err
	}

	if *asJSON {
		doc, flattenResult, err := flatten.Flatten(root, folder, flatten.WithIssueLimit(limit), flatten.WithLogger(logger), flatten.WithRequestID(reqID))
		if !flattenResult.OK() {
			fmt.Fprint(stderr, renderer.FormatResult(flattenResult))
		}
		if err != nil {
			return fmt.Errorf("flatten: %w", err)
		}
		b, err := jsonio.MarshalDocumentIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		fmt.Fprintln(stdout, string(b))
		return nil
	}

	flattenResult, err := flatten.Run(root, stdout, folder, flatten.WithIssueLimit(limit), flatten.WithLogger(logger), flatten.WithRequestID(reqID))
	if !flattenResult.OK() {
		fmt.Fprint(stderr, renderer.FormatResult(flattenResult))
	}
	if err != nil {
		return fmt.Errorf("flatten: %w", err)
	}
	return nil
}

func loadSidecarConfig(path string) (*jsonio.Config, error) {
	if path == "" {
		return &jsonio.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jsonio.ReadSidecarConfig(f)
}

// resolveClass finds the dotted class name rootClass within root entity's
// class list, descending through nested classes one dotted segment at a
// time via ClassInstance.Resolve, the same lazy
// instantiate-then-resolve step flatten.Run itself performs for any
// component.
func resolveClass(folder instance.Folder, byName func(string) *instance.ClassInstance, rootClass string) (*instance.ClassInstance, error) {
	parts := strings.Split(rootClass, ".")
	ci := byName(parts[0])
	if ci == nil {
		return nil, fmt.Errorf("class %q not found in library", parts[0])
	}

	for _, part := range parts[1:] {
		if err := ci.Instantiate(folder, diag.NewCollectorUnlimited()); err != nil {
			return nil, fmt.Errorf("instantiate %q: %w", ci.Name, err)
		}
		el, ok := ci.Resolve(part)
		if !ok {
			return nil, fmt.Errorf("class %q has no member %q", ci.Name, part)
		}
		next, ok := el.(*instance.ClassInstance)
		if !ok {
			return nil, fmt.Errorf("%q.%q is not a class", ci.Name, part)
		}
		ci = next
	}
	return ci, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
