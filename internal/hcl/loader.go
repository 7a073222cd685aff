package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/ctxlog"
	"github.com/vk/behaviorgo/internal/fsutil"
	"github.com/vk/behaviorgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the HCL definition loading process. It is agnostic to
// the origin of the paths and merges recognized blocks from every file, in
// path order. At most one `behavior` block is allowed across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findDefinitionFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.Root
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Behaviors {
			if model.Behavior != nil {
				return nil, fmt.Errorf("duplicate behavior block %q in %s: only one behavior block is allowed", b.Name, file)
			}
			model.Behavior = &config.Behavior{Name: b.Name, StartState: b.StartState}
		}
		for _, s := range root.States {
			st, err := l.translateState(s)
			if err != nil {
				return nil, fmt.Errorf("state %q in %s: %w", s.Name, file, err)
			}
			model.States = append(model.States, st)
		}
		for _, t := range root.Transitions {
			model.Transitions = append(model.Transitions, &config.Transition{From: t.From, To: t.To, Event: t.Event})
		}
		for _, w := range root.Wildcards {
			model.Wildcards = append(model.Wildcards, &config.Wildcard{State: w.State, Event: w.Event})
		}
	}

	logger.Debug("HCL loading complete.",
		"states", len(model.States),
		"transitions", len(model.Transitions),
		"wildcards", len(model.Wildcards),
	)
	return model, nil
}

// findDefinitionFiles resolves the given paths to a deduplicated flat list
// of .hcl files. Directories are searched recursively.
func (l *Loader) findDefinitionFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(file string) {
		if _, wasSeen := seen[file]; !wasSeen {
			allFiles = append(allFiles, file)
			seen[file] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, file := range files {
				add(file)
			}
			continue
		}
		if filepath.Ext(path) != ".hcl" {
			return nil, fmt.Errorf("not an HCL definition file: %s", path)
		}
		add(path)
	}
	return allFiles, nil
}
