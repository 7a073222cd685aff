// Package yamlcfg provides the YAML implementation of the definition
// loading interface defined in the `config` package. It mirrors the HCL
// loader's block set with a document-per-file layout.
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/ctxlog"
	"github.com/vk/behaviorgo/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Behavior    *behaviorDoc     `yaml:"behavior"`
	States      []*stateDoc      `yaml:"states"`
	Transitions []*transitionDoc `yaml:"transitions"`
	Wildcards   []*wildcardDoc   `yaml:"wildcards"`
}

type behaviorDoc struct {
	Name       string `yaml:"name"`
	StartState string `yaml:"start_state"`
}

type stateDoc struct {
	Name           string        `yaml:"name"`
	Animation      string        `yaml:"animation"`
	LegacySequence bool          `yaml:"legacy_sequence"`
	Looping        bool          `yaml:"looping"`
	OnEnter        []string      `yaml:"on_enter"`
	OnExit         []string      `yaml:"on_exit"`
	Triggers       []*triggerDoc `yaml:"triggers"`
}

type triggerDoc struct {
	Event         string  `yaml:"event"`
	LocalTime     float64 `yaml:"local_time"`
	RelativeToEnd bool    `yaml:"relative_to_end"`
}

type transitionDoc struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Event string `yaml:"event"`
}

type wildcardDoc struct {
	State string `yaml:"state"`
	Event string `yaml:"event"`
}

// Load reads and merges YAML definition files from the given paths. Unknown
// keys are rejected, matching the HCL loader's strictness. At most one
// `behavior` mapping is allowed across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := l.findDefinitionFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		root, err := l.parseFile(file)
		if err != nil {
			return nil, err
		}
		if root.Behavior != nil {
			if model.Behavior != nil {
				return nil, fmt.Errorf("duplicate behavior mapping %q in %s: only one behavior is allowed", root.Behavior.Name, file)
			}
			model.Behavior = &config.Behavior{Name: root.Behavior.Name, StartState: root.Behavior.StartState}
		}
		for _, s := range root.States {
			model.States = append(model.States, translateState(s))
		}
		for _, t := range root.Transitions {
			model.Transitions = append(model.Transitions, &config.Transition{From: t.From, To: t.To, Event: t.Event})
		}
		for _, w := range root.Wildcards {
			model.Wildcards = append(model.Wildcards, &config.Wildcard{State: w.State, Event: w.Event})
		}
	}

	logger.Debug("YAML loading complete.",
		"states", len(model.States),
		"transitions", len(model.Transitions),
		"wildcards", len(model.Wildcards),
	)
	return model, nil
}

func (l *Loader) parseFile(file string) (*fileRoot, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file %s: %w", file, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var root fileRoot
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return &fileRoot{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &root, nil
}

func translateState(s *stateDoc) *config.State {
	st := &config.State{
		Name:      s.Name,
		Animation: s.Animation,
		Legacy:    s.LegacySequence,
		Looping:   s.Looping,
		OnEnter:   s.OnEnter,
		OnExit:    s.OnExit,
	}
	for _, t := range s.Triggers {
		st.Triggers = append(st.Triggers, &config.Trigger{
			Event:         t.Event,
			LocalTime:     t.LocalTime,
			RelativeToEnd: t.RelativeToEnd,
		})
	}
	return st
}

// findDefinitionFiles resolves the given paths to a deduplicated flat list
// of .yaml/.yml files. Directories are searched recursively.
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
			files, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
			if err != nil {
				return nil, err
			}
			for _, file := range files {
				add(file)
			}
			continue
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			add(path)
		default:
			return nil, fmt.Errorf("not a YAML definition file: %s", path)
		}
	}
	return allFiles, nil
}
