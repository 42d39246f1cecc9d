// internal/config/config.go
//
// This package loads site configurations: a YAML mapping from build name to
// the ordered list of modules/dependencies that build requires. The document
// is decoded through yaml.Node instead of a Go map so that declaration order
// survives and duplicate keys can be rejected instead of silently overwritten.

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harten/deploy/internal/build"
)

// Error describes a malformed or ambiguous site configuration. The orderer is
// never run on a document that produced one.
type Error struct {
	File string
	Line int
	Msg  string
}

func (e *Error) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("config: %s:%d: %s", e.File, e.Line, e.Msg)
	case e.File != "":
		return fmt.Sprintf("config: %s: %s", e.File, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("config: line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("config: %s", e.Msg)
	}
}

// Load reads and parses the site configuration at path.
func Load(path string) (build.Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return build.Deployment{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	deployment, err := Parse(data)
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) && cfgErr.File == "" {
			cfgErr.File = path
		}
		return build.Deployment{}, err
	}
	return deployment, nil
}

// Parse decodes a site configuration document. An empty document yields an
// empty deployment.
func Parse(data []byte) (build.Deployment, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return build.Deployment{}, &Error{Msg: err.Error()}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return build.Deployment{}, nil
	}
	doc := root.Content[0]
	if doc.Tag == "!!null" {
		return build.Deployment{}, nil
	}
	if doc.Kind != yaml.MappingNode {
		return build.Deployment{}, &Error{
			Line: doc.Line,
			Msg:  "site configuration must be a mapping of build name to dependency list",
		}
	}

	var deployment build.Deployment
	seen := make(map[string]int, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return build.Deployment{}, &Error{Line: key.Line, Msg: "build name must be a string"}
		}
		if first, dup := seen[key.Value]; dup {
			return build.Deployment{}, &Error{
				Line: key.Line,
				Msg:  fmt.Sprintf("duplicate build %q (first declared on line %d)", key.Value, first),
			}
		}
		seen[key.Value] = key.Line

		deps, err := dependencyList(key.Value, value)
		if err != nil {
			return build.Deployment{}, err
		}
		b, err := build.NewBuild(key.Value, deps)
		if err != nil {
			return build.Deployment{}, &Error{Line: key.Line, Msg: err.Error()}
		}
		deployment.Append(b)
	}
	return deployment, nil
}

// dependencyList extracts the dependency spec strings for one build entry.
// A null value stands for "no dependencies".
func dependencyList(name string, value *yaml.Node) ([]string, error) {
	if value.Tag == "!!null" {
		return nil, nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, &Error{
			Line: value.Line,
			Msg:  fmt.Sprintf("build %q: dependencies must be a sequence of package strings", name),
		}
	}
	deps := make([]string, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, &Error{
				Line: item.Line,
				Msg:  fmt.Sprintf("build %q: dependency entries must be package strings", name),
			}
		}
		deps = append(deps, item.Value)
	}
	return deps, nil
}
