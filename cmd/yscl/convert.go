package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/yscl-lang/go-yscl"
	"github.com/yscl-lang/go-yscl/internal/treefmt"
	"gopkg.in/yaml.v3"
)

// formatter writes a parsed document in one output format.
type formatter func(w io.Writer, doc yscl.Map) error

var formatters = map[string]formatter{
	"json": writeJSON,
	"yaml": writeYAML,
	"toml": writeTOML,
	"tree": writeTree,
	"dump": writeDump,
}

// formatNames returns the supported output formats in sorted order.
func formatNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unknownFormat(name string) error {
	return fmt.Errorf("unknown format: %s (expected one of %s)", name, strings.Join(formatNames(), ", "))
}

// writeJSON writes indented JSON. Object members keep document order.
func writeJSON(w io.Writer, doc yscl.Map) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// writeYAML writes a YAML document built node by node, so mapping keys keep
// document order and every atom stays a string.
func writeYAML(w io.Writer, doc yscl.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(doc)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func toYAML(n yscl.Node) *yaml.Node {
	switch v := n.(type) {
	case yscl.Atom:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value, Style: yaml.DoubleQuotedStyle}

	case yscl.List:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if v.Len() == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, el := range v.Elements {
			out.Content = append(out.Content, toYAML(el))
		}
		return out

	case yscl.Map:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if v.Len() == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, e := range v.Entries {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(e.Key)}
			out.Content = append(out.Content, key, toYAML(e.Value))
		}
		return out
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// writeTOML writes the document as TOML. TOML tables are unordered, so keys
// come out sorted.
func writeTOML(w io.Writer, doc yscl.Map) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(yscl.ToAny(doc)); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// writeTree writes the indented debug rendering used in test output.
func writeTree(w io.Writer, doc yscl.Map) error {
	_, err := fmt.Fprintln(w, treefmt.Format(doc))
	return err
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// writeDump writes the Go representation of the tree.
func writeDump(w io.Writer, doc yscl.Map) error {
	dumpConfig.Fdump(w, doc)
	return nil
}
