package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"coursegen/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// briefFlags are shared by commands that take a generation brief. Values set
// on the command line override the brief file.
type briefFlags struct {
	path         string
	topic        string
	audience     string
	objectives   []string
	interactions []string
	tone         string
	imageStyle   string
	constraints  []string
}

func (f *briefFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.path, "brief", "", "brief file (JSON or YAML)")
	fl.StringVar(&f.topic, "topic", "", "course topic")
	fl.StringVar(&f.audience, "audience", "", "target audience")
	fl.StringArrayVar(&f.objectives, "objective", nil, "learning objective (repeatable)")
	fl.StringArrayVar(&f.interactions, "interaction", nil, "interaction type: single, multi, truefalse, open (repeatable)")
	fl.StringVar(&f.tone, "tone", "", "instructor tone")
	fl.StringVar(&f.imageStyle, "image-style", "", "illustration style")
	fl.StringArrayVar(&f.constraints, "constraint", nil, "extra constraint for the outline (repeatable)")
}

func (f *briefFlags) brief() (types.GenerationBrief, error) {
	var b types.GenerationBrief
	if f.path != "" {
		if err := readDocument(f.path, &b); err != nil {
			return b, fmt.Errorf("read brief: %w", err)
		}
	}
	setIf(&b.Topic, f.topic)
	setIf(&b.Audience, f.audience)
	setIf(&b.Tone, f.tone)
	setIf(&b.ImageStyle, f.imageStyle)
	if len(f.objectives) > 0 {
		b.Objectives = f.objectives
	}
	if len(f.constraints) > 0 {
		b.Constraints = f.constraints
	}
	if len(f.interactions) > 0 {
		b.InteractionTypes = make([]types.InteractionType, 0, len(f.interactions))
		for _, it := range f.interactions {
			b.InteractionTypes = append(b.InteractionTypes, types.InteractionType(strings.ToLower(strings.TrimSpace(it))))
		}
	}
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// readDocument decodes a JSON or YAML file into v.
func readDocument(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, v)
	default:
		return json.Unmarshal(raw, v)
	}
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func marshalIndent(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
