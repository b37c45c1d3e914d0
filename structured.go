package braces

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

const structuredIndent = "  "

func trimNewlines(b *Buffer) {
	b.buf = bytes.TrimRight(b.buf, "\n")
}

type jsonValue struct{ v any }

// JSON returns a Formatter that encodes v as JSON. The default specifier
// gives compact output, debug indents with two spaces.
func JSON(v any) Formatter { return jsonValue{v: v} }

func (j jsonValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	switch spec.Kind {
	case KindDefault, KindDebug:
	default:
		return nil, illegal("json", spec.Kind)
	}
	out := NewBuffer(64, alloc)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if spec.Kind == KindDebug {
		enc.SetIndent("", structuredIndent)
	}
	if err := enc.Encode(j.v); err != nil {
		out.Free()
		return nil, err
	}
	trimNewlines(out)
	return out, nil
}

type yamlValue struct{ v any }

// YAML returns a Formatter that encodes v as a YAML document. Debug uses a
// two space indent instead of the encoder's default of four.
func YAML(v any) Formatter { return yamlValue{v: v} }

func (y yamlValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	switch spec.Kind {
	case KindDefault, KindDebug:
	default:
		return nil, illegal("yaml", spec.Kind)
	}
	out := NewBuffer(64, alloc)
	enc := yaml.NewEncoder(out)
	if spec.Kind == KindDebug {
		enc.SetIndent(len(structuredIndent))
	}
	if err := enc.Encode(y.v); err != nil {
		out.Free()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		out.Free()
		return nil, err
	}
	trimNewlines(out)
	return out, nil
}
