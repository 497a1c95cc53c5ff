package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"kbkit/pkg/keyboard"
)

// Keyboard kinds accepted in definition files.
const (
	KindInline = "inline"
	KindReply  = "reply"
)

var (
	// ErrNotFound is returned by Find for names the file does not define.
	ErrNotFound = errors.New("layout: keyboard not found")

	// ErrUnknownKind is returned for a definition whose kind is neither
	// inline nor reply.
	ErrUnknownKind = errors.New("layout: unknown keyboard kind")

	// ErrDuplicateName is returned when two definitions share a name.
	ErrDuplicateName = errors.New("layout: duplicate keyboard name")

	// ErrKindMismatch is returned by the Build helpers when the definition
	// declares the other kind.
	ErrKindMismatch = errors.New("layout: keyboard kind mismatch")
)

// File is one parsed definition document.
type File struct {
	Keyboards []Definition `json:"keyboards"`
}

// Definition declares one keyboard: its lookup name, kind and button rows.
type Definition struct {
	Name string        `json:"name"`
	Kind string        `json:"kind"`
	Rows [][]ButtonDef `json:"rows"`
}

// ButtonDef carries the button fields of both kinds; the Build helpers
// pick the ones their kind understands.
type ButtonDef struct {
	Text            string `json:"text"`
	Data            string `json:"data,omitempty"`
	URL             string `json:"url,omitempty"`
	SwitchInline    string `json:"switch_inline_query,omitempty"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

// UnmarshalJSON accepts the object form and the bare-string shorthand.
// Object fields are checked strictly even though the outer decoder cannot
// see inside a custom unmarshaler.
func (b *ButtonDef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = ButtonDef{Text: s}
		return nil
	}
	type plain ButtonDef
	var p plain
	if err := decodeStrict(data, &p); err != nil {
		return err
	}
	*b = ButtonDef(p)
	return nil
}

// Load reads and parses a definition file. The format follows the file
// extension: .yaml/.yml are YAML, everything else is JSON.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, b)
}

// Parse decodes data in the format implied by path's extension and
// validates the definitions.
func Parse(path string, data []byte) (*File, error) {
	jb, err := coerceToJSONBytes(path, data)
	if err != nil {
		return nil, err
	}

	var f File
	if err := decodeStrict(jb, &f); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Find returns the definition named name.
func (f *File) Find(name string) (*Definition, error) {
	for i := range f.Keyboards {
		if f.Keyboards[i].Name == name {
			return &f.Keyboards[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the defined keyboard names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Keyboards))
	for i := range f.Keyboards {
		names[i] = f.Keyboards[i].Name
	}
	return names
}

func (f *File) validate() error {
	seen := make(map[string]struct{}, len(f.Keyboards))
	for i := range f.Keyboards {
		d := &f.Keyboards[i]
		if d.Name == "" {
			return fmt.Errorf("keyboard %d: name is required", i)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("keyboard %q: %w", d.Name, ErrDuplicateName)
		}
		seen[d.Name] = struct{}{}

		switch d.Kind {
		case KindInline:
			// The inline builder drops textless buttons silently; in a
			// definition file that is a mistake worth failing loudly on.
			for ri, row := range d.Rows {
				for bi, b := range row {
					if b.Text == "" {
						return fmt.Errorf("keyboard %q row %d button %d: text is required", d.Name, ri, bi)
					}
				}
			}
		case KindReply:
		default:
			return fmt.Errorf("keyboard %q: %w %q", d.Name, ErrUnknownKind, d.Kind)
		}
	}
	return nil
}

// BuildInline assembles the inline keyboard this definition declares.
func (d *Definition) BuildInline() (*keyboard.Inline, error) {
	if d.Kind != KindInline {
		return nil, fmt.Errorf("keyboard %q: %w: declared %q", d.Name, ErrKindMismatch, d.Kind)
	}
	k := keyboard.NewInline()
	for _, row := range d.Rows {
		buttons := make([]keyboard.Button, len(row))
		for j, b := range row {
			buttons[j] = keyboard.Button{
				Text:         b.Text,
				Data:         b.Data,
				URL:          b.URL,
				SwitchInline: b.SwitchInline,
			}
		}
		k.AddRow(buttons...)
	}
	return k, nil
}

// BuildReply assembles the reply keyboard this definition declares. The
// keyboard starts unopened; the caller decides between Open and Close.
func (d *Definition) BuildReply() (*keyboard.Reply, error) {
	if d.Kind != KindReply {
		return nil, fmt.Errorf("keyboard %q: %w: declared %q", d.Name, ErrKindMismatch, d.Kind)
	}
	r := keyboard.NewReply()
	for _, row := range d.Rows {
		keys := make([]keyboard.KeyButton, len(row))
		for j, b := range row {
			keys[j] = keyboard.KeyButton{
				Text:            b.Text,
				RequestContact:  b.RequestContact,
				RequestLocation: b.RequestLocation,
			}
		}
		r.AddRow(keys...)
	}
	return r, nil
}

// coerceToJSONBytes converts YAML definition files to JSON bytes so one
// strict JSON decoder (DisallowUnknownFields) serves both formats.
func coerceToJSONBytes(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	v = normalizeYAML(v)

	j, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml->json marshal: %w", err)
	}
	return j, nil
}

// normalizeYAML ensures all map keys are strings so the result can be
// JSON-marshaled.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}

// decodeStrict decodes JSON rejecting unknown fields and trailing tokens
// (e.g. concatenated documents).
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("layout: trailing data")
		}
		return err
	}
	return nil
}
