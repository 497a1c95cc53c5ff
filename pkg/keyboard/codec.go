package keyboard

import (
	"encoding/json"
	"fmt"

	logx "kbkit/pkg/logx"
)

// Kind selects how grid content is keyed inside the reply_markup envelope.
type Kind string

const (
	// KindNone marks a keyboard whose envelope kind has not been chosen
	// yet (a Reply keyboard before Open or Close).
	KindNone Kind = ""
	// KindInline keys inline keyboards.
	KindInline Kind = "inline_keyboard"
	// KindReply keys visible reply keyboards.
	KindReply Kind = "keyboard"
	// KindRemove keys the remove-keyboard form.
	KindRemove Kind = "remove_keyboard"
)

// Markup is the inner reply_markup object: content keyed by keyboard
// kind. The content is either a button grid or, under KindRemove, the
// literal true.
type Markup map[Kind]any

// Envelope is the outer JSON payload handed to the bot API.
type Envelope struct {
	ReplyMarkup Markup `json:"reply_markup"`

	// ResizeKeyboard is set by Reply.Open so clients shrink the key rows
	// to fit their content.
	ResizeKeyboard bool `json:"resize_keyboard,omitempty"`
}

// Codec serializes grids into wire envelopes and digs grid content back
// out of received ones. The kind is mutable: Reply keyboards flip theirs
// between KindReply and KindRemove over their lifecycle.
type Codec[E any] struct {
	kind Kind
	log  logx.Logger
}

// NewCodec returns a codec producing and consuming envelopes keyed by kind.
func NewCodec[E any](kind Kind) *Codec[E] {
	return &Codec[E]{kind: kind}
}

// Kind returns the current envelope kind.
func (c *Codec[E]) Kind() Kind { return c.kind }

// SetKind changes the envelope kind used by Export and ExtractRaw.
func (c *Codec[E]) SetKind(kind Kind) { c.kind = kind }

// SetLogger attaches a logger for extract diagnostics.
func (c *Codec[E]) SetLogger(log logx.Logger) { c.log = log }

// Export wraps rows under the codec's kind. With no kind selected the
// markup object stays empty.
func (c *Codec[E]) Export(rows [][]E) Envelope {
	return c.ExportValue(rows)
}

// ExportValue is Export with the grid content replaced wholesale; Close
// uses it to send the literal true required by the remove-keyboard form.
func (c *Codec[E]) ExportValue(v any) Envelope {
	m := Markup{}
	if c.kind != KindNone {
		m[c.kind] = v
	}
	return Envelope{ReplyMarkup: m}
}

// ExtractRaw returns the markup content keyed by the codec's kind, as raw
// JSON. envelope may be raw JSON bytes, a JSON string, or any
// JSON-marshalable value (an Envelope, a decoded update object, ...).
//
// A missing reply_markup field is diagnosed at warn level and yields an
// empty result without an error; a reply_markup present but not keyed by
// this codec's kind yields an empty result silently.
func (c *Codec[E]) ExtractRaw(envelope any) (json.RawMessage, error) {
	b, err := envelopeBytes(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(b, &outer); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	rm, ok := outer["reply_markup"]
	if !ok {
		c.log.Warn("envelope has no reply_markup", logx.String("kind", string(c.kind)))
		return nil, nil
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(rm, &inner); err != nil {
		return nil, fmt.Errorf("decode reply_markup: %w", err)
	}
	return inner[string(c.kind)], nil
}

// extractRows decodes the content under the codec's kind into rows. Empty
// content yields nil rows and no error.
func (c *Codec[E]) extractRows(envelope any) ([][]E, error) {
	raw, err := c.ExtractRaw(envelope)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var rows [][]E
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAGrid, err)
	}
	return rows, nil
}

// envelopeBytes normalizes the accepted envelope forms to raw JSON.
func envelopeBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return []byte("{}"), nil
	case []byte:
		return x, nil
	case json.RawMessage:
		return []byte(x), nil
	case string:
		return []byte(x), nil
	default:
		return json.Marshal(v)
	}
}
