package keyboard

import (
	"encoding/json"

	logx "kbkit/pkg/logx"
)

// Inline builds inline keyboards: callback and URL buttons attached to a
// message, exported under the inline_keyboard envelope key.
type Inline struct {
	Grid[Button]

	codec Codec[Button]
}

// NewInline returns an inline keyboard. Seed buttons, when given, become
// row 0. Seeds without text are dropped like any other entry; if none
// survive, the keyboard starts with no rows at all.
func NewInline(seed ...Button) *Inline {
	k := &Inline{codec: Codec[Button]{kind: KindInline}}
	k.accept = hasText
	for _, b := range seed {
		if hasText(b) {
			k.AddRow(seed...)
			break
		}
	}
	return k
}

// SplitInto arranges buttons into rows of at most perRow entries each,
// preserving order. perRow values below 1 are raised to 1.
func SplitInto(perRow int, buttons ...Button) *Inline {
	if perRow < 1 {
		perRow = 1
	}
	k := NewInline()
	for len(buttons) > 0 {
		n := min(perRow, len(buttons))
		k.AddRow(buttons[:n]...)
		buttons = buttons[n:]
	}
	return k
}

// Confirm builds the common one-row yes/no confirmation keyboard.
func Confirm(yes, no Button) *Inline {
	return NewInline(yes, no)
}

// Kind returns the envelope kind, always KindInline.
func (k *Inline) Kind() Kind { return k.codec.Kind() }

// Export wraps the current rows in the wire envelope.
func (k *Inline) Export() Envelope {
	return k.codec.Export(k.Rows())
}

// Extract pulls inline-keyboard rows out of a received envelope. An
// envelope without inline content yields nil rows and no error.
func (k *Inline) Extract(envelope any) ([][]Button, error) {
	return k.codec.extractRows(envelope)
}

// ExtractRaw is Extract without the row decoding: it returns whatever
// JSON sits under the inline_keyboard key, or nil when there is none.
func (k *Inline) ExtractRaw(envelope any) (json.RawMessage, error) {
	return k.codec.ExtractRaw(envelope)
}

// SetLogger attaches a logger to both the grid and the codec.
func (k *Inline) SetLogger(log logx.Logger) {
	k.Grid.SetLogger(log)
	k.codec.SetLogger(log)
}
