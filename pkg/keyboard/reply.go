package keyboard

import (
	"encoding/json"

	logx "kbkit/pkg/logx"
)

// Reply builds visible reply keyboards: rows of keys shown under the
// input field, with an open/close lifecycle that flips the envelope
// between the keyboard and remove_keyboard forms.
type Reply struct {
	Grid[KeyButton]

	codec Codec[KeyButton]

	// keys logs every key ever added, in add order, across all rows.
	keys []KeyButton
}

// NewReply returns a reply keyboard. Initial keys, when given, become
// row 0. The envelope kind stays unset until Open or Close is called.
func NewReply(keys ...KeyButton) *Reply {
	r := &Reply{codec: Codec[KeyButton]{kind: KindNone}}
	r.onAdd = func(k KeyButton) { r.keys = append(r.keys, k) }
	if len(keys) > 0 {
		r.AddRow(keys...)
	}
	return r
}

// Kind returns the current envelope kind: KindNone before the first Open
// or Close, then whichever of KindReply/KindRemove was selected last.
func (r *Reply) Kind() Kind { return r.codec.Kind() }

// Keys returns every key ever added, in add order. The log only grows:
// removing or clearing rows does not remove their keys from it.
func (r *Reply) Keys() []KeyButton {
	out := make([]KeyButton, len(r.keys))
	copy(out, r.keys)
	return out
}

// Export wraps the current rows in the wire envelope under the current
// kind. Before Open/Close the reply_markup object is empty.
func (r *Reply) Export() Envelope {
	return r.codec.Export(r.Rows())
}

// Open selects the visible-keyboard form and exports the current rows.
// resize_keyboard is set so clients shrink the key rows to fit.
func (r *Reply) Open() Envelope {
	r.codec.SetKind(KindReply)
	env := r.codec.Export(r.Rows())
	env.ResizeKeyboard = true
	return env
}

// Close selects the remove-keyboard form. The envelope carries the
// literal true in place of a grid, whatever rows the keyboard holds.
func (r *Reply) Close() Envelope {
	r.codec.SetKind(KindRemove)
	return r.codec.ExportValue(true)
}

// Extract pulls key rows out of a received envelope, keyed by the
// current kind. An envelope without matching content yields nil rows and
// no error.
func (r *Reply) Extract(envelope any) ([][]KeyButton, error) {
	return r.codec.extractRows(envelope)
}

// ExtractRaw is Extract without the row decoding: it returns whatever
// JSON sits under the current kind's key, or nil when there is none.
func (r *Reply) ExtractRaw(envelope any) (json.RawMessage, error) {
	return r.codec.ExtractRaw(envelope)
}

// SetLogger attaches a logger to both the grid and the codec.
func (r *Reply) SetLogger(log logx.Logger) {
	r.Grid.SetLogger(log)
	r.codec.SetLogger(log)
}
