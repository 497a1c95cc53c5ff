package keyboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	logx "kbkit/pkg/logx"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestExportInlineEnvelope(t *testing.T) {
	t.Parallel()
	c := NewCodec[Button](KindInline)
	env := c.Export([][]Button{{{Text: "Hi"}}})

	want := `{"reply_markup":{"inline_keyboard":[[{"text":"Hi"}]]}}`
	if got := mustJSON(t, env); got != want {
		t.Fatalf("envelope = %s, want %s", got, want)
	}
}

func TestExportValueRemoveForm(t *testing.T) {
	t.Parallel()
	c := NewCodec[KeyButton](KindRemove)
	env := c.ExportValue(true)

	want := `{"reply_markup":{"remove_keyboard":true}}`
	if got := mustJSON(t, env); got != want {
		t.Fatalf("envelope = %s, want %s", got, want)
	}
}

func TestExportWithoutKind(t *testing.T) {
	t.Parallel()
	c := NewCodec[KeyButton](KindNone)
	env := c.Export(nil)

	want := `{"reply_markup":{}}`
	if got := mustJSON(t, env); got != want {
		t.Fatalf("envelope = %s, want %s", got, want)
	}
}

func TestExportEmptyRowSerializesAsArray(t *testing.T) {
	t.Parallel()
	c := NewCodec[Button](KindInline)
	env := c.Export([][]Button{{}})

	want := `{"reply_markup":{"inline_keyboard":[[]]}}`
	if got := mustJSON(t, env); got != want {
		t.Fatalf("envelope = %s, want %s", got, want)
	}
}

func TestExtractRawAcceptedForms(t *testing.T) {
	t.Parallel()
	const envelope = `{"reply_markup":{"inline_keyboard":[[{"text":"x"}]]}}`
	const wantRaw = `[[{"text":"x"}]]`

	c := NewCodec[Button](KindInline)
	tests := []struct {
		name     string
		envelope any
	}{
		{name: "string", envelope: envelope},
		{name: "bytes", envelope: []byte(envelope)},
		{name: "raw message", envelope: json.RawMessage(envelope)},
		{name: "struct", envelope: c.Export([][]Button{{{Text: "x"}}})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			raw, err := c.ExtractRaw(tt.envelope)
			if err != nil {
				t.Fatalf("ExtractRaw error: %v", err)
			}
			if string(raw) != wantRaw {
				t.Fatalf("raw = %s, want %s", raw, wantRaw)
			}
		})
	}
}

func TestExtractRawMissingMarkupWarns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewCodec[Button](KindInline)
	c.SetLogger(logx.NewWriter(&buf, "warn"))

	raw, err := c.ExtractRaw(map[string]any{"message_id": 7})
	if err != nil {
		t.Fatalf("ExtractRaw error: %v", err)
	}
	if raw != nil {
		t.Fatalf("raw = %s, want nil", raw)
	}

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("log output lacks warn level: %s", out)
	}
	if !strings.Contains(out, "envelope has no reply_markup") {
		t.Fatalf("log output lacks diagnostic: %s", out)
	}
}

func TestExtractRawNilEnvelope(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewCodec[Button](KindInline)
	c.SetLogger(logx.NewWriter(&buf, "warn"))

	raw, err := c.ExtractRaw(nil)
	if err != nil {
		t.Fatalf("ExtractRaw(nil) error: %v", err)
	}
	if raw != nil {
		t.Fatalf("raw = %s, want nil", raw)
	}
	if !strings.Contains(buf.String(), "envelope has no reply_markup") {
		t.Fatalf("log output lacks diagnostic: %s", buf.String())
	}
}

func TestExtractRawOtherKindIsSilent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewCodec[Button](KindInline)
	c.SetLogger(logx.NewWriter(&buf, "warn"))

	raw, err := c.ExtractRaw(`{"reply_markup":{"keyboard":[[{"text":"x"}]]}}`)
	if err != nil {
		t.Fatalf("ExtractRaw error: %v", err)
	}
	if raw != nil {
		t.Fatalf("raw = %s, want nil", raw)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestExtractRawMalformedEnvelope(t *testing.T) {
	t.Parallel()
	c := NewCodec[Button](KindInline)
	if _, err := c.ExtractRaw(`{"reply_markup":`); err == nil {
		t.Fatal("expected error for malformed envelope")
	}
}

func TestExtractRowsNotAGrid(t *testing.T) {
	t.Parallel()
	c := NewCodec[KeyButton](KindRemove)
	_, err := c.extractRows(`{"reply_markup":{"remove_keyboard":true}}`)
	if !errors.Is(err, ErrNotAGrid) {
		t.Fatalf("extractRows error = %v, want ErrNotAGrid", err)
	}
}

func TestExtractRowsEmptyContent(t *testing.T) {
	t.Parallel()
	c := NewCodec[Button](KindInline)
	rows, err := c.extractRows(`{"reply_markup":{}}`)
	if err != nil {
		t.Fatalf("extractRows error: %v", err)
	}
	if rows != nil {
		t.Fatalf("rows = %v, want nil", rows)
	}
}

func TestSetKind(t *testing.T) {
	t.Parallel()
	c := NewCodec[KeyButton](KindNone)
	if c.Kind() != KindNone {
		t.Fatalf("Kind() = %q, want %q", c.Kind(), KindNone)
	}
	c.SetKind(KindReply)
	if c.Kind() != KindReply {
		t.Fatalf("Kind() = %q, want %q", c.Kind(), KindReply)
	}
}
