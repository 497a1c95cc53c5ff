package keyboard

import "encoding/json"

// Button is one inline-keyboard button.
//
// Text is mandatory on the wire; AddRow drops buttons without it. The
// remaining fields are action identifiers and are mutually exclusive in
// practice, but the builder does not police that.
type Button struct {
	Text         string `json:"text"`
	Data         string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
	SwitchInline string `json:"switch_inline_query,omitempty"`
}

// Btn creates a callback button with raw callback_data (nothing is encoded).
func Btn(text, data string) Button {
	return Button{Text: text, Data: data}
}

// URLBtn creates a URL button.
func URLBtn(text, url string) Button {
	return Button{Text: text, URL: url}
}

// hasText is the entry filter for inline grids.
func hasText(b Button) bool { return b.Text != "" }

// KeyButton is one reply-keyboard key.
type KeyButton struct {
	Text            string `json:"text"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

// Key creates a plain text key.
func Key(text string) KeyButton { return KeyButton{Text: text} }

// UnmarshalJSON accepts both the object form and the bare-string shorthand
// the wire allows for reply keys.
func (k *KeyButton) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = KeyButton{Text: s}
		return nil
	}
	type plain KeyButton
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*k = KeyButton(p)
	return nil
}
