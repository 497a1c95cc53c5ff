package keyboard

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// MaxCallbackDataLen is Telegram's callback_data size limit in bytes.
// It applies to the full "namespace:action:payload" string.
const MaxCallbackDataLen = 64

// ErrDataTooLong is returned by CheckCallbackData when callback_data
// exceeds MaxCallbackDataLen.
var ErrDataTooLong = errors.New("keyboard: callback_data too long")

// CallbackData formats callback data as "namespace:action:payload". The
// payload is kept as-is (no escaping); for structured payloads use
// PackJSON.
func CallbackData(namespace, action, payload string) string {
	namespace = strings.TrimSpace(namespace)
	action = strings.TrimSpace(action)
	if payload == "" {
		return namespace + ":" + action
	}
	return namespace + ":" + action + ":" + payload
}

// ParseCallbackData splits "namespace:action:payload" back into its
// parts. The payload may be empty; ok is false when data has no action
// part at all.
func ParseCallbackData(data string) (namespace, action, payload string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(data), ":", 3)
	if len(parts) < 2 {
		return "", "", "", false
	}
	namespace = parts[0]
	action = parts[1]
	if len(parts) == 3 {
		payload = parts[2]
	}
	return namespace, action, payload, true
}

// CheckCallbackData reports whether data fits Telegram's callback_data
// limit. Buttons are not checked implicitly; callers validate where the
// data is composed.
func CheckCallbackData(data string) error {
	if len(data) > MaxCallbackDataLen {
		return ErrDataTooLong
	}
	return nil
}

// PackJSON marshals v to JSON then Base64URL encodes it (no padding),
// suitable for the payload part of "namespace:action:payload".
func PackJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UnpackJSON decodes a base64url payload then unmarshals it into v.
func UnpackJSON(payload string, v any) error {
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
