// Package keyboard builds the two reply-markup keyboard kinds understood
// by the Telegram bot API and serializes them into their wire envelopes:
//   - Inline: grids of callback/url buttons attached under a message
//   - Reply: custom key rows replacing the system keyboard, with an
//     open/close lifecycle (show the keys vs. remove them)
//
// Both kinds share one grid engine (Grid): ordered, possibly empty rows of
// buttons with index-wrapping mutation operations. Export produces the
// JSON-ready envelope and Extract digs grid content back out of received
// payloads. Sending, transport and authentication belong to the caller.
//
// Keyboards are plain in-memory values and are not safe for concurrent
// use; each instance belongs to the goroutine that created it.
package keyboard
