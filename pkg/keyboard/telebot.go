package keyboard

import (
	tele "gopkg.in/telebot.v4"
)

// TelebotMarkup converts the inline keyboard to a telebot ReplyMarkup,
// ready to pass as a send option.
func (k *Inline) TelebotMarkup() *tele.ReplyMarkup {
	rows := k.Rows()
	grid := make([][]tele.InlineButton, len(rows))
	for i, row := range rows {
		grid[i] = make([]tele.InlineButton, len(row))
		for j, b := range row {
			grid[i][j] = tele.InlineButton{
				Text:        b.Text,
				Data:        b.Data,
				URL:         b.URL,
				InlineQuery: b.SwitchInline,
			}
		}
	}
	return &tele.ReplyMarkup{InlineKeyboard: grid}
}

// TelebotMarkup converts the reply keyboard to a telebot ReplyMarkup in
// its visible form, matching what Open exports.
func (r *Reply) TelebotMarkup() *tele.ReplyMarkup {
	rows := r.Rows()
	grid := make([][]tele.ReplyButton, len(rows))
	for i, row := range rows {
		grid[i] = make([]tele.ReplyButton, len(row))
		for j, key := range row {
			grid[i][j] = tele.ReplyButton{
				Text:     key.Text,
				Contact:  key.RequestContact,
				Location: key.RequestLocation,
			}
		}
	}
	return &tele.ReplyMarkup{ReplyKeyboard: grid, ResizeKeyboard: true}
}

// TelebotRemove returns the telebot form of the remove-keyboard payload,
// matching what Close exports.
func TelebotRemove() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// InlineFromTelebot rebuilds an Inline keyboard from a telebot
// ReplyMarkup, row by row. A nil markup yields an empty keyboard.
func InlineFromTelebot(rm *tele.ReplyMarkup) *Inline {
	k := NewInline()
	if rm == nil {
		return k
	}
	for _, row := range rm.InlineKeyboard {
		buttons := make([]Button, len(row))
		for j, b := range row {
			buttons[j] = Button{
				Text:         b.Text,
				Data:         b.Data,
				URL:          b.URL,
				SwitchInline: b.InlineQuery,
			}
		}
		k.AddRow(buttons...)
	}
	return k
}

// ReplyFromTelebot rebuilds a Reply keyboard from a telebot ReplyMarkup,
// row by row. A nil markup yields an empty keyboard.
func ReplyFromTelebot(rm *tele.ReplyMarkup) *Reply {
	r := NewReply()
	if rm == nil {
		return r
	}
	for _, row := range rm.ReplyKeyboard {
		keys := make([]KeyButton, len(row))
		for j, b := range row {
			keys[j] = KeyButton{
				Text:            b.Text,
				RequestContact:  b.Contact,
				RequestLocation: b.Location,
			}
		}
		r.AddRow(keys...)
	}
	return r
}
