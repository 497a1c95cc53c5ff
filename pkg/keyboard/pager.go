package keyboard

import "strconv"

// PageSlice returns the 0-based page of items and whether neighbouring
// pages exist. size values below 1 fall back to 10; negative pages read
// as page 0.
func PageSlice[T any](items []T, page, size int) (sub []T, hasPrev, hasNext bool) {
	if size < 1 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	start := page * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page > 0, end < len(items)
}

// NavRow builds a pagination row: "« Prev" / "Next »" buttons whose
// callback data is CallbackData(namespace, action, <target page>).
// Neighbours that do not exist produce no button, so the row may be
// empty on a single-page keyboard.
func NavRow(namespace, action string, page int, hasPrev, hasNext bool) []Button {
	var row []Button
	if hasPrev {
		row = append(row, Btn("« Prev", CallbackData(namespace, action, strconv.Itoa(page-1))))
	}
	if hasNext {
		row = append(row, Btn("Next »", CallbackData(namespace, action, strconv.Itoa(page+1))))
	}
	return row
}

// Paginate builds one page of an inline keyboard from a flat button
// list: the page's buttons arranged perRow wide, then a nav row when
// neighbouring pages exist.
func Paginate(namespace, action string, buttons []Button, page, perPage, perRow int) *Inline {
	if page < 0 {
		page = 0
	}
	sub, hasPrev, hasNext := PageSlice(buttons, page, perPage)
	k := SplitInto(perRow, sub...)
	if nav := NavRow(namespace, action, page, hasPrev, hasNext); len(nav) > 0 {
		k.AddRow(nav...)
	}
	return k
}
