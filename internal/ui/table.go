package ui

import (
	"sort"
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key      string
	Header   string
	Align    Align
	MaxWidth int
}

// TableBorder style for tables
type TableBorder int

const (
	BorderUnicode TableBorder = iota
	BorderASCII
	BorderNone
)

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	Border  TableBorder
}

type boxChars struct {
	tl, tr, bl, br  string
	h, v            string
	t, ml, m, mr, b string
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
	noBox = boxChars{v: " "}
)

// RenderTable renders rows as an aligned table with one space of padding.
func RenderTable(opts RenderTableOptions) string {
	box := unicodeBox
	switch opts.Border {
	case BorderASCII:
		box = asciiBox
	case BorderNone:
		box = noBox
	}

	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		w := VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			w = max(w, VisibleWidth(row[col.Key]))
		}
		if col.MaxWidth > 0 {
			w = min(w, col.MaxWidth)
		}
		widths[i] = w
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+2)
		}
		return Muted("%s", left+strings.Join(parts, mid)+right)
	}

	line := func(cell func(col TableColumn) string) string {
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			text := TruncateVisible(cell(col), widths[i])
			if col.Align == AlignRight {
				text = PadLeft(text, widths[i])
			} else {
				text = PadRight(text, widths[i])
			}
			parts[i] = " " + text + " "
		}
		v := Muted("%s", box.v)
		return v + strings.Join(parts, v) + v
	}

	var lines []string
	bordered := opts.Border != BorderNone

	if bordered {
		lines = append(lines, rule(box.tl, box.t, box.tr))
	}
	lines = append(lines, line(func(col TableColumn) string { return Bold("%s", col.Header) }))
	if bordered {
		lines = append(lines, rule(box.ml, box.m, box.mr))
	}
	for _, row := range opts.Rows {
		row := row
		lines = append(lines, line(func(col TableColumn) string { return row[col.Key] }))
	}
	if bordered {
		lines = append(lines, rule(box.bl, box.b, box.br))
	}

	return strings.Join(lines, "\n") + "\n"
}

// RenderSimpleTable renders a key-value listing sorted by key
func RenderSimpleTable(data map[string]string) string {
	keys := make([]string, 0, len(data))
	maxKey := 0
	for k := range data {
		keys = append(keys, k)
		maxKey = max(maxKey, VisibleWidth(k))
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, "  "+Muted("%s", PadRight(k+":", maxKey+1))+"  "+Subtle("%s", data[k]))
	}
	return strings.Join(lines, "\n")
}
