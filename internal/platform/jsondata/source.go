// Package jsondata provides read access to structured data files.
//
// A Source wraps one document. Values, Objects and Arrays are views into the
// source that remember where they came from, so every error they produce names
// the file, line, column and member path of the offending node.
package jsondata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// Source is one parsed JSON document.
type Source struct {
	name       string
	text       string
	positional bool
	lineStarts []int
}

// NewSource validates data as JSON and wraps it.
func NewSource(name string, data []byte) (*Source, error) {
	text := string(data)
	if !gjson.Valid(text) {
		return nil, apperrors.WithMetadata(
			apperrors.CodeMalformedData,
			fmt.Sprintf("%s: invalid JSON", name),
			map[string]string{apperrors.MetaLocation: name},
		)
	}
	src := &Source{name: name, text: text, positional: true}
	src.lineStarts = append(src.lineStarts, 0)
	for i, r := range text {
		if r == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src, nil
}

// NewDerivedSource wraps JSON converted from another format. Byte offsets in the
// converted text say nothing about the original file, so locations only carry
// the member path.
func NewDerivedSource(name string, data []byte) (*Source, error) {
	src, err := NewSource(name, data)
	if err != nil {
		return nil, err
	}
	src.positional = false
	src.lineStarts = nil
	return src, nil
}

// Name returns the source name, usually a file path.
func (s *Source) Name() string {
	return s.name
}

// Root returns the top-level value of the document.
func (s *Source) Root() Value {
	trimmed := strings.TrimLeftFunc(s.text, unicode.IsSpace)
	offset := len(s.text) - len(trimmed)
	return Value{
		src:    s,
		res:    gjson.Parse(trimmed),
		offset: offset,
		path:   "",
	}
}

func (s *Source) lineColumn(offset int) (int, int) {
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - s.lineStarts[lo] + 1
}

// Location identifies a node inside a source.
type Location struct {
	File   string
	Line   int
	Column int
	Path   string
}

// String renders the location as file:line:column (path).
func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.File)
	if l.Line > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(l.Line))
		b.WriteString(":")
		b.WriteString(strconv.Itoa(l.Column))
	}
	if l.Path != "" {
		b.WriteString(" (")
		b.WriteString(l.Path)
		b.WriteString(")")
	}
	return b.String()
}

func memberPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func elementPath(parent string, index int) string {
	return parent + "[" + strconv.Itoa(index) + "]"
}

// escapeKey escapes gjson path syntax in a member name.
func escapeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
