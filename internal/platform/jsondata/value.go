package jsondata

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// Value is any node in a source.
type Value struct {
	src    *Source
	res    gjson.Result
	offset int
	path   string
}

// Exists reports whether the value is present.
func (v Value) Exists() bool { return v.res.Exists() }

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool { return v.res.IsObject() }

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool { return v.res.IsArray() }

// IsNumber reports whether the value is a JSON number.
func (v Value) IsNumber() bool { return v.res.Type == gjson.Number }

// IsString reports whether the value is a JSON string.
func (v Value) IsString() bool { return v.res.Type == gjson.String }

// IsBool reports whether the value is true or false.
func (v Value) IsBool() bool { return v.res.IsBool() }

// Raw returns the raw JSON text of the value.
func (v Value) Raw() string { return v.res.Raw }

// Path returns the member path from the document root.
func (v Value) Path() string { return v.path }

// Location returns where the value sits in its source.
func (v Value) Location() Location {
	loc := Location{Path: v.path}
	if v.src == nil {
		return loc
	}
	loc.File = v.src.name
	if v.src.positional {
		loc.Line, loc.Column = v.src.lineColumn(v.offset)
	}
	return loc
}

// Object returns the value as an object.
func (v Value) Object() (*Object, error) {
	if !v.IsObject() {
		return nil, v.fail(apperrors.CodeInvalidField, "expected object", "")
	}
	return &Object{v: v}, nil
}

// Array returns the value as an array.
func (v Value) Array() (*Array, error) {
	if !v.IsArray() {
		return nil, v.fail(apperrors.CodeInvalidField, "expected array", "")
	}
	return &Array{v: v, n: int(gjson.Get(v.res.Raw, "#").Int())}, nil
}

// Float returns the value as a number.
func (v Value) Float() (float64, error) {
	if !v.IsNumber() {
		return 0, v.fail(apperrors.CodeInvalidField, "expected number", "")
	}
	return v.res.Num, nil
}

// Int returns the value as an integral number.
func (v Value) Int() (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, v.fail(apperrors.CodeInvalidField, fmt.Sprintf("expected integer, got %s", v.res.Raw), "")
	}
	return int(f), nil
}

// Str returns the value as a string.
func (v Value) Str() (string, error) {
	if !v.IsString() {
		return "", v.fail(apperrors.CodeInvalidField, "expected string", "")
	}
	return v.res.Str, nil
}

// Bool returns the value as a boolean.
func (v Value) Bool() (bool, error) {
	if !v.IsBool() {
		return false, v.fail(apperrors.CodeInvalidField, "expected boolean", "")
	}
	return v.res.Bool(), nil
}

func (v Value) child(path, gpath string) Value {
	res := gjson.Get(v.res.Raw, gpath)
	return Value{
		src:    v.src,
		res:    res,
		offset: v.offset + res.Index,
		path:   path,
	}
}

// fail builds a location-tagged error for this value.
func (v Value) fail(code apperrors.Code, message, field string) *apperrors.Error {
	loc := v.Location().String()
	text := loc + ": " + message
	meta := map[string]string{apperrors.MetaLocation: loc}
	if field != "" {
		text = fmt.Sprintf("%s: %s (field %q)", loc, message, field)
		meta[apperrors.MetaField] = field
	}
	return apperrors.WithMetadata(code, text, meta)
}
