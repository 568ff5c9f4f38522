// Package factory holds loaded records keyed by string identifier.
//
// A Factory is filled during a single-threaded load phase and read afterwards.
// It has no internal locking: Load and Reset must not race with each other or
// with readers. Once loading is done, any number of goroutines may call the
// read methods.
package factory

import (
	"fmt"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
)

// LoadFunc fills def from obj. wasLoaded is true when def already holds a
// record loaded under the same id, in which case members absent from obj must
// keep their current values. The loader must not retain obj.
type LoadFunc[T any] func(obj *jsondata.Object, id StringID[T], def *T, wasLoaded bool) error

// Factory stores records of type T in load order.
type Factory[T any] struct {
	typeName string
	null     T
	load     LoadFunc[T]

	list  []T
	index map[StringID[T]]int
}

// New returns an empty factory. null is returned by Obj for unknown ids.
func New[T any](typeName string, null T, load LoadFunc[T]) *Factory[T] {
	return &Factory[T]{
		typeName: typeName,
		null:     null,
		load:     load,
		index:    map[StringID[T]]int{},
	}
}

// Load parses one record from obj and stores it under its "id" member.
//
// A new id appends a record. A known id loads into a copy of the stored record
// with wasLoaded set, then replaces it in place, so the record keeps its
// position. Any error leaves the factory unchanged.
func (f *Factory[T]) Load(obj *jsondata.Object) (StringID[T], error) {
	raw, err := obj.String("id")
	if err != nil {
		return "", err
	}
	if !ValidID(raw) {
		return "", obj.FailCode(apperrors.CodeInvalidID, fmt.Sprintf("invalid %s id %q", f.typeName, raw), "id")
	}
	id := StringID[T](raw)

	pos, wasLoaded := f.index[id]
	var def T
	if wasLoaded {
		def = f.list[pos]
	}
	if err := f.load(obj, id, &def, wasLoaded); err != nil {
		return "", err
	}

	if wasLoaded {
		f.list[pos] = def
		return id, nil
	}
	f.index[id] = len(f.list)
	f.list = append(f.list, def)
	return id, nil
}

// IsValid reports whether id names a stored record.
func (f *Factory[T]) IsValid(id StringID[T]) bool {
	_, ok := f.index[id]
	return ok
}

// Obj returns the record stored under id, or the null record when there is
// none. Callers that need to tell the two apart use IsValid.
func (f *Factory[T]) Obj(id StringID[T]) T {
	obj, _ := f.Lookup(id)
	return obj
}

// Lookup returns the record stored under id and whether it exists. A
// missing id yields the null record.
func (f *Factory[T]) Lookup(id StringID[T]) (T, bool) {
	pos, ok := f.index[id]
	if !ok {
		return f.null, false
	}
	return f.list[pos], true
}

// All returns every stored record in load order. The slice aliases the
// factory's storage: callers must not modify it, and it is only meaningful
// until the next Load or Reset.
func (f *Factory[T]) All() []T {
	return f.list[:len(f.list):len(f.list)]
}

// Len returns the number of stored records.
func (f *Factory[T]) Len() int {
	return len(f.list)
}

// Reset drops every record. Ids handed out earlier stay well-formed but
// resolve to the null record until loaded again.
func (f *Factory[T]) Reset() {
	f.list = nil
	f.index = map[StringID[T]]int{}
}
