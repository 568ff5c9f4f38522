package jsondata

// Reader reads one named member of an object. Method expressions such as
// (*Object).String satisfy it.
type Reader[T any] func(o *Object, name string) (T, error)

// Mandatory binds a member that must be present on a first load. When the
// record was loaded before and the member is absent, dst keeps its value.
func Mandatory[T any](o *Object, wasLoaded bool, name string, dst *T, read Reader[T]) error {
	if !o.Has(name) {
		if wasLoaded {
			return nil
		}
		_, err := o.require(name)
		return err
	}
	v, err := read(o, name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Optional binds a member that may be absent. A first load without the member
// stores def; a reload without it keeps the previous value.
func Optional[T any](o *Object, wasLoaded bool, name string, dst *T, def T, read Reader[T]) error {
	if !o.Has(name) {
		if !wasLoaded {
			*dst = def
		}
		return nil
	}
	v, err := read(o, name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
