package distribution

import (
	"github.com/louisbranch/gamedata/internal/platform/diag"
	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
)

// Load reads a distribution object. Exactly one shape is recognized, checked
// in this order:
//
//	{"constant": 2}
//	{"one_in": 4}
//	{"dice": [count, sides]}
//	{"rng": [low, high]}
//	{"sum": [{...}, {...}, ...]}
//
// An object matching none of them is a fatal error. Parameters that are
// present but unusable, such as a one_in of 1, are reported through report and
// replaced by the zero distribution.
func Load(obj *jsondata.Object, report diag.Reporter) (Distribution, error) {
	report = diag.Or(report)

	if obj.HasNumber("constant") {
		v, err := obj.Float("constant")
		if err != nil {
			return Zero(), err
		}
		return Constant(v), nil
	}

	if obj.HasNumber("one_in") {
		chance, err := obj.Float("one_in")
		if err != nil {
			return Zero(), err
		}
		d, err := OneIn(chance)
		return keep(obj, "one_in", report, d, err), nil
	}

	if obj.HasArray("dice") {
		count, sides, err := pair(obj, "dice")
		if err != nil {
			return Zero(), err
		}
		d, err := Dice(count, sides)
		return keep(obj, "dice", report, d, err), nil
	}

	if obj.HasArray("rng") {
		low, high, err := pair(obj, "rng")
		if err != nil {
			return Zero(), err
		}
		return Range(low, high), nil
	}

	if obj.HasArray("sum") {
		arr, err := obj.Array("sum")
		if err != nil {
			return Zero(), err
		}
		if !arr.HasMore() {
			return Zero(), obj.FailCode(apperrors.CodeDistributionInvalid, "Empty distribution sum", "sum")
		}
		first, err := arr.NextObject()
		if err != nil {
			return Zero(), err
		}
		ret, err := Load(first, report)
		if err != nil {
			return Zero(), err
		}
		for arr.HasMore() {
			next, err := arr.NextObject()
			if err != nil {
				return Zero(), err
			}
			d, err := Load(next, report)
			if err != nil {
				return Zero(), err
			}
			ret = ret.Add(d)
		}
		return ret, nil
	}

	return Zero(), obj.FailCode(apperrors.CodeDistributionInvalid, "Invalid distribution", "")
}

// LoadField reads the named member of obj as a distribution. An absent member
// is the zero distribution, a number is a constant and an object is parsed by
// Load. Any other type is a fatal error.
func LoadField(obj *jsondata.Object, name string, report diag.Reporter) (Distribution, error) {
	if !obj.Has(name) {
		return Zero(), nil
	}
	if obj.HasNumber(name) {
		v, err := obj.Float(name)
		if err != nil {
			return Zero(), err
		}
		return Constant(v), nil
	}
	if obj.HasObject(name) {
		inner, err := obj.Object(name)
		if err != nil {
			return Zero(), err
		}
		return Load(inner, report)
	}
	return Zero(), obj.FailCode(apperrors.CodeDistributionInvalid, "Invalid distribution type", name)
}

// Reader returns a jsondata.Reader that parses members with LoadField.
func Reader(report diag.Reporter) jsondata.Reader[Distribution] {
	return func(obj *jsondata.Object, name string) (Distribution, error) {
		return LoadField(obj, name, report)
	}
}

func pair(obj *jsondata.Object, name string) (int, int, error) {
	arr, err := obj.Array(name)
	if err != nil {
		return 0, 0, err
	}
	// Elements past the second are ignored.
	if arr.Len() < 2 {
		return 0, 0, obj.FailCode(apperrors.CodeDistributionInvalid, "expected a pair of integers", name)
	}
	first, err := arr.Int(0)
	if err != nil {
		return 0, 0, err
	}
	second, err := arr.Int(1)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

// keep reports a rejected parameter, tagged with the member location, and
// returns d, which is always usable.
func keep(obj *jsondata.Object, field string, report diag.Reporter, d Distribution, err error) Distribution {
	if err == nil {
		return d
	}
	loc := obj.Member(field).Location().String()
	report.Report(apperrors.WrapWithMetadata(
		apperrors.GetCode(err),
		loc,
		map[string]string{apperrors.MetaField: field, apperrors.MetaLocation: loc},
		err,
	))
	return d
}
