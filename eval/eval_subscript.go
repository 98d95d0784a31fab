package eval

import (
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/function"
	"github.com/mrya-lang/mrya/values"
)

// subscriptGet implements the tri-dispatch read path (spec §4.3 Subscript):
// list/string integer indexing, map key lookup (nil for a missing key), and
// instance `_get_`.
func (it *Interp) subscriptGet(obj, idx values.Value, line int) (values.Value, error) {
	switch o := obj.(type) {
	case *values.List:
		n, err := indexInt(idx, line)
		if err != nil {
			return nil, err
		}
		if n < 0 || n >= len(o.Elements) {
			return nil, errs.New(errs.Runtime, line, 0, "", "list index %d out of range (len %d)", n, len(o.Elements))
		}
		return o.Elements[n], nil

	case *values.String:
		n, err := indexInt(idx, line)
		if err != nil {
			return nil, err
		}
		runes := []rune(o.Value)
		if n < 0 || n >= len(runes) {
			return nil, errs.New(errs.Runtime, line, 0, "", "string index %d out of range (len %d)", n, len(runes))
		}
		return &values.String{Value: string(runes[n])}, nil

	case *values.Map:
		v, found := o.Get(idx)
		if !found {
			return values.NilValue, nil
		}
		return v, nil

	case *values.Instance:
		method, _, found := o.Class.FindMethod("_get_")
		if !found {
			return nil, errs.New(errs.ClassFunction, line, 0, "_get_", "%s has no _get_ method for subscript access", o.Class.Name)
		}
		fn, ok := method.(*function.Function)
		if !ok {
			return nil, errs.New(errs.Runtime, line, 0, "", "%s._get_ is not a user-defined method", o.Class.Name)
		}
		return it.callFunction(fn, function.Bind(o, fn), []values.Value{idx}, line)

	default:
		return nil, errs.New(errs.Runtime, line, 0, "", "cannot subscript a %s", obj.Type())
	}
}

// subscriptSet implements the tri-dispatch write path (spec §4.3 SubscriptSet).
func (it *Interp) subscriptSet(obj, idx, val values.Value, line int) error {
	switch o := obj.(type) {
	case *values.List:
		n, err := indexInt(idx, line)
		if err != nil {
			return err
		}
		if n < 0 || n >= len(o.Elements) {
			return errs.New(errs.Runtime, line, 0, "", "list index %d out of range (len %d)", n, len(o.Elements))
		}
		o.Elements[n] = val
		return nil

	case *values.Map:
		if !o.Set(idx, val) {
			return errs.New(errs.Runtime, line, 0, "", "map key must be a string, int, or float, got %s", idx.Type())
		}
		return nil

	case *values.Instance:
		method, _, found := o.Class.FindMethod("_set_")
		if !found {
			return errs.New(errs.ClassFunction, line, 0, "_set_", "%s has no _set_ method for subscript assignment", o.Class.Name)
		}
		fn, ok := method.(*function.Function)
		if !ok {
			return errs.New(errs.Runtime, line, 0, "", "%s._set_ is not a user-defined method", o.Class.Name)
		}
		_, err := it.callFunction(fn, function.Bind(o, fn), []values.Value{idx, val}, line)
		return err

	default:
		return errs.New(errs.Runtime, line, 0, "", "cannot subscript-assign a %s", obj.Type())
	}
}

func indexInt(idx values.Value, line int) (int, error) {
	i, ok := idx.(*values.Int)
	if !ok {
		return 0, errs.New(errs.Runtime, line, 0, "", "index must be an int, got %s", idx.Type())
	}
	return int(i.Value), nil
}
