// Package argutil holds the argument checks shared by event constructors.
// Every failure is an ArgumentError so callers see a single message format
// regardless of which payload rejected its input.
package argutil

import (
	"reflect"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
)

// String fails when a required string argument is empty.
func String(name, value string) error {
	if value == "" {
		return arcerrors.NewArgumentError(name, arcerrors.KindString)
	}
	return nil
}

// Object fails when a required pointer argument is nil.
func Object[T any](name string, value *T) error {
	if value == nil {
		return arcerrors.NewArgumentError(name, arcerrors.KindObject)
	}
	return nil
}

// Slice fails when a required list argument is nil. An empty, non-nil
// list is accepted: bulk operations on zero items are legal.
func Slice[T any](name string, values []T) error {
	if values == nil {
		return arcerrors.NewArgumentError(name, arcerrors.KindArray)
	}
	return nil
}

// Strings fails when the list is nil or any element is empty.
func Strings(name string, values []string) error {
	if err := Slice(name, values); err != nil {
		return err
	}
	for _, v := range values {
		if v == "" {
			return arcerrors.NewArgumentError(name, arcerrors.KindArray)
		}
	}
	return nil
}

// Objects fails when the list is nil or holds a nil element.
func Objects[T any](name string, values []*T) error {
	if err := Slice(name, values); err != nil {
		return err
	}
	for _, v := range values {
		if v == nil {
			return arcerrors.NewArgumentError(name, arcerrors.KindArray)
		}
	}
	return nil
}

// Value fails when an interface-typed argument is nil or a typed nil.
func Value(name string, value interface{}) error {
	if isNil(value) {
		return arcerrors.NewArgumentError(name, arcerrors.KindObject)
	}
	return nil
}

// First returns the first non-nil error, so constructors can check their
// arguments in declaration order with one statement.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// isNil handles typed nils (nil pointers, maps, slices held in an interface).
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
