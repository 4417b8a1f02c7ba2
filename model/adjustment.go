package model

import "fmt"

// Adjustment describes how a list field changes in a bulk project edit.
// It is one of three cases: untouched, replaced wholesale, or adjusted by
// adding and removing individual items. Setting and adjusting the same
// field in one request is not expressible with this type, which is the
// point.
type Adjustment[T any] struct {
	set      bool
	adjust   bool
	setItems []T
	add      []T
	remove   []T
}

// Unset returns the adjustment that leaves the field untouched.
func Unset[T any]() Adjustment[T] { return Adjustment[T]{} }

// SetItems returns the adjustment that replaces the field with items.
func SetItems[T any](items []T) Adjustment[T] {
	return Adjustment[T]{set: true, setItems: items}
}

// AdjustItems returns the adjustment that adds and removes individual
// items. Either slice may be empty.
func AdjustItems[T any](add, remove []T) Adjustment[T] {
	return Adjustment[T]{adjust: true, add: add, remove: remove}
}

// IsUnset reports whether the field is left untouched.
func (a Adjustment[T]) IsUnset() bool { return !a.set && !a.adjust }

// Set returns the replacement items, if the field is replaced.
func (a Adjustment[T]) Set() ([]T, bool) { return a.setItems, a.set }

// Adjust returns the added and removed items, if the field is adjusted.
func (a Adjustment[T]) Adjust() (add, remove []T, ok bool) {
	return a.add, a.remove, a.adjust
}

// ConflictingAdjustmentError reports a bulk edit payload that both sets
// and adjusts the same field.
type ConflictingAdjustmentError struct {
	Field string
}

func (e *ConflictingAdjustmentError) Error() string {
	return fmt.Sprintf("cannot both set and adjust %q in the same request", e.Field)
}
