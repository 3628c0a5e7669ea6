// Package ptr has helpers for working with pointers to literals.
package ptr

// Ref returns a pointer to the value passed as argument.
func Ref[T any](v T) *T {
	return &v
}
