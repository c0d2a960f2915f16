// Package assert provides the minimal set of generic test assertions used by
// the library packages.
package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal fails the test if a and b are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if a and b are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// True fails the test if v is false.
func True(t *testing.T, v bool, msgAndArgs ...any) {
	t.Helper()
	if !v {
		t.Fatal(append([]any{"expected true "}, msgAndArgs...)...)
	}
}

// False fails the test if v is true.
func False(t *testing.T, v bool, msgAndArgs ...any) {
	t.Helper()
	if v {
		t.Fatal(append([]any{"expected false "}, msgAndArgs...)...)
	}
}

// Len fails the test if the slice does not have n elements.
func Len[T any](t *testing.T, s []T, n int) {
	t.Helper()
	if len(s) != n {
		t.Fatalf("len %d != %d: %v", len(s), n, s)
	}
}

// IsNil fails the test if err is not nil.
func IsNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs fails the test if err does not match target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v is not %v", err, target)
	}
}
