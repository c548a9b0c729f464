package tester

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func fail(t *testing.T, msgAndArgs []any, format string, args ...any) {
	t.Helper()
	detail := fmt.Sprintf(format, args...)
	if len(msgAndArgs) == 0 {
		t.Fatal(detail)
	}
	msg := fmt.Sprint(msgAndArgs[0])
	if f, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(f, msgAndArgs[1:]...)
	}
	t.Fatalf("%s: %s", msg, detail)
}

// Eq asserts that got == want using reflect.DeepEqual for non-comparable types.
func Eq[T any](t *testing.T, got, want T, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		fail(t, msgAndArgs, "got=%v want=%v", got, want)
	}
}

// True asserts that cond is true.
func True(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if !cond {
		fail(t, msgAndArgs, "expected condition to be true")
	}
}

// False asserts that cond is false.
func False(t *testing.T, cond bool, msgAndArgs ...any) {
	t.Helper()
	if cond {
		fail(t, msgAndArgs, "expected condition to be false")
	}
}

// NoErr asserts that err is nil.
func NoErr(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// Len asserts that a slice has n elements.
func Len[T any](t *testing.T, got []T, n int, msgAndArgs ...any) {
	t.Helper()
	if len(got) != n {
		fail(t, msgAndArgs, "len=%d want=%d", len(got), n)
	}
}

// Contains asserts that s contains sub.
func Contains(t *testing.T, s, sub string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(s, sub) {
		fail(t, msgAndArgs, "%q not found", sub)
	}
}

// NotContains asserts that s does not contain sub.
func NotContains(t *testing.T, s, sub string, msgAndArgs ...any) {
	t.Helper()
	if strings.Contains(s, sub) {
		fail(t, msgAndArgs, "unexpected %q", sub)
	}
}
