package jsondiff

import (
	"fmt"
	"testing"
)

// Equal asserts that two values have exactly the same JSON representation.
// Extra data on either side is a failure. The optional message and args are
// printed above the differences, fmt.Sprintf style.
func Equal(t testing.TB, lhs, rhs any, msgAndArgs ...any) bool {
	t.Helper()

	cfg, err := NewConfig(Strict)
	if err != nil {
		t.Errorf("unable to build config: %v", err)

		return false
	}

	return Matches(t, lhs, rhs, cfg, msgAndArgs...)
}

// Include asserts that expected is contained in actual. Actual may carry
// additional data at every level, which lets a test verify just a part of a
// document.
func Include(t testing.TB, actual, expected any, msgAndArgs ...any) bool {
	t.Helper()

	cfg, err := NewConfig(Inclusive)
	if err != nil {
		t.Errorf("unable to build config: %v", err)

		return false
	}

	return Matches(t, actual, expected, cfg, msgAndArgs...)
}

// Contains asserts that contained is included in container, ignoring array
// ordering: every contained element must match a distinct container element,
// in any order, repeated elements included.
func Contains(t testing.TB, container, contained any, msgAndArgs ...any) bool {
	t.Helper()

	cfg, err := NewConfig(Inclusive, WithIgnoredArrayOrder())
	if err != nil {
		t.Errorf("unable to build config: %v", err)

		return false
	}

	return Matches(t, container, contained, cfg, msgAndArgs...)
}

// Matches asserts that two values match according to a configuration. Under
// Inclusive the first argument is actual and the second is expected.
func Matches(t testing.TB, lhs, rhs any, cfg *Config, msgAndArgs ...any) bool {
	t.Helper()

	err := Compare(lhs, rhs, cfg)
	if err == nil {
		return true
	}

	msg := messageFromMsgAndArgs(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s\n\n%s", msg, err)
	} else {
		t.Errorf("\n%s", err)
	}

	return false
}

func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		msg, ok := msgAndArgs[0].(string)
		if ok {
			return msg
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		format, ok := msgAndArgs[0].(string)
		if ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprintf("%+v", msgAndArgs)
	}
}
