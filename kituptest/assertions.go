package kituptest

import "fmt"

// TestingT is an interface that is compatible with the testing.T.
type TestingT interface {
	Errorf(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

// Receiver is any object in kituptest that expects to receive commands.
type Receiver interface {
	Received(matchFn CommandMatcher) error
	NotReceived(matchFn CommandMatcher) error
}

func logExtraMsg(t TestingT, msgAndArgs ...any) { //nolint:varnamelen
	if len(msgAndArgs) == 0 {
		return
	}
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if s, ok := msgAndArgs[0].(string); ok {
		t.Errorf(s, msgAndArgs[1:]...)
		return
	}
	t.Errorf(fmt.Sprint(msgAndArgs...))
}

// ReceivedEqual asserts that a command was received.
func ReceivedEqual(t TestingT, m Receiver, command string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(Equal(command)); err != nil {
		t.Errorf("Expected to have received command `%s`: %v", command, err)
		logExtraMsg(t, msgAndArgs...)
	}
}

// ReceivedWithPrefix asserts that a command with the given prefix was received.
func ReceivedWithPrefix(t TestingT, m Receiver, prefix string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(HasPrefix(prefix)); err != nil {
		t.Errorf("Expected to have received a command starting with `%s`: %v", prefix, err)
		logExtraMsg(t, msgAndArgs...)
	}
}

// ReceivedContains asserts that a command with the given substring was received.
func ReceivedContains(t TestingT, m Receiver, substring string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(Contains(substring)); err != nil {
		t.Errorf("Expected to have received a command with substring `%s`: %v", substring, err)
		logExtraMsg(t, msgAndArgs...)
	}
}

// NotReceivedContains asserts that a command with the given substring was not received.
func NotReceivedContains(t TestingT, m Receiver, substring string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.NotReceived(Contains(substring)); err != nil {
		t.Errorf("Expected to not have received a command with substring `%s` but did.", substring)
		logExtraMsg(t, msgAndArgs...)
	}
}

// NotReceivedWithPrefix asserts that a command with the given prefix was not received.
func NotReceivedWithPrefix(t TestingT, m Receiver, prefix string, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.NotReceived(HasPrefix(prefix)); err != nil {
		t.Errorf("Expected to not have received a command starting with `%s` but did.", prefix)
		logExtraMsg(t, msgAndArgs...)
	}
}
