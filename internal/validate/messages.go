package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MsgRequired = "is required"
	MsgEmail    = "must be a valid email address"
)

// EmailPattern is shared by both strategies so they agree on what an email is.
var EmailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$")

func MsgMaxLength(n int) string {
	return fmt.Sprintf("must be at most %d characters", n)
}

func MsgPrefix(prefix string) string {
	return fmt.Sprintf("must start with %q", prefix)
}

func MsgGreaterThan(n string) string {
	return "must be greater than " + n
}

func MsgAtLeast(n string) string {
	return "must be greater than or equal to " + n
}

func MsgOneOf(values ...string) string {
	return "must be one of: " + strings.Join(values, ", ")
}

func MsgAtMost(n string) string {
	return "must be less than or equal to " + n
}
