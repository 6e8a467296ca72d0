package kdberr

import "github.com/pkg/errors"

// Wrap annotates kind (one of the sentinels in this package) with msg,
// preserving kind for errors.Is while attaching call-site context and a
// stack trace the way the rest of this module reports failures.
func Wrap(kind error, msg string) error {
	return errors.Wrap(kind, msg)
}

// Wrapf is Wrap with Printf-style formatting.
func Wrapf(kind error, format string, args ...interface{}) error {
	return errors.Wrapf(kind, format, args...)
}
