package enumrepr

import "fmt"

// UnknownValueError is returned by generated FromRepr functions when the raw
// value matches no constant of the enum. It is comparable, so tests can use
// plain equality.
type UnknownValueError[R Integer] struct {
	Value R
}

// Error implements error.
func (e UnknownValueError[R]) Error() string {
	return fmt.Sprintf("unknown value %d", e.Value)
}
