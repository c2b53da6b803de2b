package enumrepr

import (
	"fmt"

	"fortio.org/safecast"
)

// Reinterpret reads the discriminant of v as a value of R.
//
// Generated code calls it with the enum's own representation type, where
// every discriminant fits by construction. A missing discriminant or one that
// does not fit means the shape table is broken, so both panic.
func Reinterpret[R Integer](v Variant) R {
	d := v.Discriminant
	if d == nil {
		panic(fmt.Sprintf("enumrepr: variant %s has no discriminant", v.Name))
	}

	var (
		out R
		err error
	)

	if d.negative {
		out, err = safecast.Conv[R](int64(d.bits))
	} else {
		out, err = safecast.Conv[R](d.bits)
	}

	if err != nil {
		panic(fmt.Sprintf("enumrepr: our discriminant value must fit into its enum repr type: %s = %s: %v",
			v.Name, d, err))
	}

	return out
}

// PanicInto converts value into T and panics with msg when it does not fit.
// It backs the conversions requested with the panic_into directive.
func PanicInto[T, R Integer](value R, msg string) T {
	out, err := safecast.Conv[T](value)
	if err != nil {
		panic(msg + " " + err.Error())
	}

	return out
}
