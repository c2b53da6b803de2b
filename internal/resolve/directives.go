package resolve

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Directives maps directive names to their target type names, keeping the
// order in which directives were first declared.
//
// The zero value is an empty, read-only set.
type Directives struct {
	m *linkedhashmap.Map
}

// NewDirectives returns an empty directive set.
func NewDirectives() Directives {
	return Directives{m: linkedhashmap.New()}
}

// Put sets the targets of a directive. Re-declaring a directive replaces its
// targets but keeps its original position.
func (d Directives) Put(name string, targets []string) {
	d.m.Put(name, targets)
}

// Get returns the targets of a directive.
func (d Directives) Get(name string) ([]string, bool) {
	if d.m == nil {
		return nil, false
	}

	v, ok := d.m.Get(name)
	if !ok {
		return nil, false
	}

	return v.([]string), true
}

// Len returns the number of directives.
func (d Directives) Len() int {
	if d.m == nil {
		return 0
	}

	return d.m.Size()
}

// Each calls fn for every directive in declaration order.
func (d Directives) Each(fn func(name string, targets []string)) {
	if d.m == nil {
		return
	}

	d.m.Each(func(key, value interface{}) {
		fn(key.(string), value.([]string))
	})
}
