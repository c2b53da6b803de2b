package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestDuplicates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"uint8", "int"}, Duplicates([]string{"uint8", "int", "uint8", "int", "uint8"}))
	assert.Empty(t, Duplicates([]int{1, 2, 3}))
	assert.True(t, IsEmpty(Duplicates([]int(nil))))
}

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "enumrepr", PkgAlias("enumrepr"))
	assert.Equal(t, "runtime", PkgAlias("example.com/x/runtime"))
	assert.Equal(t, "", PkgAlias(""))
}

func TestPkgAlias_Versioned(t *testing.T) {
	assert.Empty(t, PkgAlias(""))
	assert.Equal(t, "enumrepr", PkgAlias("enumrepr"))
	assert.Equal(t, "rt", PkgAlias("example.com/support/rt"))
	assert.Equal(t, "enumrepr", PkgAlias("example.com/enumrepr/v2"))
	assert.Equal(t, "v2", PkgAlias("v2"))
	assert.Equal(t, "v1", PkgAlias("example.com/v1"))
}
