package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCache(t *testing.T) {
	c := NewCache(0)
	_, ok := c.Get("کتابها")
	assert.False(t, ok)

	c.Put("کتابها", "کتاب")
	c.Put("کتابها", "کتاب")
	c.Put("کتبم", "کتاب")

	got, ok := c.Get("کتابها")
	assert.True(t, ok)
	assert.Equal(t, "کتاب", got)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, map[string]string{"کتابها": "کتاب", "کتبم": "کتاب"}, c.Snapshot())
}

func TestLRUCacheEvicts(t *testing.T) {
	c := NewCache(2)
	c.Put("a1", "a")
	c.Put("b1", "b")
	c.Put("c1", "c")

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a1")
	assert.False(t, ok, "oldest entry should be evicted")
	assert.Equal(t, map[string]string{"b1": "b", "c1": "c"}, c.Snapshot())
}
