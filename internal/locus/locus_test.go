package locus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianzepp/faber/internal/locus"
)

func TestNova(t *testing.T) {
	l := locus.Nova(3, 7, 42)
	assert.Equal(t, 3, l.Linea)
	assert.Equal(t, 7, l.Columna)
	assert.Equal(t, 42, l.Index)
}

func TestNovaPanicsOnInvalidPosition(t *testing.T) {
	assert.Panics(t, func() { locus.Nova(0, 1, 0) })
	assert.Panics(t, func() { locus.Nova(1, 0, 0) })
	assert.Panics(t, func() { locus.Nova(1, 1, -1) })
}

func TestAnte(t *testing.T) {
	a := locus.Nova(1, 1, 0)
	b := locus.Nova(1, 2, 1)
	assert.True(t, a.Ante(b))
	assert.False(t, b.Ante(a))
}

func TestNullaIsOrigin(t *testing.T) {
	assert.Equal(t, 1, locus.Nulla.Linea)
	assert.Equal(t, 1, locus.Nulla.Columna)
	assert.Equal(t, 0, locus.Nulla.Index)
}

func TestString(t *testing.T) {
	l := locus.Nova(2, 5, 10)
	assert.Contains(t, l.String(), "2")
	assert.Contains(t, l.String(), "5")
}
