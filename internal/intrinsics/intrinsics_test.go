package intrinsics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianzepp/faber/internal/intrinsics"
	"github.com/ianzepp/faber/internal/semtype"
)

func TestLookupKnownFunction(t *testing.T) {
	sig, ok := intrinsics.Lookup("solum", "Lege")
	assert.True(t, ok)
	assert.Equal(t, semtype.Textus, sig.Returns)
}

func TestLookupUnknownSubmodule(t *testing.T) {
	_, ok := intrinsics.Lookup("nescius", "Quidquid")
	assert.False(t, ok)
}

func TestLookupUnknownFunction(t *testing.T) {
	_, ok := intrinsics.Lookup("solum", "Nonexistens")
	assert.False(t, ok)
}
