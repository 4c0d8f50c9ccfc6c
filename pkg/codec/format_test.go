package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupBits(t *testing.T) {
	assert.Equal(t, "", GroupBits(""))
	assert.Equal(t, "01001000", GroupBits("01001000"))
	assert.Equal(t, "01001000 01101001", GroupBits("0100100001101001"))
	assert.Equal(t, "01001000 01", GroupBits("0100100001"))
}

func TestGCContent(t *testing.T) {
	assert.Equal(t, 0.0, GCContent(""))
	assert.Equal(t, 0.0, GCContent("ATAT"))
	assert.Equal(t, 1.0, GCContent("GCgc"))
	assert.InDelta(t, 0.375, GCContent("TAGATGGT"), 1e-9)
}
