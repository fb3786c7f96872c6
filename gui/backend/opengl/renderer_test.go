package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScissorBox(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{10, 530, 100, 50}, [4]int32{x, y, w, h})

	// Negative origins are trimmed; GL ignores the part past the far edges.
	x, y, w, h, ok = scissorBox([4]float32{-30, -10, 50, 700}, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{0, 0, 50, 610}, [4]int32{x, y, w, h})

	_, _, _, _, ok = scissorBox([4]float32{-50, 0, -10, 10}, 600)
	assert.False(t, ok)
}

func TestOrthoMapsCornersToClipSpace(t *testing.T) {
	m := ortho(800, 600)
	apply := func(x, y float32) [2]float32 {
		return [2]float32{m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]}
	}
	for _, c := range []struct{ x, y, cx, cy float32 }{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
	} {
		got := apply(c.x, c.y)
		assert.InDelta(t, c.cx, got[0], 1e-5)
		assert.InDelta(t, c.cy, got[1], 1e-5)
	}
}
