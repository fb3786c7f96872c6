package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/scene"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range scene.EasingNames() {
		t.Run(name, func(t *testing.T) {
			fn, ok := scene.EasingByName(name)
			require.True(t, ok)
			assert.InDelta(t, 0, fn(0), 1e-4)
			assert.InDelta(t, 1, fn(1), 1e-4)
		})
	}
}

func TestEasingMidpoints(t *testing.T) {
	assert.Equal(t, float32(0.5), scene.Linear(0.5))
	assert.Equal(t, float32(0.25), scene.InQuad(0.5))
	assert.Equal(t, float32(0.75), scene.OutQuad(0.5))
	assert.Equal(t, float32(0.5), scene.InOutCubic(0.5))
	assert.Equal(t, float32(0.5), scene.SmoothStep(0.5))
	assert.Equal(t, float32(0), scene.Step(0.49))
	assert.Equal(t, float32(1), scene.Step(0.5))
}

func TestEasingOvershoot(t *testing.T) {
	assert.Greater(t, scene.OutBack(0.5), float32(1))
	assert.Less(t, scene.InBack(0.2), float32(0))
}

func TestEasingMenuResolves(t *testing.T) {
	require.Len(t, scene.EasingMenu, 10)
	for _, name := range scene.EasingMenu {
		_, ok := scene.EasingByName(name)
		assert.True(t, ok, name)
	}

	fn, ok := scene.EasingByName("")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), fn(0.3))

	_, ok = scene.EasingByName("Wobble")
	assert.False(t, ok)
}
