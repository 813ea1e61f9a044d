package assets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgbaAt(t *testing.T, img interface {
	At(x, y int) color.Color
}, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestIcon(t *testing.T) {
	test.NewTempApp(t)
	img := Icon()
	assert.Equal(t, IconSize, img.Bounds().Dx())
	assert.Equal(t, IconSize, img.Bounds().Dy())

	assert.Equal(t, iconBackground, nrgbaAt(t, img, 0, 0))

	disc := nrgbaAt(t, img, IconSize/2, IconSize/2+60)
	assert.Greater(t, disc.B, uint8(150))
	assert.Less(t, disc.R, uint8(100))
}

func TestInverted(t *testing.T) {
	test.NewTempApp(t)
	img := Icon()
	inv := Inverted(img)

	for _, pt := range [][2]int{{IconSize / 2, IconSize/2 + 60}, {5, 5}, {110, 90}} {
		orig := nrgbaAt(t, img, pt[0], pt[1])
		got := nrgbaAt(t, inv, pt[0], pt[1])
		assert.Equal(t, 255-orig.R, got.R)
		assert.Equal(t, 255-orig.G, got.G)
		assert.Equal(t, orig.A, got.A)
	}
}

func TestTexture(t *testing.T) {
	test.NewTempApp(t)
	tex := NewTexture()
	require.True(t, tex.Loaded())
	normal := tex.Image()
	require.NotNil(t, normal)

	tex.Remove()
	assert.Nil(t, tex.Image())

	tex.Invert()
	assert.True(t, tex.Inverted)
	inverted := tex.Image()
	require.NotNil(t, inverted)
	assert.NotSame(t, normal, inverted)

	tex.Remove()
	tex.Load()
	assert.Same(t, inverted, tex.Image())

	tex.Invert()
	assert.Same(t, normal, tex.Image())
}
