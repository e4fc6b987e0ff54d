package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"outfitapi/stylist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// a red garment on a white backdrop that fills the outer border
func garmentOnBackdrop(garment color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			if x >= 25 && x < 75 && y >= 25 && y < 75 {
				img.SetNRGBA(x, y, garment)
			}
		}
	}
	return img
}

func TestDominantColorIgnoresBackdrop(t *testing.T) {
	colors := stylist.NewColorModel(stylist.DefaultPalettes())

	hex, err := DominantColorHex(encodePNG(t, garmentOnBackdrop(color.NRGBA{R: 240, G: 16, B: 16, A: 255})), colors)

	require.NoError(t, err)
	assert.Equal(t, "#FF0000", hex)
	assert.Equal(t, "red", colors.NormalizeHex(hex))
}

func TestDominantColorSkipsTransparentPixels(t *testing.T) {
	colors := stylist.NewColorModel(stylist.DefaultPalettes())
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	_, err := DominantColorHex(encodePNG(t, img), colors)

	assert.ErrorContains(t, err, "no opaque pixels")
}

func TestDominantColorRejectsGarbage(t *testing.T) {
	_, err := DominantColorHex([]byte("not an image"), stylist.NewColorModel(stylist.DefaultPalettes()))

	assert.ErrorContains(t, err, "decode")
}
