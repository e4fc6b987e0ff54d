package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sort"

	"outfitapi/stylist"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// product shots are centered, the border is mostly backdrop
	centralSampleRatio = 0.6
	sampleSize         = 48
	minOpaqueAlpha     = 128
)

// DominantColorHex returns the named palette hex that covers most of the
// central area of an item photo. Transparent pixels are ignored.
func DominantColorHex(imageBytes []byte, colors *stylist.ColorModel) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return dominantColor(img, colors)
}

func dominantColor(img image.Image, colors *stylist.ColorModel) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", fmt.Errorf("image is empty")
	}
	width := max(1, int(float64(bounds.Dx())*centralSampleRatio))
	height := max(1, int(float64(bounds.Dy())*centralSampleRatio))
	sample := imaging.Resize(imaging.CropCenter(img, width, height), sampleSize, 0, imaging.Box)

	// snapping is memoized per quantized pixel, neighbouring pixels repeat a lot
	snapped := map[string]string{}
	counts := map[string]int{}
	sb := sample.Bounds()
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			px := sample.NRGBAAt(x, y)
			if px.A < minOpaqueAlpha {
				continue
			}
			c := colorful.Color{R: float64(px.R&0xF0) / 255, G: float64(px.G&0xF0) / 255, B: float64(px.B&0xF0) / 255}
			hex := c.Hex()
			name, ok := snapped[hex]
			if !ok {
				name = colors.NearestNamedHex(hex)
				snapped[hex] = name
			}
			counts[name]++
		}
	}
	if len(counts) == 0 {
		return "", fmt.Errorf("image has no opaque pixels")
	}

	ranked := make([]string, 0, len(counts))
	for hex := range counts {
		ranked = append(ranked, hex)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked[0], nil
}
