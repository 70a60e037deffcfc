package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decode(t *testing.T, reader io.Reader) (image.Image, string) {
	t.Helper()
	img, format, err := image.Decode(reader)
	require.NoError(t, err)
	return img, format
}

func TestProcessImageShrinksOversized(t *testing.T) {
	p := NewProcessor(85)
	src := encodePNG(t, 1600, 400, color.NRGBA{R: 200, G: 10, B: 10, A: 255})

	out, err := p.ProcessImage(bytes.NewReader(src), SizeMedium, "")
	require.NoError(t, err)

	img, format := decode(t, out)
	assert.Equal(t, "png", format)
	// aspect ratio preserved inside the 800x800 bound
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestProcessImageKeepsSmall(t *testing.T) {
	p := NewProcessor(85)
	src := encodePNG(t, 120, 80, color.NRGBA{R: 10, G: 200, B: 10, A: 255})

	out, err := p.ProcessImage(bytes.NewReader(src), SizeMedium, "")
	require.NoError(t, err)

	img, _ := decode(t, out)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestProcessImageFormatOverride(t *testing.T) {
	p := NewProcessor(85)
	src := encodePNG(t, 50, 50, color.NRGBA{R: 10, G: 10, B: 200, A: 255})

	out, err := p.ProcessImage(bytes.NewReader(src), SizeMedium, "jpeg")
	require.NoError(t, err)

	_, format := decode(t, out)
	assert.Equal(t, "jpeg", format)
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	p := NewProcessor(85)

	_, err := p.ProcessImage(strings.NewReader("not an image"), SizeMedium, "")
	assert.Error(t, err)
}

func TestFlattenToJPEG(t *testing.T) {
	p := NewProcessor(90)
	// fully transparent source: flattening must leave white, not black
	src := encodePNG(t, 300, 300, color.NRGBA{})

	out, err := p.FlattenToJPEG(src, SizeLogo)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), SizeLogo.Width)
	assert.LessOrEqual(t, img.Bounds().Dy(), SizeLogo.Height)

	r, g, b, _ := img.At(img.Bounds().Dx()/2, img.Bounds().Dy()/2).RGBA()
	assert.Greater(t, r, uint32(60000))
	assert.Greater(t, g, uint32(60000))
	assert.Greater(t, b, uint32(60000))
}

func TestNewProcessorQualityBounds(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(101).quality)
	assert.Equal(t, 70, NewProcessor(70).quality)
}

func TestIsValidImage(t *testing.T) {
	assert.True(t, IsValidImage(bytes.NewReader(encodePNG(t, 10, 10, color.White))))
	assert.False(t, IsValidImage(strings.NewReader("nope")))
}
