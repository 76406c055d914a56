package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ememar-console/internal/domain"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestStripDataURL(t *testing.T) {
	assert.Equal(t, "QUJD", StripDataURL("data:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", StripDataURL("QUJD"))
	assert.Equal(t, "", StripDataURL("  "))
}

func TestOptimize_ReduceALaCaja(t *testing.T) {
	o := NewPhotoOptimizer(100, zerolog.Nop())

	out, err := o.Optimize("data:image/png;base64," + pngBase64(t, 400, 200))
	require.NoError(t, err)

	data, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy(), "mantiene la proporción")
}

func TestOptimize_SinLimiteDevuelveIgual(t *testing.T) {
	o := NewPhotoOptimizer(0, zerolog.Nop())
	in := pngBase64(t, 10, 10)

	out, err := o.Optimize("data:image/png;base64," + in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOptimize_Vacia(t *testing.T) {
	out, err := NewPhotoOptimizer(100, zerolog.Nop()).Optimize("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOptimize_NoEsImagen(t *testing.T) {
	o := NewPhotoOptimizer(100, zerolog.Nop())
	_, err := o.Optimize(base64.StdEncoding.EncodeToString([]byte("no soy una imagen")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = o.Optimize("%%%")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
