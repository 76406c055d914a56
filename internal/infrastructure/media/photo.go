// Package media normaliza las fotos de producto antes de enviarlas a la API.
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/domain"
)

const jpegQuality = 75

// PhotoOptimizer reduce la foto a una caja de maxPx y la re-codifica como JPEG.
// maxPx <= 0 deja la foto tal cual (solo se quita el prefijo data:).
type PhotoOptimizer struct {
	maxPx int
	log   zerolog.Logger
}

// NewPhotoOptimizer construye el optimizador.
func NewPhotoOptimizer(maxPx int, log zerolog.Logger) *PhotoOptimizer {
	return &PhotoOptimizer{maxPx: maxPx, log: log}
}

// StripDataURL quita "data:image/...;base64," si viene.
func StripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

// Optimize recibe la foto en base64 (con o sin prefijo) y devuelve base64 sin prefijo.
func (o *PhotoOptimizer) Optimize(foto string) (string, error) {
	raw := StripDataURL(foto)
	if raw == "" || o.maxPx <= 0 {
		return raw, nil
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return "", fmt.Errorf("media: base64: %v: %w", err, domain.ErrInvalidInput)
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("media: decodificar imagen: %v: %w", err, domain.ErrInvalidInput)
	}

	b := img.Bounds()
	if b.Dx() > o.maxPx || b.Dy() > o.maxPx {
		img = imaging.Fit(img, o.maxPx, o.maxPx, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("media: codificar JPEG: %w", err)
	}

	o.log.Debug().
		Int("in_bytes", len(data)).
		Int("out_bytes", buf.Len()).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("foto optimizada")

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
