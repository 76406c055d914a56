package emeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/jhoicas/ememar-console/internal/domain"
)

// maxBody límite de lectura de respuestas; los productos traen la foto en base64.
const maxBody = 32 << 20

// Client cliente HTTP de la API de Eme Mar. Sin reintentos, sin caché.
// Cada llamada lleva su propio timeout además del contexto del caller.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente. baseURL sin barra final (ej. https://server-eme-mar.onrender.com).
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log.With().Str("component", "emeapi").Logger(),
	}
}

// errorPaths campos donde el servidor deja el mensaje de error, en orden de preferencia.
var errorPaths = []string{"error", "error.message", "message"}

type callOpts struct {
	headers map[string]string
}

type callOpt func(*callOpts)

// withHeader agrega una cabecera a la llamada.
func withHeader(k, v string) callOpt {
	return func(o *callOpts) {
		if v != "" {
			o.headers[k] = v
		}
	}
}

// get lee un recurso y decodifica en out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, "Error al cargar datos")
}

// do ejecuta la llamada. fallback es el mensaje genérico cuando el servidor no manda uno.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string, opts ...callOpt) error {
	o := callOpts{headers: map[string]string{}}
	for _, fn := range opts {
		fn(&o)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("emeapi: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("emeapi: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("emeapi: %s %s: timeout o cancelación: %w", method, path, domain.ErrUnavailable)
		}
		return fmt.Errorf("emeapi: %s %s: %v: %w", method, path, err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("emeapi: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("llamada a la API")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("emeapi: %s %s: %w", method, path, apiError(resp.StatusCode, raw, fallback))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("emeapi: decodificar %s: %w", path, err)
	}
	return nil
}

// apiError arma el error con el texto del servidor (error, luego message) o el genérico.
func apiError(status int, raw []byte, fallback string) *domain.APIError {
	if gjson.ValidBytes(raw) {
		for _, path := range errorPaths {
			if r := gjson.GetBytes(raw, path); r.Type == gjson.String && r.Str != "" {
				return &domain.APIError{Status: status, Message: r.Str, FromServer: true}
			}
		}
	}
	return &domain.APIError{Status: status, Message: fallback}
}
