package catalog

// PhotoOptimizer normaliza la foto en base64 antes de enviarla a la API.
type PhotoOptimizer interface {
	Optimize(foto string) (string, error)
}
