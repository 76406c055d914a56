package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	API    APIConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Notify NotifyConfig
	Media  MediaConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	DocsPath string // swagger.json opcional; vacío o inexistente = sin /docs
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig describe la API remota de Eme Mar (única fuente de verdad).
type APIConfig struct {
	BaseURL            string
	TimeoutSeconds     int
	DisplayOffsetHours int // corrección horaria aplicada a las fechas del servidor antes de mostrarlas
}

// Timeout devuelve el timeout por llamada saliente.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DisplayOffset devuelve el corrimiento horario como duración.
func (c APIConfig) DisplayOffset() time.Duration {
	return time.Duration(c.DisplayOffsetHours) * time.Hour
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig credenciales del operador. Solo se guarda el hash bcrypt.
type AuthConfig struct {
	OperatorPasswordHash string
}

// NotifyConfig configuración de la cola de notificaciones.
type NotifyConfig struct {
	TimeoutSeconds int
}

// Timeout devuelve la vida de una notificación.
func (c NotifyConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MediaConfig configuración de las fotos de producto.
type MediaConfig struct {
	PhotoMaxPx int // 0 = enviar la foto tal cual
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, EMEMAR_API_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ememar-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "http://localhost:5173"),
		},
		API: APIConfig{
			BaseURL:            strings.TrimRight(getString(v, "EMEMAR_API_URL", "https://server-eme-mar.onrender.com"), "/"),
			TimeoutSeconds:     getInt(v, "API_TIMEOUT_SECONDS", 15),
			DisplayOffsetHours: getInt(v, "DISPLAY_OFFSET_HOURS", -5),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "ememar-console"),
		},
		Auth: AuthConfig{
			OperatorPasswordHash: getString(v, "OPERATOR_PASSWORD_HASH", ""),
		},
		Notify: NotifyConfig{
			TimeoutSeconds: getInt(v, "NOTIFY_TIMEOUT_SECONDS", 4),
		},
		Media: MediaConfig{
			PhotoMaxPx: getInt(v, "PHOTO_MAX_PX", 800),
		},
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: EMEMAR_API_URL vacío")
	}
	return cfg, nil
}

// Validate verifica lo mínimo para levantar el servidor de la consola.
// El CLI no necesita JWT ni hash de operador.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET requerido")
	}
	if c.Auth.OperatorPasswordHash == "" {
		return fmt.Errorf("config: OPERATOR_PASSWORD_HASH requerido (usar `ememarctl hash-password`)")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
