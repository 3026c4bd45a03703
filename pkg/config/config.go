package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Gateway GatewayConfig
	Dear    DearConfig
	Xero    XeroConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	AutoMigrate bool // aplica las migraciones embebidas al arrancar la API
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MigrateURL devuelve el DSN con el esquema pgx5:// que espera golang-migrate.
func (c DBConfig) MigrateURL() string {
	dsn := c.ConnectionString()
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// JWTConfig configuración de JWT para operadores.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GatewayConfig middleware MITA que expone la pasarela de fiscalización EFRIS.
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DearConfig API externa de Dear (Cin7 Core). El BaseURL por cliente tiene prioridad.
type DearConfig struct {
	BaseURL string
	Timeout time.Duration
}

// XeroConfig endpoints de Xero; sobreescribibles para sandbox o pruebas.
type XeroConfig struct {
	APIBaseURL     string
	AuthURL        string
	TokenURL       string
	ConnectionsURL string
	Timeout        time.Duration
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, MITA_URL, JWT_SECRET, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "taxmoja-app"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "taxmoja"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "taxmoja-app"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Gateway: GatewayConfig{
			BaseURL: strings.TrimRight(getString(v, "MITA_URL", "http://localhost:8000/api/v1"), "/"),
			Timeout: seconds(v, "MITA_TIMEOUT_SECONDS", 30),
		},
		Dear: DearConfig{
			BaseURL: strings.TrimRight(getString(v, "DEAR_URL", "https://inventory.dearsystems.com/ExternalApi/v2"), "/"),
			Timeout: seconds(v, "DEAR_TIMEOUT_SECONDS", 30),
		},
		Xero: XeroConfig{
			APIBaseURL:     strings.TrimRight(getString(v, "XERO_API_URL", "https://api.xero.com/api.xro/2.0"), "/"),
			AuthURL:        getString(v, "XERO_AUTH_URL", "https://login.xero.com/identity/connect/authorize"),
			TokenURL:       getString(v, "XERO_TOKEN_URL", "https://identity.xero.com/connect/token"),
			ConnectionsURL: getString(v, "XERO_CONNECTIONS_URL", "https://api.xero.com/connections"),
			Timeout:        seconds(v, "XERO_TIMEOUT_SECONDS", 30),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.App.Env == "production" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

// seconds lee un entero de segundos; valores <= 0 usan el default.
func seconds(v *viper.Viper, key string, def int) time.Duration {
	n := getInt(v, key, def)
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
