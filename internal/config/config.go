package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Pool
	DBMaxOpen     int `envconfig:"DB_MAX_OPEN" default:"25"`
	DBMaxIdle     int `envconfig:"DB_MAX_IDLE" default:"25"`
	DBMaxLifetime int `envconfig:"DB_MAX_LIFETIME" default:"300"` // seconds

	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    string `envconfig:"JWT_TTL" default:"1h"`

	// Seeded administrator account
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@mail.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	StaticDir string `envconfig:"STATIC_DIR" default:"./public"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
