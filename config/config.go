package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	Admin         AdminConfig
	JWT           JWTConfig
	Pricing       PricingConfig
	AbandonedForm AbandonedFormConfig
	Notification  NotificationConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AllowedOrigin string
}

type StorageConfig struct {
	// DataDir holds one pretty-printed JSON file per collection. The
	// directory may be unwritable in some environments; the store then
	// runs on its in-memory backing.
	DataDir string
}

type AdminConfig struct {
	Email    string
	Password string
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type PricingConfig struct {
	// BinPrices maps bin-type tag to unit price
	BinPrices map[string]float64
	// OneOffServiceCharge is the flat fee added for one-off cleans
	OneOffServiceCharge float64
}

type AbandonedFormConfig struct {
	// RetentionCap bounds the abandoned-forms collection; oldest records
	// beyond it are evicted. Zero disables eviction.
	RetentionCap int
	// HighValueThreshold marks a lead as high value in the stats summary
	HighValueThreshold float64
}

type NotificationConfig struct {
	AdminEmail string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	// A missing .env is fine, the environment alone can configure everything
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			AllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Storage: StorageConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Pricing: PricingConfig{
			BinPrices: map[string]float64{
				"wheelie":   viper.GetFloat64("PRICE_WHEELIE"),
				"recycling": viper.GetFloat64("PRICE_RECYCLING"),
				"food":      viper.GetFloat64("PRICE_FOOD"),
				"garden":    viper.GetFloat64("PRICE_GARDEN"),
			},
			OneOffServiceCharge: viper.GetFloat64("ONEOFF_SERVICE_CHARGE"),
		},
		AbandonedForm: AbandonedFormConfig{
			RetentionCap:       viper.GetInt("ABANDONED_FORM_RETENTION_CAP"),
			HighValueThreshold: viper.GetFloat64("ABANDONED_FORM_HIGH_VALUE"),
		},
		Notification: NotificationConfig{
			AdminEmail: viper.GetString("NOTIFY_ADMIN_EMAIL"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("PRICE_WHEELIE", 5.0)
	viper.SetDefault("PRICE_RECYCLING", 4.0)
	viper.SetDefault("PRICE_FOOD", 3.0)
	viper.SetDefault("PRICE_GARDEN", 6.0)
	viper.SetDefault("ONEOFF_SERVICE_CHARGE", 10.0)
	viper.SetDefault("ABANDONED_FORM_RETENTION_CAP", 100)
	viper.SetDefault("ABANDONED_FORM_HIGH_VALUE", 20.0)
}
