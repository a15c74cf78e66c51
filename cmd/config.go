package cmd

import "time"

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultAssignRadiusM     = 10000.0
	DefaultSellerListRadiusM = 5000.0
	DefaultMetricsCronSpec   = "@hourly"
	DefaultJwtTTL            = 24 * time.Hour
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JwtSecret         string
	JwtTTL            time.Duration
	AssignRadiusM     float64
	SellerListRadiusM float64
	MetricsCronSpec   string
}
