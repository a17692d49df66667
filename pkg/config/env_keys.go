package config

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "CIVICREPORT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "CIVICREPORT_APP_ENV"
	EnvPort       = "CIVICREPORT_APP_PORT"
	EnvDBDSN      = "CIVICREPORT_DB_DSN"
	EnvDBHost     = "CIVICREPORT_DB_HOST"
	EnvDBUser     = "CIVICREPORT_DB_USER"
	EnvDBName     = "CIVICREPORT_DB_NAME"
	EnvRedisURL   = "CIVICREPORT_REDIS_URL"
	EnvJWTSecret  = "CIVICREPORT_JWT_SECRET"
	EnvJWTIssuer  = "CIVICREPORT_JWT_ISSUER"
	EnvJWTExpMins = "CIVICREPORT_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
