package config

const (
	EnvConfigFile = "DASHBOARD_CONFIG_FILE"

	EnvAPIHost      = "FASTAPI_LOCAL_URL"
	EnvAPIPort      = "FASTAPI_DEV_SERVER_PORT"
	EnvAPIPath      = "VUE_API_BASE_PATH"
	EnvAPIEndpoints = "DASHBOARD_ENDPOINTS"

	EnvLocale   = "ALERT_LOCALE"
	EnvTimezone = "ALERT_TIMEZONE"

	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLogPrefix = "LOG_PREFIX"
)
