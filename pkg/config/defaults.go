package config

import (
	"tod/pkg/locale"
	"tod/pkg/logger"
)

const (
	DefaultAPIHost = "http://localhost"
	DefaultAPIPort = "8000"
	DefaultAPIPath = "/dashboard"

	EndpointAlerts = "alerts"
	EndpointSend   = "send"
	EndpointHealth = "health"

	DefaultLocale = locale.DefaultTag

	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON
	DefaultLogPrefix = "[Dashboard]"
)

var DefaultEndpoints = []string{EndpointAlerts, EndpointSend, EndpointHealth}
