package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBcryptCost   = 10
	defaultFenceRadius  = 500.0
	defaultUploadMemory = 10 << 20
	defaultUploadFiles  = 10
	defaultUploadPar    = 4
)

// defaults returns the built-in configuration values. They are loaded first
// and can be overridden by base.yaml, the profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_timeout":        "5s",
		"server.read_header_timeout": "2s",
		"server.write_timeout":       "30s",
		"server.idle_timeout":        "120s",
		"server.shutdown_timeout":    "15s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskflow-service",

		"database.path":         "taskflow.db",
		"database.busy_timeout": "5s",

		"auth.jwt_secret":  "",
		"auth.issuer":      "taskflow-service",
		"auth.token_ttl":   "1h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"storage.bucket":            "",
		"storage.region":            "us-east-1",
		"storage.endpoint":          "",
		"storage.use_path_style":    false,
		"storage.access_key_id":     "",
		"storage.secret_access_key": "",
		"storage.presign_ttl":       "1h",

		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"org.default_id": "default",

		"fence.radius_meters": defaultFenceRadius,
		"fence.timezone":      "UTC",

		"upload.max_memory":  defaultUploadMemory,
		"upload.max_files":   defaultUploadFiles,
		"upload.concurrency": defaultUploadPar,
		"upload.timeout":     "2m",
	}
}
