package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	minJWTSecretBytes = 32
	minBcryptCost     = 4
	maxBcryptCost     = 31
	// S3 rejects presigned URLs that live longer than a week.
	maxPresignTTL = 7 * 24 * time.Hour
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Storage.validate(),
		c.Client.validate(),
		c.Org.validate(),
		c.Fence.validate(),
		c.Upload.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ReadHeaderTimeout < 0 {
		errs = append(errs, errors.New("server.read_header_timeout must not be negative"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %g",
			cl.RateLimit.RequestsPerSecond))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	if d.Path == "" {
		return errors.New("database.path must not be empty")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretBytes {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretBytes))
	}
	if a.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			minBcryptCost, maxBcryptCost, a.BcryptCost))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	if s.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket must not be empty"))
	}
	if s.Region == "" {
		errs = append(errs, errors.New("storage.region must not be empty"))
	}
	if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
		errs = append(errs, errors.New("storage.access_key_id and storage.secret_access_key must be set together"))
	}
	if s.PresignTTL <= 0 || s.PresignTTL > maxPresignTTL {
		errs = append(errs, fmt.Errorf("storage.presign_ttl must be in (0, %s], got %s", maxPresignTTL, s.PresignTTL))
	}

	return errors.Join(errs...)
}

func (o *OrgConfig) validate() error {
	if o.DefaultID == "" {
		return errors.New("org.default_id must not be empty")
	}
	return nil
}

func (f *FenceConfig) validate() error {
	var errs []error

	if f.RadiusMeters <= 0 {
		errs = append(errs, fmt.Errorf("fence.radius_meters must be positive, got %g", f.RadiusMeters))
	}
	if _, err := time.LoadLocation(f.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("fence.timezone: %w", err))
	}

	return errors.Join(errs...)
}

func (u *UploadConfig) validate() error {
	var errs []error

	if u.MaxMemory <= 0 {
		errs = append(errs, errors.New("upload.max_memory must be positive"))
	}
	if u.MaxFiles < 1 {
		errs = append(errs, fmt.Errorf("upload.max_files must be >= 1, got %d", u.MaxFiles))
	}
	if u.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("upload.concurrency must be >= 1, got %d", u.Concurrency))
	}
	if u.Timeout < 0 {
		errs = append(errs, fmt.Errorf("upload.timeout must not be negative, got %s", u.Timeout))
	}

	return errors.Join(errs...)
}
