package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	DBURL                       string
	DBDisablePreparedBinary     bool
	CacheEnabled                bool
	CacheTTL                    time.Duration
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	ShutdownTimeout             time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	ScoringRankMaxPoints        float64
	ScoringRankTopN             int
	ScoringRankPerfectPick      float64
	ScoringDraftPerfectPick     float64
	AnalyticsMaxWorkers         int
	AnalyticsTallyWorkers       int
	AnalyticsUnitTimeout        time.Duration
	AnalyticsCompetitionIDs     []int64
	RedisAddr                   string
	RedisPassword               string
	RedisDB                     int
	LockTTL                     time.Duration
	AnubisBaseURL               string
	AnubisIntrospectURL         string
	AnubisAdminKey              string
	AnubisTimeout               time.Duration
	AnubisCacheTTL              time.Duration
	AnubisCircuitEnabled        bool
	AnubisCircuitFailureCount   int
	AnubisCircuitOpenTimeout    time.Duration
	AnubisCircuitHalfOpenMaxReq int
	UptraceEnabled              bool
	UptraceDSN                  string
	UptraceLogsEnabled          bool
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
	NtfyEnabled                 bool
	NtfyBaseURL                 string
	NtfyToken                   string
	NtfyTopic                   string
	NtfyTimeout                 time.Duration
	NtfyCircuitEnabled          bool
	NtfyCircuitFailureCount     int
	NtfyCircuitOpenTimeout      time.Duration
	NtfyCircuitHalfOpenMaxReq   int
	InternalJobToken            string
	QStashEnabled               bool
	QStashBaseURL               string
	QStashToken                 string
	QStashTargetBaseURL         string
	QStashRetries               int
	QStashAnalyticsDelay        time.Duration
	QStashCircuitEnabled        bool
	QStashCircuitFailureCount   int
	QStashCircuitOpenTimeout    time.Duration
	QStashCircuitHalfOpenMaxReq int
	LogLevel                    logging.Level
}

// CircuitSettings is the shared shape of the per-dependency breaker knobs.
type CircuitSettings struct {
	Enabled        bool
	FailureCount   int
	OpenTimeout    time.Duration
	HalfOpenMaxReq int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	rankMaxPoints, err := getEnvAsFloat("SCORING_RANK_MAX_POINTS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORING_RANK_MAX_POINTS: %w", err)
	}
	if rankMaxPoints <= 0 {
		return Config{}, fmt.Errorf("SCORING_RANK_MAX_POINTS must be > 0")
	}
	rankTopN, err := getEnvAsInt("SCORING_RANK_TOP_N", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORING_RANK_TOP_N: %w", err)
	}
	if rankTopN < 1 {
		return Config{}, fmt.Errorf("SCORING_RANK_TOP_N must be >= 1")
	}
	rankPerfectPick, err := getEnvAsFloat("SCORING_RANK_PERFECT_PICK", rankMaxPoints)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORING_RANK_PERFECT_PICK: %w", err)
	}
	if rankPerfectPick > rankMaxPoints {
		return Config{}, fmt.Errorf("SCORING_RANK_PERFECT_PICK must be <= SCORING_RANK_MAX_POINTS")
	}
	draftPerfectPick, err := getEnvAsFloat("SCORING_DRAFT_PERFECT_PICK", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORING_DRAFT_PERFECT_PICK: %w", err)
	}
	if draftPerfectPick <= 0 {
		return Config{}, fmt.Errorf("SCORING_DRAFT_PERFECT_PICK must be > 0")
	}

	analyticsMaxWorkers, err := getEnvAsInt("ANALYTICS_MAX_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYTICS_MAX_WORKERS: %w", err)
	}
	if analyticsMaxWorkers < 1 {
		return Config{}, fmt.Errorf("ANALYTICS_MAX_WORKERS must be >= 1")
	}
	analyticsTallyWorkers, err := getEnvAsInt("ANALYTICS_TALLY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYTICS_TALLY_WORKERS: %w", err)
	}
	if analyticsTallyWorkers < 1 {
		return Config{}, fmt.Errorf("ANALYTICS_TALLY_WORKERS must be >= 1")
	}
	analyticsUnitTimeout, err := time.ParseDuration(getEnv("ANALYTICS_UNIT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYTICS_UNIT_TIMEOUT: %w", err)
	}
	if analyticsUnitTimeout <= 0 {
		return Config{}, fmt.Errorf("ANALYTICS_UNIT_TIMEOUT must be > 0")
	}
	analyticsCompetitionIDs, err := parseIDList(getEnv("ANALYTICS_COMPETITION_IDS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYTICS_COMPETITION_IDS: %w", err)
	}

	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	if redisDB < 0 {
		return Config{}, fmt.Errorf("REDIS_DB must be >= 0")
	}
	lockTTL, err := time.ParseDuration(getEnv("LOCK_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOCK_TTL: %w", err)
	}
	if lockTTL <= 0 {
		return Config{}, fmt.Errorf("LOCK_TTL must be > 0")
	}

	ntfyBaseURL := strings.TrimSpace(getEnv("NTFY_BASE_URL", ""))
	ntfyTimeout, err := time.ParseDuration(getEnv("NTFY_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NTFY_TIMEOUT: %w", err)
	}
	if ntfyTimeout <= 0 {
		return Config{}, fmt.Errorf("NTFY_TIMEOUT must be > 0")
	}
	ntfyCircuit, err := loadCircuit("NTFY")
	if err != nil {
		return Config{}, err
	}

	qstashEnabled, err := strconv.ParseBool(getEnv("QSTASH_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_ENABLED: %w", err)
	}
	qstashRetries, err := getEnvAsInt("QSTASH_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_RETRIES: %w", err)
	}
	if qstashRetries < 0 {
		return Config{}, fmt.Errorf("QSTASH_RETRIES must be >= 0")
	}
	qstashAnalyticsDelay, err := time.ParseDuration(getEnv("QSTASH_ANALYTICS_DELAY", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_ANALYTICS_DELAY: %w", err)
	}
	if qstashAnalyticsDelay < 0 {
		return Config{}, fmt.Errorf("QSTASH_ANALYTICS_DELAY must be >= 0")
	}
	qstashCircuit, err := loadCircuit("QSTASH")
	if err != nil {
		return Config{}, err
	}
	qstashBaseURL := strings.TrimSpace(getEnv("QSTASH_BASE_URL", "https://qstash.upstash.io"))
	qstashToken := strings.TrimSpace(getEnv("QSTASH_TOKEN", ""))
	qstashTargetBaseURL := strings.TrimSpace(getEnv("QSTASH_TARGET_BASE_URL", ""))
	internalJobToken := strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", ""))
	if qstashEnabled {
		if qstashToken == "" {
			return Config{}, fmt.Errorf("QSTASH_TOKEN is required when QSTASH_ENABLED=true")
		}
		if qstashTargetBaseURL == "" {
			return Config{}, fmt.Errorf("QSTASH_TARGET_BASE_URL is required when QSTASH_ENABLED=true")
		}
		if internalJobToken == "" {
			return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when QSTASH_ENABLED=true")
		}
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "fantasy-fitness-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                       strings.TrimSpace(os.Getenv("DB_URL")),
		DBDisablePreparedBinary:     true,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		ScoringRankMaxPoints:        rankMaxPoints,
		ScoringRankTopN:             rankTopN,
		ScoringRankPerfectPick:      rankPerfectPick,
		ScoringDraftPerfectPick:     draftPerfectPick,
		AnalyticsMaxWorkers:         analyticsMaxWorkers,
		AnalyticsTallyWorkers:       analyticsTallyWorkers,
		AnalyticsUnitTimeout:        analyticsUnitTimeout,
		AnalyticsCompetitionIDs:     analyticsCompetitionIDs,
		RedisAddr:                   strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		RedisPassword:               getEnv("REDIS_PASSWORD", ""),
		RedisDB:                     redisDB,
		LockTTL:                     lockTTL,
		AnubisBaseURL:               getEnv("ANUBIS_BASE_URL", "http://localhost:8081"),
		AnubisIntrospectURL:         getEnv("ANUBIS_INTROSPECT_PATH", "/v1/auth/introspect"),
		AnubisAdminKey:              getEnv("ANUBIS_ADMIN_KEY", ""),
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		UptraceLogsEnabled:          uptraceLogsEnabled,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		NtfyEnabled:                 ntfyBaseURL != "",
		NtfyBaseURL:                 ntfyBaseURL,
		NtfyToken:                   strings.TrimSpace(getEnv("NTFY_TOKEN", "")),
		NtfyTopic:                   strings.TrimSpace(getEnv("NTFY_TOPIC", "fantasy-fitness")),
		NtfyTimeout:                 ntfyTimeout,
		NtfyCircuitEnabled:          ntfyCircuit.Enabled,
		NtfyCircuitFailureCount:     ntfyCircuit.FailureCount,
		NtfyCircuitOpenTimeout:      ntfyCircuit.OpenTimeout,
		NtfyCircuitHalfOpenMaxReq:   ntfyCircuit.HalfOpenMaxReq,
		InternalJobToken:            internalJobToken,
		QStashEnabled:               qstashEnabled,
		QStashBaseURL:               qstashBaseURL,
		QStashToken:                 qstashToken,
		QStashTargetBaseURL:         qstashTargetBaseURL,
		QStashRetries:               qstashRetries,
		QStashAnalyticsDelay:        qstashAnalyticsDelay,
		QStashCircuitEnabled:        qstashCircuit.Enabled,
		QStashCircuitFailureCount:   qstashCircuit.FailureCount,
		QStashCircuitOpenTimeout:    qstashCircuit.OpenTimeout,
		QStashCircuitHalfOpenMaxReq: qstashCircuit.HalfOpenMaxReq,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.NtfyEnabled && cfg.NtfyTopic == "" {
		return Config{}, fmt.Errorf("NTFY_TOPIC cannot be empty when NTFY_BASE_URL is set")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if shutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	anubisTimeout, err := time.ParseDuration(getEnv("ANUBIS_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANUBIS_TIMEOUT: %w", err)
	}

	anubisCacheTTL, err := time.ParseDuration(getEnv("ANUBIS_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANUBIS_CACHE_TTL: %w", err)
	}
	if anubisCacheTTL < 0 {
		return Config{}, fmt.Errorf("ANUBIS_CACHE_TTL must be >= 0")
	}

	anubisCircuit, err := loadCircuit("ANUBIS")
	if err != nil {
		return Config{}, err
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.ShutdownTimeout = shutdownTimeout
	cfg.AnubisTimeout = anubisTimeout
	cfg.AnubisCacheTTL = anubisCacheTTL
	cfg.AnubisCircuitEnabled = anubisCircuit.Enabled
	cfg.AnubisCircuitFailureCount = anubisCircuit.FailureCount
	cfg.AnubisCircuitOpenTimeout = anubisCircuit.OpenTimeout
	cfg.AnubisCircuitHalfOpenMaxReq = anubisCircuit.HalfOpenMaxReq
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

// loadCircuit reads <PREFIX>_CIRCUIT_* variables.
func loadCircuit(prefix string) (CircuitSettings, error) {
	enabledKey := prefix + "_CIRCUIT_ENABLED"
	enabled, err := strconv.ParseBool(getEnv(enabledKey, "true"))
	if err != nil {
		return CircuitSettings{}, fmt.Errorf("parse %s: %w", enabledKey, err)
	}

	failureKey := prefix + "_CIRCUIT_FAILURE_COUNT"
	failureCount, err := getEnvAsInt(failureKey, 5)
	if err != nil {
		return CircuitSettings{}, fmt.Errorf("parse %s: %w", failureKey, err)
	}
	if failureCount < 1 {
		return CircuitSettings{}, fmt.Errorf("%s must be >= 1", failureKey)
	}

	openKey := prefix + "_CIRCUIT_OPEN_TIMEOUT"
	openTimeout, err := time.ParseDuration(getEnv(openKey, "15s"))
	if err != nil {
		return CircuitSettings{}, fmt.Errorf("parse %s: %w", openKey, err)
	}
	if openTimeout <= 0 {
		return CircuitSettings{}, fmt.Errorf("%s must be > 0", openKey)
	}

	halfOpenKey := prefix + "_CIRCUIT_HALF_OPEN_MAX_REQ"
	halfOpenMaxReq, err := getEnvAsInt(halfOpenKey, 2)
	if err != nil {
		return CircuitSettings{}, fmt.Errorf("parse %s: %w", halfOpenKey, err)
	}
	if halfOpenMaxReq < 1 {
		return CircuitSettings{}, fmt.Errorf("%s must be >= 1", halfOpenKey)
	}

	return CircuitSettings{
		Enabled:        enabled,
		FailureCount:   failureCount,
		OpenTimeout:    openTimeout,
		HalfOpenMaxReq: halfOpenMaxReq,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseIDList(raw string) ([]int64, error) {
	items := splitCSV(raw)
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		value, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0, got %d", value)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
