package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"

	"github.com/riskibarqy/fantasy-fitness/internal/config"
	"github.com/riskibarqy/fantasy-fitness/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/jobqueue"
	"github.com/riskibarqy/fantasy-fitness/internal/infrastructure/notify"
	"github.com/riskibarqy/fantasy-fitness/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/fantasy-fitness/internal/platform/id"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/lock"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

// Server is the assembled HTTP server plus the resources it owns.
type Server struct {
	HTTP    *http.Server
	closers []func() error
}

// Close releases the database pool and redis client.
func (s *Server) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	out := &Server{}
	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	out.closers = append(out.closers, repos.close)

	locker, closeLocker := newKeyedLocker(cfg, logger)
	out.closers = append(out.closers, closeLocker)

	rules := scoringRules(cfg)

	var (
		notifier  usecase.Notifier
		scheduler usecase.AnalyticsScheduler
	)
	if cfg.QStashEnabled {
		publisher := jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			AnalyticsDelay:   cfg.QStashAnalyticsDelay,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Name:             "qstash",
				OnStateChange:    logBreakerTransition(logger),
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
		notifier = publisher
		scheduler = publisher
	} else {
		logger.Info("qstash disabled, notifications and analytics scheduling are skipped")
	}

	var sender usecase.PushSender
	if cfg.NtfyEnabled {
		sender = notify.NewNtfySender(notify.NtfyConfig{
			BaseURL: cfg.NtfyBaseURL,
			Token:   cfg.NtfyToken,
			Timeout: cfg.NtfyTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Name:             "ntfy",
				OnStateChange:    logBreakerTransition(logger),
				Enabled:          cfg.NtfyCircuitEnabled,
				FailureThreshold: cfg.NtfyCircuitFailureCount,
				OpenTimeout:      cfg.NtfyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NtfyCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	leaderboardSvc := usecase.NewLeaderboardService(repos.tournament, repos.competition, repos.competitor, repos.pick, rules)
	matchupSvc := usecase.NewMatchupService(repos.tournament, repos.competition, repos.competitor, repos.pick, repos.prop, rules)
	pickSvc := usecase.NewPickService(repos.tournament, repos.competition, repos.pick, logger)
	propSvc := usecase.NewPropService(repos.prop, repos.tournament, logger)
	eventSvc := usecase.NewEventService(
		repos.competition,
		repos.competitor,
		notifier,
		scheduler,
		repos.invalidator,
		usecase.EventServiceConfig{NotifyTopic: cfg.NtfyTopic},
		logger,
	)
	analyticsSvc := usecase.NewDraftAnalyticsService(
		repos.competition,
		repos.tournament,
		repos.competitor,
		repos.analytics,
		locker,
		usecase.DraftAnalyticsConfig{
			MaxWorkers:     cfg.AnalyticsMaxWorkers,
			TallyWorkers:   cfg.AnalyticsTallyWorkers,
			UnitTimeout:    cfg.AnalyticsUnitTimeout,
			CompetitionIDs: cfg.AnalyticsCompetitionIDs,
		},
		logger,
	)
	notificationSvc := usecase.NewNotificationService(sender, cfg.NtfyTopic)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		anubis.Config{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectURL,
			AdminKey:       cfg.AnubisAdminKey,
			CacheTTL:       cfg.AnubisCacheTTL,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Name:             "anubis",
				OnStateChange:    logBreakerTransition(logger),
				Enabled:          cfg.AnubisCircuitEnabled,
				FailureThreshold: cfg.AnubisCircuitFailureCount,
				OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
			},
		},
		logger,
	)

	handler := httpapi.NewHandler(
		leaderboardSvc,
		matchupSvc,
		pickSvc,
		propSvc,
		eventSvc,
		analyticsSvc,
		notificationSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, anubisClient, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
	})

	out.HTTP = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return out, nil
}

func scoringRules(cfg config.Config) scoring.Rules {
	rules := scoring.DefaultRules()
	if cfg.ScoringRankMaxPoints > 0 {
		rules.RankMaxPoints = cfg.ScoringRankMaxPoints
	}
	if cfg.ScoringRankTopN > 0 {
		rules.RankTopN = cfg.ScoringRankTopN
	}
	if cfg.ScoringRankPerfectPick > 0 {
		rules.RankPerfectPick = cfg.ScoringRankPerfectPick
	}
	if cfg.ScoringDraftPerfectPick > 0 {
		rules.DraftPerfectPick = cfg.ScoringDraftPerfectPick
	}
	return rules
}

func logBreakerTransition(logger *logging.Logger) func(string, resilience.CircuitState, resilience.CircuitState) {
	return func(name string, from, to resilience.CircuitState) {
		if to == resilience.CircuitStateOpen {
			logger.Warn("circuit breaker opened", "dependency", name, "from", string(from))
			return
		}
		logger.Info("circuit breaker state changed", "dependency", name, "from", string(from), "to", string(to))
	}
}

// newKeyedLocker returns a redis-backed lock when REDIS_ADDR is set so
// analytics upserts serialize across replicas; otherwise a process-local lock.
func newKeyedLocker(cfg config.Config, logger *logging.Logger) (usecase.KeyedLocker, func() error) {
	if cfg.RedisAddr == "" {
		logger.Info("redis disabled, using process-local analytics lock")
		return lock.NewLocal(), func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	host, _ := os.Hostname()
	locker := lock.NewRedis(client, idgen.NewPrefixedGenerator(host), lock.RedisConfig{
		Prefix: cfg.ServiceName + ":lock:",
		TTL:    cfg.LockTTL,
	})
	logger.Info("redis analytics lock enabled", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return locker, client.Close
}
