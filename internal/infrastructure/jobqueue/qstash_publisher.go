package jobqueue

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	NotifyJobPath    = "/v1/internal/jobs/notify"
	AnalyticsJobPath = "/v1/internal/jobs/analytics"

	// analyticsDedupWindow collapses bursts of score updates into one pass.
	analyticsDedupWindow = 30 * time.Second
)

var (
	ErrTransient   = crerr.New("qstash transient failure")
	ErrNotEnabled  = crerr.New("qstash publisher is not configured")
	errInvalidPath = crerr.New("job path is required")
)

type QStashPublisherConfig struct {
	BaseURL          string
	Token            string
	TargetBaseURL    string
	Retries          int
	InternalJobToken string
	Timeout          time.Duration
	AnalyticsDelay   time.Duration
	CircuitBreaker   resilience.CircuitBreakerConfig
}

// QStashPublisher hands background jobs to QStash, which calls back into the
// internal job endpoints. It implements usecase.Notifier and usecase.AnalyticsScheduler.
type QStashPublisher struct {
	client           *http.Client
	baseURL          string
	token            string
	targetBaseURL    string
	retries          int
	internalJobToken string
	analyticsDelay   time.Duration
	breaker          *resilience.CircuitBreaker
	logger           *logging.Logger
	now              func() time.Time
}

var (
	_ usecase.Notifier           = (*QStashPublisher)(nil)
	_ usecase.AnalyticsScheduler = (*QStashPublisher)(nil)
)

func NewQStashPublisher(cfg QStashPublisherConfig, logger *logging.Logger) *QStashPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "qstash"
	}

	return &QStashPublisher{
		client:           &http.Client{Timeout: timeout},
		baseURL:          strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:            strings.TrimSpace(cfg.Token),
		targetBaseURL:    strings.TrimRight(strings.TrimSpace(cfg.TargetBaseURL), "/"),
		retries:          cfg.Retries,
		internalJobToken: strings.TrimSpace(cfg.InternalJobToken),
		analyticsDelay:   cfg.AnalyticsDelay,
		breaker:          resilience.NewCircuitBreaker(breakerCfg),
		logger:           logger,
		now:              time.Now,
	}
}

func (p *QStashPublisher) Notify(ctx context.Context, n usecase.Notification) error {
	return p.Enqueue(ctx, NotifyJobPath, n, 0, "")
}

// ScheduleAnalytics enqueues an analytics pass deduplicated per competition
// set within a short window.
func (p *QStashPublisher) ScheduleAnalytics(ctx context.Context, input usecase.AnalyticsRunInput) error {
	return p.Enqueue(ctx, AnalyticsJobPath, input, p.analyticsDelay, p.analyticsDedupID(input.CompetitionIDs))
}

func (p *QStashPublisher) Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error {
	if p.token == "" {
		return ErrNotEnabled
	}
	path = "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "/" {
		return errInvalidPath
	}

	baseURL, err := validateHTTPBaseURL(p.baseURL)
	if err != nil {
		return crerr.Wrap(err, "invalid QSTASH_BASE_URL")
	}
	targetBaseURL, err := validateHTTPBaseURL(p.targetBaseURL)
	if err != nil {
		return crerr.Wrap(err, "invalid QSTASH_TARGET_BASE_URL")
	}

	if payload == nil {
		payload = map[string]any{}
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return crerr.Wrap(err, "marshal job payload")
	}

	job := publishRequest{
		publishURL:      baseURL + "/v2/publish/" + targetBaseURL + path,
		targetURL:       targetBaseURL + path,
		path:            path,
		delay:           normalizeDelay(delay),
		deduplicationID: strings.TrimSpace(deduplicationID),
		body:            body,
	}

	err = p.breaker.Do(func() error { return p.publish(ctx, job) }, isTransient)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		p.logger.WarnContext(ctx, "qstash circuit breaker rejected request", "path", path, "state", p.breaker.State())
		return crerr.Wrap(err, "qstash is temporarily unavailable")
	}
	if err != nil {
		p.logger.WarnContext(ctx, "qstash publish failed", "path", path, "error", err)
		return err
	}

	p.logger.InfoContext(ctx, "qstash job published", "path", path, "delay", job.delay, "deduplication_id", job.deduplicationID)
	return nil
}

type publishRequest struct {
	publishURL      string
	targetURL       string
	path            string
	delay           string
	deduplicationID string
	body            []byte
}

func (p *QStashPublisher) publish(ctx context.Context, job publishRequest) error {
	bodyText := truncateForLog(string(job.body), 4096)
	curlPreview := p.curlPreview(job, bodyText)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String("qstash.target_url", job.targetURL),
			attribute.String("qstash.path", job.path),
			attribute.String("qstash.request_body", bodyText),
			attribute.String("qstash.request_curl_preview", curlPreview),
		)
	}
	p.logger.DebugContext(ctx, "qstash publish request", "path", job.path, "target_url", job.targetURL, "curl_preview", curlPreview)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, job.publishURL, bytes.NewReader(job.body))
	if err != nil {
		return crerr.Wrap(err, "create qstash request")
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Upstash-Method", http.MethodPost)
	if p.retries > 0 {
		req.Header.Set("Upstash-Retries", strconv.Itoa(p.retries))
	}
	if job.delay != "0s" {
		req.Header.Set("Upstash-Delay", job.delay)
	}
	if job.deduplicationID != "" {
		req.Header.Set("Upstash-Deduplication-Id", job.deduplicationID)
	}
	if p.internalJobToken != "" {
		req.Header.Set("Upstash-Forward-X-Internal-Job-Token", p.internalJobToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return crerr.Mark(crerr.Wrapf(err, "publish qstash job target_url=%s", job.targetURL), ErrTransient)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 == 2 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	callErr := crerr.Newf("publish qstash job status=%d target_url=%s body=%s", resp.StatusCode, job.targetURL, strings.TrimSpace(string(raw)))
	if isRetryableStatus(resp.StatusCode) {
		return crerr.Mark(callErr, ErrTransient)
	}
	return callErr
}

func (p *QStashPublisher) analyticsDedupID(competitionIDs []int64) string {
	ids := append([]int64(nil), competitionIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("analytics")
	if len(ids) == 0 {
		_, _ = buf.WriteString("-all")
	}
	for _, id := range ids {
		_ = buf.WriteByte('-')
		_, _ = buf.WriteString(strconv.FormatInt(id, 10))
	}
	bucket := p.now().UTC().Truncate(analyticsDedupWindow).Unix()
	_ = buf.WriteByte('-')
	_, _ = buf.WriteString(strconv.FormatInt(bucket, 10))
	return buf.String()
}

func (p *QStashPublisher) curlPreview(job publishRequest, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}
	appendHeader := func(value string) {
		appendPart("-H")
		appendPart(shellQuote(value))
	}

	appendPart("curl -X POST")
	appendPart(shellQuote(job.publishURL))
	appendHeader("Authorization: Bearer ***")
	appendHeader("Content-Type: application/json")
	appendHeader("Upstash-Method: POST")
	if p.retries > 0 {
		appendHeader("Upstash-Retries: " + strconv.Itoa(p.retries))
	}
	if job.delay != "0s" {
		appendHeader("Upstash-Delay: " + job.delay)
	}
	if job.deduplicationID != "" {
		appendHeader("Upstash-Deduplication-Id: " + job.deduplicationID)
	}
	if p.internalJobToken != "" {
		appendHeader("Upstash-Forward-X-Internal-Job-Token: ***")
	}
	appendPart("-d")
	appendPart(shellQuote(body))
	return buf.String()
}

func normalizeDelay(delay time.Duration) string {
	seconds := int(delay.Round(time.Second).Seconds())
	if seconds <= 0 {
		return "0s"
	}
	return fmt.Sprintf("%ds", seconds)
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func isTransient(err error) bool {
	return crerr.Is(err, ErrTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
