package notify

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/logging"
	"github.com/riskibarqy/fantasy-fitness/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
	"github.com/valyala/fasthttp"
)

var (
	ErrTransient  = crerr.New("ntfy transient failure")
	ErrNotEnabled = crerr.New("ntfy sender is not configured")
)

type NtfyConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// NtfySender publishes notifications to an ntfy server using its JSON
// publish endpoint.
type NtfySender struct {
	client  *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

var _ usecase.PushSender = (*NtfySender)(nil)

type ntfyMessage struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message"`
	Tags     []string `json:"tags,omitempty"`
	Priority int      `json:"priority,omitempty"`
}

func NewNtfySender(cfg NtfyConfig, logger *logging.Logger) *NtfySender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "ntfy"
	}

	return &NtfySender{
		client: &fasthttp.Client{
			Name:         "fantasy-fitness",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		breaker: resilience.NewCircuitBreaker(breakerCfg),
		logger:  logger,
	}
}

func (s *NtfySender) Send(ctx context.Context, n usecase.Notification) error {
	if s.baseURL == "" {
		return ErrNotEnabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := sonic.Marshal(ntfyMessage{
		Topic:    n.Topic,
		Title:    n.Title,
		Message:  n.Message,
		Tags:     n.Tags,
		Priority: clampPriority(n.Priority),
	})
	if err != nil {
		return crerr.Wrap(err, "marshal ntfy message")
	}

	err = s.breaker.Do(func() error { return s.post(ctx, body) }, isTransient)
	if err != nil {
		s.logger.WarnContext(ctx, "ntfy send failed", "topic", n.Topic, "state", s.breaker.State(), "error", err)
		return err
	}
	s.logger.DebugContext(ctx, "ntfy message sent", "topic", n.Topic)
	return nil
}

func (s *NtfySender) post(ctx context.Context, body []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(s.baseURL + "/")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.SetBodyRaw(body)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = s.client.DoDeadline(req, resp, deadline)
	} else {
		err = s.client.DoTimeout(req, resp, s.timeout)
	}
	if err != nil {
		return crerr.Mark(crerr.Wrap(err, "post ntfy message"), ErrTransient)
	}

	status := resp.StatusCode()
	if status/100 == 2 {
		return nil
	}
	callErr := crerr.Newf("ntfy status=%d body=%s", status, strings.TrimSpace(string(resp.Body())))
	if status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError {
		return crerr.Mark(callErr, ErrTransient)
	}
	return callErr
}

func isTransient(err error) bool {
	return crerr.Is(err, ErrTransient)
}

// ntfy accepts priorities 1 (min) to 5 (max); zero leaves the server default.
func clampPriority(p int) int {
	switch {
	case p <= 0:
		return 0
	case p > 5:
		return 5
	default:
		return p
	}
}
