package sentry

import (
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"theater/pkg/config"
)

// FlushTime bounds how long buffered events are flushed on shutdown.
var FlushTime = 2 * time.Second

// Init configures the global sentry client. An empty DSN leaves the
// client disabled, which sentry-go treats as a no-op transport.
func Init(cfg *config.Config) error {
	return sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
}

// Flush waits up to FlushTime for queued events to be delivered.
func Flush() bool {
	return sentrygo.Flush(FlushTime)
}

// Sentry builds a single event. Methods return the receiver so calls chain.
type Sentry struct {
	context echo.Context
	error   error
	level   sentrygo.Level
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) Error(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelError).sendError()
}

func (s *Sentry) sendError() {
	if !enabled() || s.error == nil {
		return
	}
	s.hub().WithScope(func(scope *sentrygo.Scope) {
		s.configure(scope)
		s.hub().CaptureException(s.error)
	})
}

func (s *Sentry) configure(scope *sentrygo.Scope) {
	if s.level != "" {
		scope.SetLevel(s.level)
	}
	if s.context != nil && s.context.Request() != nil {
		scope.SetRequest(s.context.Request())
		if id := s.context.Response().Header().Get(echo.HeaderXRequestID); id != "" {
			scope.SetTag("request_id", id)
		}
	}
}

// hub prefers the per-request hub installed by the sentryecho middleware.
func (s *Sentry) hub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func enabled() bool {
	return os.Getenv("APP_ENV") != "local" && os.Getenv("SENTRY_DSN") != ""
}
