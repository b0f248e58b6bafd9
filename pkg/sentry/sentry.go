package sentry

import (
	"fmt"
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long Fatal waits for buffered events to reach Sentry.
var FlushTime = 2 * time.Second

// Sentry is a small builder around sentry-go. Events are dropped unless
// SENTRY_DSN is set and APP_ENV is not "local".
type Sentry struct {
	context       echo.Context
	error         error
	message       string
	level         sentrygo.Level
	extras        map[string]interface{}
	tags          map[string]string
	contextValues map[string]sentrygo.Context
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func WithExtras(extras map[string]interface{}) *Sentry {
	return new(Sentry).WithExtras(extras)
}

func WithTags(tags map[string]string) *Sentry {
	return new(Sentry).WithTags(tags)
}

func WithContextValues(values map[string]sentrygo.Context) *Sentry {
	return new(Sentry).WithContextValues(values)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(message string) *Sentry {
	s.message = message
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithContextValues(values map[string]sentrygo.Context) *Sentry {
	s.contextValues = values
	return s
}

func (s *Sentry) Debug(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelDebug).sendMessage()
}

func (s *Sentry) Info(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelInfo).sendMessage()
}

func (s *Sentry) Warning(message string) {
	s.WithMessage(message).WithLevel(sentrygo.LevelWarning).sendMessage()
}

func (s *Sentry) Debugf(format string, a ...interface{}) {
	s.Debug(fmt.Sprintf(format, a...))
}

func (s *Sentry) Infof(format string, a ...interface{}) {
	s.Info(fmt.Sprintf(format, a...))
}

func (s *Sentry) Warningf(format string, a ...interface{}) {
	s.Warning(fmt.Sprintf(format, a...))
}

func (s *Sentry) Error(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelError).sendError()
}

func (s *Sentry) Errorf(format string, a ...interface{}) {
	s.Error(fmt.Errorf(format, a...))
}

// Fatal reports the error and flushes, it does not terminate the process.
func (s *Sentry) Fatal(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelFatal).sendError()
	sentrygo.Flush(FlushTime)
}

func (s *Sentry) Fatalf(format string, a ...interface{}) {
	s.Fatal(fmt.Errorf(format, a...))
}

func (s *Sentry) sendMessage() {
	if !enabled() {
		return
	}

	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureMessage(s.message)
	})
}

func (s *Sentry) sendError() {
	if !enabled() {
		return
	}

	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(s.error)
	})
}

func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)
	if s.extras != nil {
		scope.SetExtras(s.extras)
	}
	if s.tags != nil {
		scope.SetTags(s.tags)
	}
	for key, value := range s.contextValues {
		scope.SetContext(key, value)
	}
}

func enabled() bool {
	return os.Getenv("APP_ENV") != "local" && os.Getenv("SENTRY_DSN") != ""
}

func Debug(message string)                     { new(Sentry).Debug(message) }
func Debugf(format string, a ...interface{})   { new(Sentry).Debugf(format, a...) }
func Info(message string)                      { new(Sentry).Info(message) }
func Infof(format string, a ...interface{})    { new(Sentry).Infof(format, a...) }
func Warning(message string)                   { new(Sentry).Warning(message) }
func Warningf(format string, a ...interface{}) { new(Sentry).Warningf(format, a...) }
func Error(err error)                          { new(Sentry).Error(err) }
func Errorf(format string, a ...interface{})   { new(Sentry).Errorf(format, a...) }
func Fatal(err error)                          { new(Sentry).Fatal(err) }
func Fatalf(format string, a ...interface{})   { new(Sentry).Fatalf(format, a...) }
