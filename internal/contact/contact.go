// Package contact accepts contact form submissions. There is no delivery
// backend: submissions are validated, sanitised and logged.
package contact

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mrsuber/ResultInstitudeWeb/internal/metrics"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

const (
	maxBodyBytes  = 64 << 10
	maxFieldRunes = 5000
)

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Service validates and records submissions.
type Service struct {
	limiter *RateLimiter
	policy  *bluemonday.Policy
	log     *slog.Logger
}

func NewService(limiter *RateLimiter, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		limiter: limiter,
		policy:  bluemonday.StrictPolicy(),
		log:     log.With(logger.Scope("contact")),
	}
}

// Decode reads a submission from a form post or a JSON body.
func Decode(r *http.Request) (Submission, bool, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var s Submission
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil && err != io.EOF {
			return Submission{}, true, apperror.NewBadRequest("invalid JSON body").WithInternal(err)
		}
		return s, true, nil
	}

	if err := r.ParseForm(); err != nil {
		return Submission{}, false, apperror.NewBadRequest("invalid form body").WithInternal(err)
	}
	return Submission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}, false, nil
}

// Sanitize strips markup and surrounding space from every field.
func (s *Service) Sanitize(sub Submission) Submission {
	clean := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
	}
	return Submission{
		Name:    clean(sub.Name),
		Email:   clean(sub.Email),
		Subject: clean(sub.Subject),
		Message: clean(sub.Message),
	}
}

// Validate checks that every field is present and the email is well formed.
func Validate(sub Submission) error {
	fields := map[string]string{}
	check := func(name, v string) {
		switch {
		case v == "":
			fields[name] = "required"
		case utf8.RuneCountInString(v) > maxFieldRunes:
			fields[name] = "too long"
		}
	}
	check("name", sub.Name)
	check("email", sub.Email)
	check("subject", sub.Subject)
	check("message", sub.Message)

	if _, ok := fields["email"]; !ok {
		if addr, err := mail.ParseAddress(sub.Email); err != nil || addr.Address != sub.Email {
			fields["email"] = "invalid"
		}
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

// Submit rate limits by client, then sanitises, validates and logs the
// submission.
func (s *Service) Submit(ctx context.Context, client string, sub Submission) error {
	if s.limiter != nil && !s.limiter.Allow(client) {
		metrics.ContactSubmissions.WithLabelValues("rate_limited").Inc()
		return apperror.ErrTooManyRequests
	}

	sub = s.Sanitize(sub)
	if err := Validate(sub); err != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return err
	}

	s.log.InfoContext(ctx, "contact form submitted",
		slog.String("name", sub.Name),
		slog.String("email", sub.Email),
		slog.String("subject", sub.Subject),
		slog.Int("message_length", utf8.RuneCountInString(sub.Message)),
	)
	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	return nil
}
