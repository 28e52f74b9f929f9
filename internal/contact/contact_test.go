package contact

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Training",
		Message: "I would like to enrol my team.",
	}
}

func TestDecode_Form(t *testing.T) {
	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hi"},
		"message": {"Hello"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	sub, isJSON, err := Decode(req)
	require.NoError(t, err)
	assert.False(t, isJSON)
	assert.Equal(t, Submission{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}, sub)
}

func TestDecode_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	sub, isJSON, err := Decode(req)
	require.NoError(t, err)
	assert.True(t, isJSON)
	assert.Equal(t, "Ada", sub.Name)

	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	_, _, err = Decode(req)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestSanitize(t *testing.T) {
	s := NewService(nil, nil)
	sub := s.Sanitize(Submission{
		Name:    "  <b>Ada</b> ",
		Email:   "ada@example.com",
		Subject: "<script>alert(1)</script>Hi",
		Message: "O'Brien & co",
	})
	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "Hi", sub.Subject)
	assert.Equal(t, "O'Brien & co", sub.Message)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validSubmission()))

	err := Validate(Submission{Email: "not-an-email"})
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Equal(t, "required", appErr.Details["name"])
	assert.Equal(t, "invalid", appErr.Details["email"])
	assert.Equal(t, "required", appErr.Details["subject"])
	assert.Equal(t, "required", appErr.Details["message"])

	long := validSubmission()
	long.Message = strings.Repeat("x", maxFieldRunes+1)
	require.True(t, errors.As(Validate(long), &appErr))
	assert.Equal(t, "too long", appErr.Details["message"])

	named := validSubmission()
	named.Email = "Ada <ada@example.com>"
	assert.Error(t, Validate(named), "display-name form is not a bare address")
}

func TestSubmit_LogsAcceptedSubmission(t *testing.T) {
	var buf bytes.Buffer
	s := NewService(NewRateLimiter(60, 5), slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Submit(context.Background(), "10.0.0.1", validSubmission()))
	out := buf.String()
	assert.Contains(t, out, "contact form submitted")
	assert.Contains(t, out, "scope=contact")
	assert.Contains(t, out, "ada@example.com")
	assert.NotContains(t, out, "enrol my team", "message body is not logged")
}

func TestSubmit_RateLimited(t *testing.T) {
	s := NewService(NewRateLimiter(1, 2), nil)
	ctx := context.Background()

	require.NoError(t, s.Submit(ctx, "10.0.0.1", validSubmission()))
	require.NoError(t, s.Submit(ctx, "10.0.0.1", validSubmission()))
	assert.ErrorIs(t, s.Submit(ctx, "10.0.0.1", validSubmission()), apperror.ErrTooManyRequests)

	assert.NoError(t, s.Submit(ctx, "10.0.0.2", validSubmission()), "limits are per client")
}

func TestRateLimiter_Sweep(t *testing.T) {
	l := NewRateLimiter(60, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.Equal(t, 1, l.Len())

	now = now.Add(time.Minute)
	l.sweep(now)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Allow("a"))
}
