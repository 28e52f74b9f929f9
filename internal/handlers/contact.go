package handlers

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/mrsuber/ResultInstitudeWeb/internal/contact"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/apperror"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

// SentLocation is where a successful form post lands: the page with the
// confirmation shown and an empty form.
const SentLocation = "/?sent=1#contact"

type Contact struct {
	svc *contact.Service
	log *slog.Logger
}

func NewContact(svc *contact.Service, log *slog.Logger) *Contact {
	if log == nil {
		log = logger.Nop()
	}
	return &Contact{svc: svc, log: log.With(logger.Scope("contact.http"))}
}

// Submit accepts a form post (answered with a redirect) or a JSON body
// (answered with 202).
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	sub, isJSON, err := contact.Decode(r)
	if err == nil {
		err = c.svc.Submit(r.Context(), clientIP(r), sub)
	}

	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusUnprocessableEntity {
			c.log.Debug("contact form rejected", slog.Any("fields", appErr.Details))
		}
		apperror.Write(w, r, c.log, err)
		return
	}

	if isJSON {
		apperror.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
		return
	}
	http.Redirect(w, r, SentLocation, http.StatusSeeOther)
}

// clientIP strips the port from RemoteAddr; middleware.RealIP has already
// applied forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
