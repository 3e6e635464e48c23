package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	pingResponse   = "pong"
	secretResponse = "The answer is 42"
)

// ping is a liveness check. It answers regardless of the caller's identity.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteJSON(w, http.StatusOK, pingResponse); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing ping response")
	}
}

func (h *Handler) secret(w http.ResponseWriter, r *http.Request, _ models.Identity) {
	if err := utils.WriteJSON(w, http.StatusOK, secretResponse); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing secret response")
	}
}

// userinfo returns the email of the authenticated caller.
func (h *Handler) userinfo(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	log := logger.FromRequest(r)

	if identity.Email == "" {
		log.Err(ErrIdentityWithoutEmail).Int64("id", identity.UserID).Send()
		writeInternalError(w)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, models.UserInfo{Email: identity.Email}); err != nil {
		log.Err(err).Msg("error writing userinfo response")
	}
}
