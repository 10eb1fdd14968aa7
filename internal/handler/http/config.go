package http

import (
	"net/http"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

func (h *Handler) getPublicConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	public := h.services.ConfigService.PublicConfig(r.Context())

	if err := utils.WriteJSON(w, public, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public config")
	}
}
