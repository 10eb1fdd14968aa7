package http

import (
	"net/http"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

const (
	buildCommitHeader = "X-Build-Commit"
	buildDateHeader   = "X-Build-Date"
)

// getServerVersion writes the deployed version as plain text. The build that
// serves it is named in response headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set(buildCommitHeader, info.Build.Commit)
	w.Header().Set(buildDateHeader, info.Build.Date)
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info := h.services.AppInfoService.GetAppInfo(r.Context())

	if err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing build info")
	}
}
