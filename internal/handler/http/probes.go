// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

// healthz reports that the process is up. It does not look at dependencies.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// readyz writes the latest readiness report: 200 when every dependency
// check passed or was skipped, 503 otherwise.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report := h.services.ReadinessService.Report(r.Context())

	status := http.StatusOK
	if !report.Ready {
		status = http.StatusServiceUnavailable
	}

	if err := utils.WriteJSON(w, report, status); err != nil {
		log.Err(err).Msg("error writing readiness report")
	}
}
