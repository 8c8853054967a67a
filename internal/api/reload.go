package api

import (
	"net/http"

	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/logger"
)

// ReloadHandler: POST only, guarded by the x-admin-token header. Reloads the sources and swaps the snapshot; the
// previous snapshot keeps serving if the reload fails.
func ReloadHandler(l *dashboard.Loader, h *dashboard.Holder, adminToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := r.Header.Get("x-admin-token")
		if t == "" || adminToken == "" || t != adminToken {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s, err := l.Reload(r.Context())
		if err != nil {
			logger.L().Error("snapshot_reload_error", "err", err)
			writeError(w, http.StatusInternalServerError, "reload failed")
			return
		}
		h.Set(s)
		logger.L().Info("snapshot_reloaded", "version", s.Version(), "rows", s.Vacancies.Len())
		writeJSON(w, http.StatusOK, map[string]any{"version": s.Version(), "rows": s.Vacancies.Len()})
	}
}
