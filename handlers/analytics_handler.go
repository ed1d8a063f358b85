package handlers

import (
	"net/http"

	"incargo/analytics"
)

type AnalyticsHandler struct {
	Service *analytics.Service
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.DashboardStats()
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Revenue requires ?start= and ?end= dates bounding fecha_inicio.
func (h *AnalyticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		badRequest(w, "start and end are required")
		return
	}

	data, err := h.Service.RevenueData(start, end)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *AnalyticsHandler) FleetUtilization(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.FleetUtilization()
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *AnalyticsHandler) ClientPerformance(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ClientPerformance()
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
