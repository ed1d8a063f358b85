package routes

import (
	"net/http"
	"strings"

	"incargo/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func register(path string, h http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

// splitItemPath turns "/vehicles/42/location" under prefix "/vehicles/"
// into ("42", "location"). The action part is empty for plain item paths.
func splitItemPath(path, prefix string) (id, action string) {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i], rest[i+1:]
	}
	return rest, ""
}

func SetupRoutes(
	vehicleHandler *handlers.VehicleHandler,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ServiceHandler,
	quoteHandler *handlers.QuoteHandler,
	containerHandler *handlers.ContainerHandler,
	companyHandler *handlers.CompanyHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Vehicle routes
	register("/vehicles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			vehicleHandler.List(w, r)
		case http.MethodPost:
			vehicleHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		id, action := splitItemPath(r.URL.Path, "/vehicles/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case action == "location" && r.Method == http.MethodPut:
			vehicleHandler.UpdateLocation(w, r, id)
		case action == "kilometers" && r.Method == http.MethodPut:
			vehicleHandler.UpdateKilometers(w, r, id)
		case action == "" && r.Method == http.MethodGet:
			vehicleHandler.GetByID(w, r, id)
		case action == "" && r.Method == http.MethodPut:
			vehicleHandler.Update(w, r, id)
		case action == "" && r.Method == http.MethodDelete:
			vehicleHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Client routes
	register("/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			clientHandler.List(w, r)
		case http.MethodPost:
			clientHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/clients/", func(w http.ResponseWriter, r *http.Request) {
		id, action := splitItemPath(r.URL.Path, "/clients/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case action == "balance" && r.Method == http.MethodPut:
			clientHandler.UpdateBalance(w, r, id)
		case action == "services" && r.Method == http.MethodPost:
			clientHandler.AddContractedService(w, r, id)
		case action == "" && r.Method == http.MethodGet:
			clientHandler.GetByID(w, r, id)
		case action == "" && r.Method == http.MethodPut:
			clientHandler.Update(w, r, id)
		case action == "" && r.Method == http.MethodDelete:
			clientHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Service routes
	register("/services", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			serviceHandler.List(w, r)
		case http.MethodPost:
			serviceHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/services/", func(w http.ResponseWriter, r *http.Request) {
		id, action := splitItemPath(r.URL.Path, "/services/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case action == "status" && r.Method == http.MethodPut:
			serviceHandler.UpdateStatus(w, r, id)
		case action == "cancel" && r.Method == http.MethodPost:
			serviceHandler.Cancel(w, r, id)
		case action == "vehicle" && r.Method == http.MethodPut:
			serviceHandler.AssignVehicle(w, r, id)
		case action == "" && r.Method == http.MethodGet:
			serviceHandler.GetByID(w, r, id)
		case action == "" && r.Method == http.MethodPut:
			serviceHandler.Update(w, r, id)
		case action == "" && r.Method == http.MethodDelete:
			serviceHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Quote routes
	register("/quotes/pdf", pdfHandler.QuotePDF)
	register("/quotes/expire", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		quoteHandler.Expire(w, r)
	})
	register("/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			quoteHandler.List(w, r)
		case http.MethodPost:
			quoteHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/quotes/", func(w http.ResponseWriter, r *http.Request) {
		id, action := splitItemPath(r.URL.Path, "/quotes/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case action == "send" && r.Method == http.MethodPost:
			quoteHandler.Send(w, r, id)
		case action == "approve" && r.Method == http.MethodPost:
			quoteHandler.Approve(w, r, id)
		case action == "reject" && r.Method == http.MethodPost:
			quoteHandler.Reject(w, r, id)
		case action == "duplicate" && r.Method == http.MethodPost:
			quoteHandler.Duplicate(w, r, id)
		case action == "convert" && r.Method == http.MethodPost:
			quoteHandler.Convert(w, r, id)
		case action == "" && r.Method == http.MethodGet:
			quoteHandler.GetByID(w, r, id)
		case action == "" && r.Method == http.MethodPut:
			quoteHandler.Update(w, r, id)
		case action == "" && r.Method == http.MethodDelete:
			quoteHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Container routes
	register("/containers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			containerHandler.List(w, r)
		case http.MethodPost:
			containerHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	register("/containers/", func(w http.ResponseWriter, r *http.Request) {
		id, action := splitItemPath(r.URL.Path, "/containers/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case action == "location" && r.Method == http.MethodPut:
			containerHandler.UpdateLocation(w, r, id)
		case action == "temperature" && r.Method == http.MethodPut:
			containerHandler.UpdateTemperature(w, r, id)
		case action == "deliver" && r.Method == http.MethodPost:
			containerHandler.Deliver(w, r, id)
		case action == "tracking" && r.Method == http.MethodGet:
			containerHandler.GetTracking(w, r, id)
		case action == "tracking" && r.Method == http.MethodPost:
			containerHandler.AddTrackingEvent(w, r, id)
		case action == "" && r.Method == http.MethodGet:
			containerHandler.GetByID(w, r, id)
		case action == "" && r.Method == http.MethodPut:
			containerHandler.Update(w, r, id)
		case action == "" && r.Method == http.MethodDelete:
			containerHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Company profile routes
	register("/company", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			companyHandler.Get(w, r)
		case http.MethodPost, http.MethodPut:
			companyHandler.Save(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Analytics routes
	register("/analytics/dashboard", analyticsHandler.Dashboard)
	register("/analytics/revenue", analyticsHandler.Revenue)
	register("/analytics/fleet-utilization", analyticsHandler.FleetUtilization)
	register("/analytics/client-performance", analyticsHandler.ClientPerformance)
}
