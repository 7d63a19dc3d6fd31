package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// RegisterRoutes configures the appointment HTTP routes on the API router
func (s *Service) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/appointments", s.bookAppointmentHandler).Methods("POST")
	api.HandleFunc("/appointments/{id}", s.getAppointmentHandler).Methods("GET")
	api.HandleFunc("/appointments/{id}/status", s.updateStatusHandler).Methods("PUT")
	api.HandleFunc("/appointments/{id}/schedule", s.rescheduleHandler).Methods("PUT")
	api.HandleFunc("/appointments/{id}", s.cancelAppointmentHandler).Methods("DELETE")

	api.HandleFunc("/doctors/{doctorId}/appointments", s.listOwnerAppointmentsHandler(types.RoleDoctor, "doctorId")).Methods("GET")
	api.HandleFunc("/patients/{patientId}/appointments", s.listOwnerAppointmentsHandler(types.RolePatient, "patientId")).Methods("GET")

	s.logger.Info("Appointment routes configured")
}

// bookAppointmentHandler handles appointment booking
func (s *Service) bookAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var apt types.Appointment
	if err := json.NewDecoder(r.Body).Decode(&apt); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.BookAppointment(&apt)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to book appointment", err)
		return
	}

	s.writeJSONResponse(w, http.StatusCreated, created)
}

// getAppointmentHandler handles appointment retrieval
func (s *Service) getAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apt, err := s.GetAppointment(vars["id"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Appointment not found", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, apt)
}

// updateStatusHandler handles status transitions
func (s *Service) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var request struct {
		Status types.AppointmentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := s.UpdateStatus(vars["id"], request.Status)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to update appointment status", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, updated)
}

// rescheduleHandler handles schedule changes
func (s *Service) rescheduleHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var change types.ScheduleChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := s.Reschedule(vars["id"], change.Date, change.Time)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to reschedule appointment", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, updated)
}

// cancelAppointmentHandler handles appointment cancellation
func (s *Service) cancelAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cancelled, err := s.CancelAppointment(vars["id"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to cancel appointment", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, cancelled)
}

// listOwnerAppointmentsHandler serves the list, grouped and calendar
// projections of one owner's appointments. The `tab` query selects
// upcoming/past; `view=grouped` buckets by date; `view=calendar` projects
// the full set into positioned events. An optional RFC 3339 `now` keeps
// responses deterministic for clients that need it.
func (s *Service) listOwnerAppointmentsHandler(role types.Role, pathVar string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		ownerID := vars[pathVar]

		now := time.Now()
		if raw := r.URL.Query().Get("now"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				s.writeErrorResponse(w, http.StatusBadRequest, "Invalid now parameter", err)
				return
			}
			now = parsed
		}

		switch r.URL.Query().Get("view") {
		case "calendar":
			events, err := s.CalendarEvents(ownerID, role)
			if err != nil {
				s.writeErrorResponse(w, statusForError(err), "Failed to load calendar", err)
				return
			}
			s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
				"owner_id": ownerID,
				"events":   events,
			})

		case "grouped":
			tab := tabOrDefault(r)
			groups, err := s.GroupedAppointments(ownerID, role, tab, now)
			if err != nil {
				s.writeErrorResponse(w, statusForError(err), "Failed to load appointments", err)
				return
			}
			s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
				"owner_id": ownerID,
				"tab":      tab,
				"groups":   groups,
			})

		default:
			tab := tabOrDefault(r)
			appts, err := s.TabbedAppointments(ownerID, role, tab, now)
			if err != nil {
				s.writeErrorResponse(w, statusForError(err), "Failed to load appointments", err)
				return
			}
			s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
				"owner_id":     ownerID,
				"tab":          tab,
				"appointments": appts,
			})
		}
	}
}

// HealthHandler reports service liveness. It is registered outside the
// authenticated API subtree so probes need no token.
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "appointments",
		"timestamp": time.Now().UTC(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

func tabOrDefault(r *http.Request) string {
	tab := r.URL.Query().Get("tab")
	if tab != types.TabPast {
		tab = types.TabUpcoming
	}
	return tab
}

// statusForError maps the error taxonomy onto HTTP status codes
func statusForError(err error) int {
	var appErr *types.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case types.ErrorTypeValidation:
		return http.StatusBadRequest
	case types.ErrorTypeNotFound:
		return http.StatusNotFound
	case types.ErrorTypeConflict:
		return http.StatusConflict
	case types.ErrorTypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONResponse writes a JSON response
func (s *Service) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (s *Service) writeErrorResponse(w http.ResponseWriter, statusCode int, message string, err error) {
	s.logger.WithError(err).Error(message)

	response := map[string]interface{}{
		"error":  message,
		"status": statusCode,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	s.writeJSONResponse(w, statusCode, response)
}
