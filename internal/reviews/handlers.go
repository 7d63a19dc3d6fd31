package reviews

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// RegisterRoutes configures the review HTTP routes on the API router
func (s *Service) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/reviews", s.createReviewHandler).Methods("POST")
	api.HandleFunc("/doctors/{doctorId}/reviews", s.listByDoctorHandler).Methods("GET")
	api.HandleFunc("/patients/{patientId}/reviews", s.listByPatientHandler).Methods("GET")
	api.HandleFunc("/appointments/{appointmentId}/review", s.getByAppointmentHandler).Methods("GET")

	s.logger.Info("Review routes configured")
}

// createReviewHandler handles review creation
func (s *Service) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var review types.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.CreateReview(&review)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to create review", err)
		return
	}

	s.writeJSONResponse(w, http.StatusCreated, created)
}

// listByDoctorHandler lists reviews for a doctor
func (s *Service) listByDoctorHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviews, err := s.ListByDoctor(vars["doctorId"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to list reviews", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"doctor_id": vars["doctorId"],
		"reviews":   reviews,
	})
}

// listByPatientHandler lists reviews written by a patient
func (s *Service) listByPatientHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviews, err := s.ListByPatient(vars["patientId"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to list reviews", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"patient_id": vars["patientId"],
		"reviews":    reviews,
	})
}

// getByAppointmentHandler retrieves the review for an appointment
func (s *Service) getByAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	review, err := s.GetByAppointment(vars["appointmentId"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Review not found", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, review)
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
