package prescriptions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// RegisterRoutes configures the prescription HTTP routes on the API router
func (s *Service) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/prescriptions", s.createPrescriptionHandler).Methods("POST")
	api.HandleFunc("/prescriptions/{id}", s.getPrescriptionHandler).Methods("GET")
	api.HandleFunc("/prescriptions/{id}", s.updatePrescriptionHandler).Methods("PUT")
	api.HandleFunc("/prescriptions/{id}", s.deletePrescriptionHandler).Methods("DELETE")
	api.HandleFunc("/prescriptions/{id}/pdf", s.renderPDFHandler).Methods("GET")

	api.HandleFunc("/doctors/{doctorId}/prescriptions", s.listByDoctorHandler).Methods("GET")
	api.HandleFunc("/appointments/{appointmentId}/prescriptions", s.listByAppointmentHandler).Methods("GET")

	s.logger.Info("Prescription routes configured")
}

// createPrescriptionHandler handles guarded prescription creation
func (s *Service) createPrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	var p types.Prescription
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := s.CreatePrescription(&p)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to create prescription", err)
		return
	}

	s.writeJSONResponse(w, http.StatusCreated, created)
}

// getPrescriptionHandler handles prescription retrieval
func (s *Service) getPrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	p, err := s.GetPrescription(vars["id"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Prescription not found", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, p)
}

// updatePrescriptionHandler handles partial prescription updates
func (s *Service) updatePrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var updates types.PrescriptionUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := s.UpdatePrescription(vars["id"], &updates)
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to update prescription", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, updated)
}

// deletePrescriptionHandler handles prescription deletion
func (s *Service) deletePrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := s.DeletePrescription(vars["id"]); err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to delete prescription", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// renderPDFHandler streams the printable prescription document
func (s *Service) renderPDFHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	document, err := s.RenderPDF(vars["id"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to render prescription", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=prescription.pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		s.logger.WithError(err).Error("Failed to write PDF response")
	}
}

// listByDoctorHandler lists prescriptions written by a doctor
func (s *Service) listByDoctorHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prescriptions, err := s.ListByDoctor(vars["doctorId"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to list prescriptions", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"doctor_id":     vars["doctorId"],
		"prescriptions": prescriptions,
	})
}

// listByAppointmentHandler lists the prescriptions linked to an appointment
func (s *Service) listByAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prescriptions, err := s.ListByAppointment(vars["appointmentId"])
	if err != nil {
		s.writeErrorResponse(w, statusForError(err), "Failed to list prescriptions", err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"appointment_id": vars["appointmentId"],
		"prescriptions":  prescriptions,
	})
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
