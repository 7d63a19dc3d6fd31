package prescriptions

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// RenderPDF renders a printable prescription document
func (s *Service) RenderPDF(id string) ([]byte, error) {
	p, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	apt, err := s.appointments.GetByID(p.AppointmentID)
	if err != nil {
		return nil, err
	}

	document, err := renderPrescription(p, apt)
	if err != nil {
		s.logger.WithError(err).Errorf("Failed to render prescription %s", id)
		return nil, types.NewInternalError(types.ErrCodeInternalError, "failed to render prescription", err)
	}

	return document, nil
}

func renderPrescription(p *types.Prescription, apt *types.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Docto Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Dr. %s, %s", apt.DoctorName, apt.Specialty), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Prescription", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Prescription ID", p.ID)
	addDetail(pdf, "Patient", apt.PatientName)
	addDetail(pdf, "Visit Date", apt.Date)
	addDetail(pdf, "Issued", p.Date)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Medications", "1", 1, "C", false, 0, "")
	for i, m := range p.Medications {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s  %s", i+1, m.Name, m.Dosage), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		if m.Instructions != "" {
			pdf.MultiCell(0, 5, m.Instructions, "", "L", false)
		}
		if m.Duration != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("Duration: %s", m.Duration), "", 1, "L", false, 0, "")
		}
	}

	if p.Notes != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 10, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, p.Notes, "", "L", false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 10, "This is a computer generated prescription", "", 1, "R", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 7, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, value, "1", 1, "L", false, 0, "")
}
