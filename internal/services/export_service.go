package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"pspk/internal/repositories"
)

// Column order is part of the export contract with the secretariat's
// spreadsheets; do not reorder.
var exportHeader = []string{
	"First Name", "Last Name", "Email", "Phone", "National ID Number",
	"Date of Birth", "Gender", "County", "Constituency", "Ward", "Registered At",
}

type ExportService interface {
	WriteRegistrationsCSV(w io.Writer) error
}

type exportService struct {
	regs repositories.RegistrationRepository
}

func NewExportService(regs repositories.RegistrationRepository) ExportService {
	return &exportService{regs: regs}
}

func (s *exportService) WriteRegistrationsCSV(w io.Writer) error {
	regs, err := s.regs.ListAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, r := range regs {
		record := []string{
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			r.IDNumber,
			r.DateOfBirth.Format("2006-01-02"),
			r.Gender,
			r.County,
			r.Constituency,
			r.Ward,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
