package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so handlers can be tested without
// producing real PDFs.
type Generator interface {
	GenerateCertificate(data CertificateData) ([]byte, error)
}

type CertificateData struct {
	FullName         string
	MembershipNumber string
	County           string
	Constituency     string
	ApprovedAt       time.Time
}

type CertificateGenerator struct{}

func NewCertificateGenerator() *CertificateGenerator {
	return &CertificateGenerator{}
}

// GenerateCertificate renders an A4 landscape membership certificate
// and returns the bytes; nothing is written to disk.
func (g *CertificateGenerator) GenerateCertificate(data CertificateData) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetMargins(25, 25, 25)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 28)
	doc.CellFormat(0, 16, "People's Solidarity Party of Kenya", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 16)
	doc.CellFormat(0, 12, "Certificate of Membership", "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 13)
	doc.CellFormat(0, 10, "This certifies that", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 22)
	doc.CellFormat(0, 14, data.FullName, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 13)
	doc.CellFormat(0, 10,
		fmt.Sprintf("of %s Constituency, %s County, is a registered member of the party.", data.Constituency, data.County),
		"", 1, "C", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, fmt.Sprintf("Membership Number: %s", data.MembershipNumber), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 8, fmt.Sprintf("Approved on %s", data.ApprovedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}
