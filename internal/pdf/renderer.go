// Package pdf renders complaint and FIR draft forms ready to hand over at a
// police station.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

const (
	labelWidth = 55
	valueWidth = 125
	rowHeight  = 8
)

type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// RenderComplaint writes the complaint form to outputDir/filename and
// returns the full path.
func (r *Renderer) RenderComplaint(c *models.Complaint, filename string) (string, error) {
	doc := newDoc()

	doc.title("COMPLAINT FORM")
	doc.dateLine()

	if c.PoliceStation != "" {
		doc.addressee(c.PoliceStation)
	}

	doc.heading("COMPLAINANT DETAILS")
	doc.detailTable([][2]string{
		{"Name:", orNA(c.Name)},
		{"Father's/Husband's Name:", orNA(c.RelationName)},
		{"Age:", orNA(c.Age)},
		{"Phone:", orNA(c.Phone)},
		{"Email:", orNA(c.Email)},
		{"Address:", orNA(c.Address)},
	})

	doc.heading("COMPLAINT DETAILS")
	doc.labeledLine("Type of Complaint:", c.Type)
	doc.labeledLine("Date of Incident:", c.IncidentDate)
	doc.labeledLine("Place of Incident:", c.IncidentLocation)
	if c.Description != "" {
		doc.labeledParagraph("Detailed Description:", c.Description)
	}

	if c.ApplicableLaws != "" {
		doc.heading("APPLICABLE LAWS/SECTIONS")
		doc.paragraph(c.ApplicableLaws)
	}

	if c.PoliceDetails != "" {
		doc.heading("POLICE STATION DETAILS")
		doc.paragraph(Sanitize(c.PoliceDetails))
	}

	doc.signatureBlock("Signature of Complainant", c.Name)
	doc.footer("Note: This is a computer-generated complaint form. Please review all details carefully before submission. " +
		"It is advisable to consult with a legal professional before filing. Attach any supporting documents and evidence.")

	return r.save(doc, filename)
}

// RenderFIR writes the FIR draft form to outputDir/filename and returns the
// full path.
func (r *Renderer) RenderFIR(f *models.FIR, filename string) (string, error) {
	doc := newDoc()

	doc.title("FIRST INFORMATION REPORT (FIR) - DRAFT")
	doc.dateLine()

	if f.PoliceStation != "" {
		doc.addressee(f.PoliceStation)
	}

	doc.heading("INFORMANT/COMPLAINANT DETAILS")
	doc.detailTable([][2]string{
		{"Name:", orNA(f.Name)},
		{"Father's/Husband's Name:", orNA(f.RelationName)},
		{"Age:", orNA(f.Age)},
		{"Occupation:", orNA(f.Occupation)},
		{"Phone:", orNA(f.Phone)},
		{"Address:", orNA(f.Address)},
	})

	doc.heading("CRIME/INCIDENT DETAILS")
	doc.detailTable([][2]string{
		{"Type of Crime:", orNA(f.Type)},
		{"Date & Time of Incident:", orNA(f.IncidentDate)},
		{"Place of Incident:", orNA(f.IncidentLocation)},
	})

	if f.AccusedDetails != "" {
		doc.heading("ACCUSED DETAILS")
		doc.paragraph(f.AccusedDetails)
	}

	if f.Description != "" {
		doc.heading("DETAILED DESCRIPTION OF INCIDENT")
		doc.paragraph(f.Description)
	}

	if f.ApplicableLaws != "" {
		doc.heading("APPLICABLE LAWS/SECTIONS")
		doc.paragraph(f.ApplicableLaws)
	}

	doc.signatureBlock("Signature of Informant", f.Name)
	doc.footer("IMPORTANT: This is a draft FIR for your reference. Please visit the police station in person to file the actual FIR. " +
		"Carry original documents, evidence, and witness details if available. You have the right to get a copy of the FIR. " +
		"For serious crimes, immediate police assistance can be obtained by calling 100 (Police Emergency) or 112 (National Emergency Number).")

	return r.save(doc, filename)
}

func (r *Renderer) save(doc *document, filename string) (string, error) {
	if r.outputDir != "" {
		if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	path := filepath.Join(r.outputDir, filename)
	if err := doc.pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return path, nil
}

// Sanitize strips formatting markers and the icon glyphs the AI tends to put
// in front of contact lines, so the embedded text stays plain.
func Sanitize(text string) string {
	replacer := strings.NewReplacer(
		"**", "",
		"###", "",
		"##", "",
		"*", "",
		"📍", "Address:",
		"📞", "Phone:",
		"✅", "Jurisdiction:",
		"⚠️", "Note:",
	)
	return strings.TrimSpace(replacer.Replace(text))
}

// CleanStationName reduces a free-text station answer to a single usable
// line for the "To:" field.
func CleanStationName(details string) string {
	lines := strings.Split(strings.TrimSpace(details), "\n")
	name := strings.TrimSpace(Sanitize(lines[0]))
	if strings.HasPrefix(name, "#") && len(lines) > 1 {
		name = strings.TrimSpace(Sanitize(lines[1]))
	}
	if len(name) > 200 {
		name = name[:200] + "..."
	}
	if name == "" {
		name = "Police Station"
	}
	return name
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// document wraps fpdf with the form styling helpers.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDoc() *document {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(15, 15, 15)
	p.AddPage()
	return &document{
		pdf: p,
		tr:  p.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.SetTextColor(26, 26, 26)
	d.pdf.CellFormat(0, 12, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(4)
}

func (d *document) dateLine() {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 6, d.tr("Date: "+time.Now().Format("02 January 2006, 3:04 PM")), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *document) addressee(station string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 6, d.tr("To: "+CleanStationName(station)), "", "L", false)
	d.pdf.Ln(4)
}

func (d *document) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(44, 62, 80)
	d.pdf.CellFormat(0, 9, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(1)
}

func (d *document) detailTable(rows [][2]string) {
	for _, row := range rows {
		d.pdf.SetFont("Helvetica", "B", 10)
		d.pdf.SetFillColor(236, 240, 241)
		d.pdf.CellFormat(labelWidth, rowHeight, d.tr(row[0]), "1", 0, "L", true, 0, "")

		d.pdf.SetFont("Helvetica", "", 10)
		d.pdf.MultiCell(valueWidth, rowHeight, d.tr(row[1]), "1", "L", false)
	}
	d.pdf.Ln(6)
}

func (d *document) labeledLine(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(labelWidth, 6, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 6, d.tr(value), "", "L", false)
	d.pdf.Ln(1)
}

func (d *document) labeledParagraph(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(0, 6, d.tr(label), "", 1, "L", false, 0, "")
	d.paragraph(value)
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
	d.pdf.Ln(4)
}

func (d *document) signatureBlock(signatureLabel, name string) {
	d.pdf.Ln(14)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(90, 6, d.tr("Place: Kakinada"), "", 0, "L", false, 0, "")
	d.pdf.CellFormat(90, 6, d.tr(signatureLabel), "", 1, "R", false, 0, "")
	d.pdf.CellFormat(90, 6, d.tr("Date: "+time.Now().Format("02-01-2006")), "", 0, "L", false, 0, "")
	d.pdf.CellFormat(90, 6, d.tr("Name: "+name), "", 1, "R", false, 0, "")
}

func (d *document) footer(note string) {
	d.pdf.Ln(8)
	d.pdf.SetFont("Helvetica", "I", 9)
	d.pdf.SetTextColor(80, 80, 80)
	d.pdf.MultiCell(0, 5, d.tr(note), "", "L", false)
}
