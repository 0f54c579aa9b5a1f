package services

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"

	"travelcms/models"
	"travelcms/services/logger"
	"travelcms/services/metrics"
)

const (
	pdfUTF8Family  = "itinerary"
	pdfCoreFamily  = "Helvetica"
	pdfMarginMM    = 20.0
	pdfBodyLineMM  = 5.5
	emptyItinerary = "No daily itinerary has been set for this package."
)

// ItineraryPDFFilename is the download name for a package's itinerary
func ItineraryPDFFilename(slug string) string {
	return fmt.Sprintf("%s_daily_itinerary.pdf", slug)
}

// ItineraryPDFRenderer lays out a package's daily itinerary on A4 pages.
// The TTF at fontPath is read once; if it is unusable the core Helvetica font is used.
type ItineraryPDFRenderer struct {
	fontPath string
	logger   logger.Logger
	compress bool

	fontOnce sync.Once
	font     []byte
}

func NewItineraryPDFRenderer(fontPath string, log logger.Logger) *ItineraryPDFRenderer {
	if log == nil {
		log = logger.Nop()
	}
	return &ItineraryPDFRenderer{fontPath: fontPath, logger: log, compress: true}
}

func (r *ItineraryPDFRenderer) loadFont() []byte {
	r.fontOnce.Do(func() {
		if r.fontPath == "" {
			return
		}
		b, err := os.ReadFile(r.fontPath)
		if err != nil {
			r.logger.Error("pdf font %s unavailable, falling back to %s: %v", r.fontPath, pdfCoreFamily, err)
			return
		}
		r.font = b
	})
	return r.font
}

// pdfDoc pairs a document with its font family and text translator
type pdfDoc struct {
	*fpdf.Fpdf
	family string
	tr     func(string) string
}

func (r *ItineraryPDFRenderer) newDoc() *pdfDoc {
	if font := r.loadFont(); font != nil {
		pdf, err := r.utf8PDF(font)
		if err == nil {
			return &pdfDoc{Fpdf: pdf, family: pdfUTF8Family, tr: func(s string) string { return s }}
		}
		r.logger.Error("pdf font %s rejected, falling back to %s: %v", r.fontPath, pdfCoreFamily, err)
	}
	pdf := r.basePDF()
	return &pdfDoc{Fpdf: pdf, family: pdfCoreFamily, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// utf8PDF registers font on a fresh document. The TTF parser panics on truncated files.
func (r *ItineraryPDFRenderer) utf8PDF(font []byte) (pdf *fpdf.Fpdf, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pdf, err = nil, fmt.Errorf("parse font: %v", rec)
		}
	}()
	pdf = r.basePDF()
	pdf.AddUTF8FontFromBytes(pdfUTF8Family, "", font)
	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

func (r *ItineraryPDFRenderer) basePDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)
	pdf.SetCompression(r.compress)
	return pdf
}

func (d *pdfDoc) paragraph(size, lineHeight float64, align, text string) {
	d.SetFont(d.family, "", size)
	d.MultiCell(0, lineHeight, d.tr(text), "", align, false)
}

// Render writes the itinerary PDF of pkg to w. Only active days are printed, in the order given.
func (r *ItineraryPDFRenderer) Render(w io.Writer, pkg *models.Package) error {
	start := time.Now()
	defer func() { metrics.ObservePDF(time.Since(start)) }()

	doc := r.newDoc()
	doc.SetTitle(pkg.Name, true)
	doc.AddPage()

	doc.paragraph(20, 10, "C", pkg.Name)
	if pkg.Subtitle != "" {
		doc.Ln(2)
		doc.paragraph(14, 7, "L", pkg.Subtitle)
	}
	doc.Ln(4)
	doc.paragraph(12, 7, "L", "Daily Itinerary")
	doc.Ln(4)

	days := make([]models.DailyItinerary, 0, len(pkg.DailyItineraries))
	for _, day := range pkg.DailyItineraries {
		if day.IsActive {
			days = append(days, day)
		}
	}

	if len(days) == 0 {
		doc.paragraph(10, pdfBodyLineMM, "L", emptyItinerary)
	}
	for _, day := range days {
		doc.paragraph(12, 7, "L", fmt.Sprintf("Day %d: %s", day.DayNumber, day.Title))
		doc.Ln(2)

		if day.Description != "" {
			doc.paragraph(10, pdfBodyLineMM, "L", "Description: "+normalizeNewlines(day.Description))
			doc.Ln(1.5)
		}

		if day.MealInfo != "" {
			doc.paragraph(10, pdfBodyLineMM, "L", "Meals: "+day.MealInfo)
		}
		if day.Accommodation != "" {
			doc.paragraph(10, pdfBodyLineMM, "L", "Accommodation: "+day.Accommodation)
		}
		if day.Transportation != "" {
			doc.paragraph(10, pdfBodyLineMM, "L", "Transportation: "+day.Transportation)
		}
		if day.MealInfo != "" || day.Accommodation != "" || day.Transportation != "" {
			doc.Ln(1.5)
		}

		if day.Notes != "" {
			doc.paragraph(10, pdfBodyLineMM, "L", "Notes: "+normalizeNewlines(day.Notes))
			doc.Ln(3)
		}

		doc.Ln(4)
	}

	if doc.Err() {
		return fmt.Errorf("render itinerary pdf: %w", doc.Error())
	}
	return doc.Output(w)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
