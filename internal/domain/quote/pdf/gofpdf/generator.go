package gofpdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"doce-festa/go_backend/internal/domain/quote"
	"doce-festa/go_backend/internal/domain/quote/pdf"
	"doce-festa/go_backend/internal/pkg/logger"
)

const font = "Helvetica"

// Item table column widths in mm; they add up to the A4 text width.
var columnWidths = []float64{35, 75, 20, 30, 30}

type Generator struct {
	branding pdf.Branding
	compress bool
	log      *logger.Logger
}

func New(branding pdf.Branding, log *logger.Logger) *Generator {
	return &Generator{branding: branding, compress: true, log: log}
}

// WithoutCompression leaves page streams uncompressed so text is readable
// in the raw output.
func (g *Generator) WithoutCompression() *Generator {
	g.compress = false
	return g
}

var _ pdf.Generator = (*Generator)(nil)

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	doc, err := pdf.BuildDocument(q, g.branding)
	if err != nil {
		return nil, err
	}
	out, err := g.render(doc, q)
	if err != nil {
		g.log.Error("quote pdf: render failed", "client", q.Client.Name, "error", err)
		return nil, fmt.Errorf("%w: %v", pdf.ErrRender, err)
	}
	g.log.Info("quote pdf: rendered", "client", q.Client.Name, "items", len(q.Items), "bytes", len(out))
	return out, nil
}

func (g *Generator) render(doc pdf.Document, q quote.Quote) ([]byte, error) {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetCompression(g.compress)
	f.SetCreationDate(q.IssuedDate)
	f.SetModificationDate(q.IssuedDate)
	f.SetCatalogSort(true)
	tr := f.UnicodeTranslatorFromDescriptor("")
	f.SetTitle(tr(doc.Title), false)
	f.SetSubject(tr(doc.Subject), false)
	f.SetAuthor(tr(doc.Author), false)
	f.AddPage()

	if format, ok := g.logoFormat(doc.LogoPath); ok {
		g.placeLogo(f, doc.LogoPath, format)
	}

	for _, s := range doc.Sections {
		switch s.Kind {
		case pdf.SectionTitle:
			f.SetFont(font, "B", 14)
			for _, l := range s.Lines {
				f.CellFormat(0, 10, tr(l), "", 1, "C", false, 0, "")
			}
		case pdf.SectionDate:
			f.SetFont(font, "", 12)
			writeLines(f, tr, s.Lines, 10)
			f.Ln(5)
		case pdf.SectionClient:
			f.SetFont(font, "", 12)
			writeLines(f, tr, s.Lines, 10)
			f.Ln(5)
		case pdf.SectionItems:
			f.SetFont(font, "B", 12)
			writeLines(f, tr, s.Lines, 10)
			f.SetFont(font, "B", 10)
			writeRow(f, tr, s.Header, 8)
			f.SetFont(font, "", 10)
			for _, row := range s.Rows {
				writeRow(f, tr, row, 7)
			}
			f.Ln(5)
		case pdf.SectionTotals:
			f.SetFont(font, "B", 12)
			writeLines(f, tr, s.Lines, 10)
			f.Ln(10)
		case pdf.SectionFooter:
			f.SetFont(font, "", 11)
			f.MultiCell(0, 8, tr(strings.Join(s.Lines, "\n")), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLines(f *gofpdf.Fpdf, tr func(string) string, lines []string, h float64) {
	for _, l := range lines {
		f.CellFormat(0, h, tr(l), "", 1, "L", false, 0, "")
	}
}

func writeRow(f *gofpdf.Fpdf, tr func(string) string, cells []string, h float64) {
	for i, c := range cells {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		f.CellFormat(columnWidths[i], h, tr(trim(c, 40)), "B", 0, align, false, 0, "")
	}
	f.Ln(h)
}

// logoFormat reports the gofpdf image type of the logo at path. A missing
// or undecodable logo is skipped.
func (g *Generator) logoFormat(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	fh, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			g.log.Warn("quote pdf: logo unreadable", "path", path, "error", err)
		}
		return "", false
	}
	defer fh.Close()
	_, format, err := image.DecodeConfig(fh)
	switch {
	case err != nil:
		g.log.Warn("quote pdf: logo skipped", "path", path, "error", err)
		return "", false
	case format == "png":
		return "PNG", true
	case format == "jpeg":
		return "JPG", true
	default:
		g.log.Warn("quote pdf: logo format unsupported", "path", path, "format", format)
		return "", false
	}
}

// placeLogo registers the logo before drawing it. gofpdf rejects some
// decodable images (16-bit or interlaced PNG); those are dropped and the
// document error is cleared so the quote still renders.
func (g *Generator) placeLogo(f *gofpdf.Fpdf, path, format string) {
	if f.Err() {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: format, ReadDpi: true}
	f.RegisterImageOptions(path, opts)
	if err := f.Error(); err != nil {
		g.log.Warn("quote pdf: logo rejected", "path", path, "error", err)
		f.ClearError()
		return
	}
	f.ImageOptions(path, 10, 8, 33, 0, false, opts, 0, "")
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
