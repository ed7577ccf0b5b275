package export

import (
	"bytes"
	"fmt"
	"strings"
)

// Minimal PDF 1.4 emitter: pages of Helvetica text operations,
// uncompressed content streams, hand-written xref table. Enough for the
// paginated text-layout export; charts are never rasterized.
//
// Known limitation: string literals are written as raw bytes against the
// fonts' standard encoding, so text outside Latin-1 will not render
// correctly. Lifting that requires an embedded font and a CID mapping.

type pdfPage struct {
	ops bytes.Buffer
}

type pdfDoc struct {
	width  float64
	height float64
	pages  []*pdfPage
}

func newPDFDoc(width, height float64) *pdfDoc {
	d := &pdfDoc{width: width, height: height}
	d.addPage()
	return d
}

func (d *pdfDoc) addPage() {
	d.pages = append(d.pages, &pdfPage{})
}

func (d *pdfDoc) pageCount() int {
	return len(d.pages)
}

func (d *pdfDoc) current() *pdfPage {
	return d.pages[len(d.pages)-1]
}

// text draws s at (x, y) measured from the top-left corner of the page.
func (d *pdfDoc) text(x, y, size float64, bold bool, s string) {
	font := "F1"
	if bold {
		font = "F2"
	}
	fmt.Fprintf(&d.current().ops, "BT /%s %.1f Tf %.1f %.1f Td (%s) Tj ET\n",
		font, size, x, d.height-y, escapePDFText(s))
}

// rule draws a horizontal line at y spanning [x1, x2].
func (d *pdfDoc) rule(x1, x2, y float64) {
	fmt.Fprintf(&d.current().ops, "0.5 w %.1f %.1f m %.1f %.1f l S\n",
		x1, d.height-y, x2, d.height-y)
}

func escapePDFText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`(`, `\(`,
		`)`, `\)`,
		"\r", " ",
		"\n", " ",
	)
	return r.Replace(s)
}

// render assembles the document. Object layout: 1 catalog, 2 page tree,
// 3/4 fonts, then a page and content-stream pair per page.
func (d *pdfDoc) render() []byte {
	var body bytes.Buffer
	offsets := make([]int, 0, 4+2*len(d.pages))

	writeObj := func(content string) {
		offsets = append(offsets, body.Len())
		fmt.Fprintf(&body, "%d 0 obj\n%s\nendobj\n", len(offsets), content)
	}

	body.WriteString("%PDF-1.4\n")

	var kids []string
	for i := range d.pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+2*i))
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(d.pages)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>")

	for i, page := range d.pages {
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.0f %.0f] "+
				"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			d.width, d.height, 6+2*i))

		stream := page.ops.Bytes()
		offsets = append(offsets, body.Len())
		fmt.Fprintf(&body, "%d 0 obj\n<< /Length %d >>\nstream\n", len(offsets), len(stream))
		body.Write(stream)
		body.WriteString("endstream\nendobj\n")
	}

	xrefOffset := body.Len()
	fmt.Fprintf(&body, "xref\n0 %d\n", len(offsets)+1)
	body.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&body, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&body, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	return body.Bytes()
}
