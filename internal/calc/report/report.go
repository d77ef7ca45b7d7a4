// Package report renders a bend calculation into a downloadable PDF: the
// echoed inputs, every derived value and a short formula reference.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"TubeBend/internal/calc/bend"
)

const title = "Tube Bending Report"

const formulaReference = "Wall Factor (WF) = O.D. / Wall\n" +
	"\"D\" of Bend      = CLR / O.D.\n" +
	"CLR              = D × O.D.\n" +
	"Bend Arc Length  = CLR × θ(rad)\n" +
	"Total Length     = Straight Length + Bend Arc Length\n" +
	"Outer-fibre strain ≈ (t/2) / CLR → Stress ≈ E × strain\n\n" +
	"NOTE: Stress and FoS here are simplified estimates for study / comparison, " +
	"not for final certification."

// Build produces the report bytes for one calculation. Output is fully
// deterministic: no timestamps appear in the body and the PDF creation
// date is pinned, so identical (input, result) pairs yield identical
// bytes. Core fonts are cp1252; characters outside that set (the degree
// sign is inside it) degrade to a replacement glyph instead of failing.
func Build(in bend.Input, res bend.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Catalog maps iterate in random order unless sorted; without this
	// the font objects swap positions between otherwise identical builds.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetModificationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 12)
	line := func(format string, args ...interface{}) {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf(format, args...)), "", 1, "L", false, 0, "")
	}
	line("Material          : %s", in.MaterialName)
	line("Tube O.D.         : %.2f mm", in.OuterDiameterMm)
	line("Wall Thickness    : %.2f mm", in.WallThicknessMm)
	line("Bend Angle        : %.2f °", in.BendAngleDeg)
	line("Straight Length   : %.2f mm", in.StraightLengthMm)
	line("\"D\" of Bend (CLR/OD): %.2f", in.BendMultiplierD)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	line("Calculated Values")
	pdf.SetFont("Helvetica", "", 12)
	line("Wall Factor (WF = OD / t)         : %.2f", res.WallFactor)
	line("Center-Line Radius (CLR)          : %.2f mm", res.CenterLineRadiusMm)
	line("Minimum Bend Radius (WF × OD)     : %.2f mm", res.MinimumBendRadiusMm)
	line("Bend Arc Length                   : %.2f mm", res.BendArcLengthMm)
	line("Approx. Total Tube Length         : %.2f mm", res.TotalLengthMm)
	line("Simplified Outer-Fibre Stress     : %.2f MPa", res.OuterFibreStressMPa)
	line("Factor of Safety vs Yield (FoS)   : %.2f", res.FactorOfSafety)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 13)
	line("Key Formulas (from Bend Manual concepts)")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(formulaReference), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
