package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

func referencePair(t *testing.T) (bend.Input, bend.Result) {
	t.Helper()
	in := bend.Input{
		MaterialName:     "Carbon Steel",
		OuterDiameterMm:  10,
		WallThicknessMm:  1,
		BendAngleDeg:     90,
		StraightLengthMm: 500,
		BendMultiplierD:  3.0,
	}
	mat, err := materials.Lookup(in.MaterialName)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	return in, bend.Calculate(in, mat)
}

// TestBuildContainsResultLines checks the rendered values appear in the
// document. Streams are uncompressed and parentheses are escaped inside
// PDF text objects, so the assertions match the escaped form.
func TestBuildContainsResultLines(t *testing.T) {
	in, res := referencePair(t)
	data, err := Build(in, res)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF document")
	}

	wantLines := []string{
		`Tube Bending Report`,
		`Material          : Carbon Steel`,
		`Tube O.D.         : 10.00 mm`,
		`Wall Factor \(WF = OD / t\)         : 10.00`,
		`Center-Line Radius \(CLR\)          : 30.00 mm`,
		`Minimum Bend Radius`,
		`Bend Arc Length                   : 47.12 mm`,
		`Approx. Total Tube Length         : 547.12 mm`,
		`Simplified Outer-Fibre Stress     : 3.50 MPa`,
		`Factor of Safety vs Yield \(FoS\)   : 71.43`,
		`certification`,
	}
	for _, want := range wantLines {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("report missing %q", want)
		}
	}
}

// TestBuildDeterministic: identical pairs must yield identical bytes;
// nothing time-dependent or map-ordered may leak into the output. Font
// objects in particular come from a catalog map whose iteration order
// flips between runs unless sorted, so one pairwise comparison is not
// enough to trust the result.
func TestBuildDeterministic(t *testing.T) {
	in, res := referencePair(t)
	first, err := Build(in, res)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i := 1; i < 8; i++ {
		next, err := Build(in, res)
		if err != nil {
			t.Fatalf("Build %d failed: %v", i, err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("build %d differs from the first; report bytes must be identical per input", i)
		}
	}
}

// TestBuildEncodingFallback: labels outside the core-font codepage must
// degrade to a replacement glyph, never abort rendering. The degree sign
// itself is representable and must survive.
func TestBuildEncodingFallback(t *testing.T) {
	in, res := referencePair(t)
	in.MaterialName = "Carbon Steel ★ 管"
	data, err := Build(in, res)
	if err != nil {
		t.Fatalf("Build must not fail on non-cp1252 input: %v", err)
	}
	if !bytes.Contains(data, []byte("90.00 \xb0")) {
		t.Error("degree sign should render as cp1252 0xB0")
	}
}

func TestGenerateHandler(t *testing.T) {
	h := &Handler{}
	body := `{"material":"Carbon Steel","od_mm":10,"wall_mm":1,"angle_deg":90,"straight_mm":500,"d_of_bend":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/report.pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "tube_bending_report.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF document")
	}
}

func TestGenerateHandlerUnknownMaterial(t *testing.T) {
	h := &Handler{}
	body := `{"material":"Unobtainium","od_mm":10,"wall_mm":1,"angle_deg":90,"d_of_bend":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/report.pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rec.Code)
	}
}
