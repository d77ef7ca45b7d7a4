package xlsx

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

func TestParseBendRow(t *testing.T) {
	in, err := parseBendRow([]string{"Carbon Steel", "10", "1", "90", "500", "3.0"})
	if err != nil {
		t.Fatalf("parseBendRow failed: %v", err)
	}
	want := bend.Input{
		MaterialName:     "Carbon Steel",
		OuterDiameterMm:  10,
		WallThicknessMm:  1,
		BendAngleDeg:     90,
		StraightLengthMm: 500,
		BendMultiplierD:  3.0,
	}
	if in != want {
		t.Errorf("parsed %+v, expected %+v", in, want)
	}
}

func TestParseBendRowRejectsShortOrBadRows(t *testing.T) {
	bad := [][]string{
		{"Copper", "10", "1", "90", "500"},
		{"Copper", "ten", "1", "90", "500", "3.0"},
		{},
	}
	for _, row := range bad {
		if _, err := parseBendRow(row); err == nil {
			t.Errorf("row %v should fail to parse", row)
		}
	}
}

func uploadWorkbook(t *testing.T, rows [][]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	wb, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "bends.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(wb.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)
	return rec
}

// TestImportHandler: one header row, two good rows, one unknown material
// and one malformed row. Bad rows are skipped, good ones computed.
func TestImportHandler(t *testing.T) {
	rec := uploadWorkbook(t, [][]interface{}{
		{"material", "od_mm", "wall_mm", "angle_deg", "straight_mm", "d_of_bend"},
		{"Carbon Steel", 10, 1, 90, 500, 3.0},
		{"Copper", 12, 1.5, 45, 200, 2.5},
		{"Unobtainium", 10, 1, 90, 500, 3.0},
		{"Copper", "bad", 1, 90, 500, 3.0},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var out BendImportResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, expected 2 computed rows", out.Count)
	}
	if out.Results[0].CenterLineRadiusMm != 30 {
		t.Errorf("first CLR = %g, expected 30", out.Results[0].CenterLineRadiusMm)
	}
	if out.Results[1].CenterLineRadiusMm != 30 {
		t.Errorf("second CLR = %g, expected 12*2.5 = 30", out.Results[1].CenterLineRadiusMm)
	}
}

func TestImportHandlerRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/import", strings.NewReader(""))
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestBuildWorkbookLayout(t *testing.T) {
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
	res := bend.Calculate(in, mat)

	f, err := BuildWorkbook(in, res)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue(exportSheet, "A1")
	if err != nil || title != "Tube Bending Report" {
		t.Errorf("A1 = %q (err %v), expected report title", title, err)
	}
	wf, err := f.GetCellValue(exportSheet, "B9")
	if err != nil || wf != "10" {
		t.Errorf("B9 wall factor = %q (err %v), expected 10", wf, err)
	}
}

func TestExportHandler(t *testing.T) {
	body := `{"material":"Carbon Steel","od_mm":10,"wall_mm":1,"angle_deg":90,"straight_mm":500,"d_of_bend":3.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/report.xlsx", strings.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("response is not a readable workbook: %v", err)
	}
	defer f.Close()

	clr, err := f.GetCellValue(exportSheet, "B10")
	if err != nil || clr != "30" {
		t.Errorf("B10 CLR = %q (err %v), expected 30", clr, err)
	}
}
