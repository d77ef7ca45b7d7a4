package batch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TubeBend/internal/calc/bend"
)

func item(material string, od float64) bend.Input {
	return bend.Input{
		MaterialName:     material,
		OuterDiameterMm:  od,
		WallThicknessMm:  1,
		BendAngleDeg:     90,
		StraightLengthMm: 100,
		BendMultiplierD:  3.0,
	}
}

func TestCalculateBend(t *testing.T) {
	in := BendBatchInput{Items: []bend.Input{
		item("Copper", 10),
		item("Carbon Steel", 20),
	}}
	out, err := CalculateBend(in)
	if err != nil {
		t.Fatalf("CalculateBend failed: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Results))
	}
	if out.Results[0].CenterLineRadiusMm != 30 {
		t.Errorf("first CLR = %g, expected 30", out.Results[0].CenterLineRadiusMm)
	}
	if out.Results[1].CenterLineRadiusMm != 60 {
		t.Errorf("second CLR = %g, expected 60", out.Results[1].CenterLineRadiusMm)
	}
}

func TestCalculateBendEmpty(t *testing.T) {
	if _, err := CalculateBend(BendBatchInput{}); err == nil {
		t.Fatal("empty batch should fail")
	}
}

// A bad item fails the whole batch, naming the item index.
func TestCalculateBendBadItem(t *testing.T) {
	in := BendBatchInput{Items: []bend.Input{
		item("Copper", 10),
		item("Unobtainium", 10),
	}}
	_, err := CalculateBend(in)
	if err == nil {
		t.Fatal("batch with unknown material should fail")
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Errorf("error should name the failing item, got: %v", err)
	}
}

func TestBendBatchHandler(t *testing.T) {
	h := &Handler{}
	body := `{"items":[{"material":"Copper","od_mm":10,"wall_mm":1,"angle_deg":90,"straight_mm":100,"d_of_bend":3.0}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/bend/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Bend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "\"clr_mm\":30") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
