package nbfcreg

import (
	"fmt"
	"testing"
)

func TestRecommendTotalIsPreTruncation(t *testing.T) {
	catalog := Catalog{}
	for i := 1; i <= 12; i++ {
		catalog = append(catalog, InstitutionRecord{
			Name:           fmt.Sprintf("Lender %02d", i),
			Region:         "Mumbai",
			Classification: "ICC",
		})
	}
	reg := NewRegistryFromCatalog(catalog)

	res := reg.Recommend("mumbai", "", 10)
	if !res.Ok() {
		t.Fatalf("Recommend failed: %+v", res.Failure)
	}
	if res.TotalFound != 12 {
		t.Errorf("TotalFound = %d, want 12 (pre-truncation count)", res.TotalFound)
	}
	if len(res.Recommendations) != 10 {
		t.Errorf("len(Recommendations) = %d, want 10", len(res.Recommendations))
	}
}

func TestRecommendSortsByNameAscending(t *testing.T) {
	reg := NewRegistryFromCatalog(Catalog{
		{Name: "Zeta Finance", Region: "Mumbai", Classification: "ICC"},
		{Name: "Alpha Finance", Region: "Mumbai", Classification: "ICC"},
	})

	res := reg.Recommend("Mumbai", "", 10)
	if !res.Ok() || len(res.Recommendations) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Recommendations[0].Name != "Alpha Finance" || res.Recommendations[1].Name != "Zeta Finance" {
		t.Errorf("order = [%s, %s], want [Alpha Finance, Zeta Finance]",
			res.Recommendations[0].Name, res.Recommendations[1].Name)
	}
}

func TestRecommendClassificationFilterIsAND(t *testing.T) {
	reg := testRegistry()

	res := reg.Recommend("bombay", "MFI", 10)
	if !res.Ok() {
		t.Fatalf("Recommend failed: %+v", res.Failure)
	}
	// Region filter matches 3 Mumbai records; only the Mumbai Suburban MFI
	// survives the classification filter. The Bangalore MFI must not appear.
	if res.TotalFound != 1 {
		t.Fatalf("TotalFound = %d, want 1", res.TotalFound)
	}
	if res.Recommendations[0].Name != "Suburban Credit Corp" {
		t.Errorf("got %q, want Suburban Credit Corp", res.Recommendations[0].Name)
	}
	if res.ClassificationFilter != "MFI" {
		t.Errorf("ClassificationFilter = %q, want echoed back", res.ClassificationFilter)
	}
}

func TestRecommendFilterIsCaseInsensitiveSubstring(t *testing.T) {
	reg := NewRegistryFromCatalog(Catalog{
		{Name: "Harbour Trade Factors", Region: "Mumbai", Classification: "NBFC-Factor"},
		{Name: "Plain Lender", Region: "Mumbai", Classification: "ICC"},
	})

	res := reg.Recommend("mumbai", "factor", 10)
	if !res.Ok() || res.TotalFound != 1 || res.Recommendations[0].Name != "Harbour Trade Factors" {
		t.Errorf("substring classification filter failed: %+v", res)
	}
}

func TestRecommendRegionNotFound(t *testing.T) {
	reg := testRegistry()

	res := reg.Recommend("Xyzzistan", "", 10)
	if res.Ok() {
		t.Fatalf("Recommend(Xyzzistan) unexpectedly succeeded: %+v", res)
	}
	if res.Failure.Kind != ErrRegionNotFound {
		t.Errorf("Kind = %s, want %s", res.Failure.Kind, ErrRegionNotFound)
	}
	if len(res.Failure.Suggestions) > 5 {
		t.Errorf("suggestions = %v, want at most 5", res.Failure.Suggestions)
	}
	if res.UserRegion != "Xyzzistan" {
		t.Errorf("UserRegion = %q, want original input", res.UserRegion)
	}
}

func TestRecommendDefaultsAndDescriptions(t *testing.T) {
	reg := NewRegistryFromCatalog(Catalog{
		{Name: "Odd One Out", Region: "Mumbai", Classification: "ZZZ"},
		{Name: "Known Kind", Region: "Mumbai", Classification: "HFC"},
	})

	// maxResults <= 0 falls back to the default cap.
	res := reg.Recommend("mumbai", "", 0)
	if !res.Ok() || res.TotalFound != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for _, rec := range res.Recommendations {
		if rec.ClassificationDescription == "" {
			t.Errorf("%s: empty classification description", rec.Name)
		}
	}
	if res.Recommendations[1].ClassificationDescription != fallbackClassificationDescription {
		t.Errorf("unknown code description = %q, want fallback", res.Recommendations[1].ClassificationDescription)
	}
}
