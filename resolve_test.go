package nbfcreg

import (
	"math"
	"testing"
)

func testRegistry() *Registry {
	return NewRegistryFromCatalog(Catalog{
		{Name: "Zeta Finance Ltd", Region: "Mumbai", Classification: "ICC", AcceptsDeposits: "No"},
		{Name: "Alpha Finance Ltd", Region: "Mumbai", Classification: "ICC", AcceptsDeposits: "Yes"},
		{Name: "Suburban Credit Corp", Region: "Mumbai Suburban", Classification: "MFI", AcceptsDeposits: "No"},
		{Name: "Garden City Microfinance", Region: "Bangalore", Classification: "MFI", AcceptsDeposits: "No"},
		{Name: "Dravida Finvest", Region: "Tamil Nadu", Classification: "ICC", AcceptsDeposits: "No"},
	})
}

func TestResolveExactAlias(t *testing.T) {
	reg := testRegistry()

	// Case- and whitespace-insensitive exact lookup.
	for _, input := range []string{" MUMBAI ", "mumbai", "Mumbai", "\tmumbai\n"} {
		region, ok := reg.ResolveRegion(input)
		if !ok || region != "Mumbai" {
			t.Errorf("ResolveRegion(%q) = %q, %v, want Mumbai, true", input, region, ok)
		}
	}

	// Seed abbreviations resolve exactly, before any fuzzy scoring.
	region, ok := reg.ResolveRegion("TN")
	if !ok || region != "Tamil Nadu" {
		t.Errorf("ResolveRegion(TN) = %q, %v, want Tamil Nadu, true", region, ok)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	reg := testRegistry()
	for _, input := range []string{"", "   ", "\t\n"} {
		if region, ok := reg.ResolveRegion(input); ok {
			t.Errorf("ResolveRegion(%q) = %q, want unresolved", input, region)
		}
	}
}

func TestResolveFuzzy(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		input string
		want  string
	}{
		{"mumbay", "Mumbai"},       // one substitution
		{"bangalor", "Bangalore"},  // one deletion
		{"banglore", "Bangalore"},  // transposed vowel
		{"tamilnad", "Tamil Nadu"}, // matches the "tamilnadu" variant
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			region, ok := reg.ResolveRegion(tt.input)
			if !ok || region != tt.want {
				t.Errorf("ResolveRegion(%q) = %q, %v, want %q, true", tt.input, region, ok, tt.want)
			}
		})
	}
}

func TestResolveThresholdIsExclusive(t *testing.T) {
	// "abcxy" vs "abczw" scores 2*3/10 = 0.6 exactly: must be rejected.
	if got := similarityRatio("abczw", "abcxy"); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("similarityRatio = %v, want exactly 0.6", got)
	}

	reg := NewRegistryFromCatalog(Catalog{
		{Name: "Edge Finance", Region: "Abcxy", Classification: "ICC"},
	})
	if region, ok := reg.ResolveRegion("abczw"); ok {
		t.Errorf("ResolveRegion(abczw) = %q, want unresolved at exactly 0.6", region)
	}

	// One character closer clears the threshold.
	if region, ok := reg.ResolveRegion("abcxz"); !ok || region != "Abcxy" {
		t.Errorf("ResolveRegion(abcxz) = %q, %v, want Abcxy, true", region, ok)
	}
}

func TestResolveTieBreaksAlphabetically(t *testing.T) {
	reg := NewRegistryFromCatalog(Catalog{
		{Name: "G Finance", Region: "Goa", Classification: "ICC"},
		{Name: "B Finance", Region: "Boa", Classification: "ICC"},
	})

	// "oa" scores 0.8 against both "boa" and "goa"; the scan walks keys in
	// sorted order with a strictly-greater comparison, so "boa" wins.
	region, ok := reg.ResolveRegion("oa")
	if !ok || region != "Boa" {
		t.Errorf("ResolveRegion(oa) = %q, %v, want Boa, true", region, ok)
	}
}

func TestSuggestRegions(t *testing.T) {
	reg := testRegistry()

	// The input contains the alias key "mumbai" but scores below the
	// threshold against every key, so resolution fails and suggestions
	// carry the substring hits.
	input := "greater mumbai metropolitan zone"
	if region, ok := reg.ResolveRegion(input); ok {
		t.Fatalf("ResolveRegion(%q) = %q, want unresolved", input, region)
	}
	got := reg.suggestRegions(input)
	if len(got) != 1 || got[0] != "Mumbai" {
		t.Errorf("suggestRegions(%q) = %v, want [Mumbai]", input, got)
	}

	got = reg.suggestRegions("xyzzy")
	if len(got) != 0 {
		t.Errorf("suggestRegions(xyzzy) = %v, want empty", got)
	}

	if got := reg.suggestRegions(""); got != nil {
		t.Errorf("suggestRegions(\"\") = %v, want nil", got)
	}
}

func TestSuggestRegionsCapAndOrder(t *testing.T) {
	// Seven regions sharing a prefix; suggestions are sorted and capped at 5.
	catalog := Catalog{}
	for _, r := range []string{"Port Gamma", "Port Beta", "Port Alpha", "Port Zeta", "Port Delta", "Port Eta", "Port Theta"} {
		catalog = append(catalog, InstitutionRecord{Name: r + " Finance", Region: r, Classification: "ICC"})
	}
	reg := NewRegistryFromCatalog(catalog)

	got := reg.suggestRegions("port")
	want := []string{"Port Alpha", "Port Beta", "Port Delta", "Port Eta", "Port Gamma"}
	if len(got) != len(want) {
		t.Fatalf("suggestRegions(port) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestRegions(port)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
