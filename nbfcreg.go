// Package nbfcreg resolves free-text regional descriptions ("Bombay", "TN",
// "bengaluru") to the canonical regional-office strings used in the RBI
// registry of non-banking financial companies, and filters, ranks and
// summarizes registry records for the resolved region.
//
// The registry is loaded once at construction and is read-only afterwards,
// so a Registry is safe for concurrent use.
package nbfcreg

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultDataPath is the registry CSV consulted when no option overrides it.
const DefaultDataPath = "data/RBI - List of NBFCs.csv"

// DefaultMaxResults caps result lists when the caller passes maxResults <= 0.
const DefaultMaxResults = 10

// similarityThreshold is the minimum (exclusive) SequenceMatcher ratio for a
// fuzzy alias match. A score of exactly 0.6 is rejected.
const similarityThreshold = 0.6

// maxSuggestions caps region and institution-name suggestion lists.
const maxSuggestions = 5

// ErrorKind classifies an operation failure.
type ErrorKind string

const (
	ErrDataUnavailable     ErrorKind = "data_unavailable"
	ErrRegionNotFound      ErrorKind = "region_not_found"
	ErrInstitutionNotFound ErrorKind = "institution_not_found"
	ErrInvalidSearchType   ErrorKind = "invalid_search_type"
	ErrEmptyQuery          ErrorKind = "empty_query"
)

// Failure describes why an operation produced no results. Operations return
// failures inside their result structs rather than panicking or aborting;
// an empty catalog degrades every operation to ErrDataUnavailable.
type Failure struct {
	Kind        ErrorKind `json:"kind"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Error makes Failure usable as an error value at the cmd layer.
func (f *Failure) Error() string { return f.Message }

// InstitutionRecord is one row of the registry. Records are created at load
// time and never mutated.
type InstitutionRecord struct {
	Name            string `json:"name"`
	Region          string `json:"regional_office"`
	Classification  string `json:"classification"`
	Address         string `json:"address"`
	Email           string `json:"email"`
	CorporateID     string `json:"corporate_id"`
	Layer           string `json:"layer"`
	AcceptsDeposits string `json:"accepts_deposits"`
}

// Catalog is the ordered, read-only collection of registry records.
// Every record has a non-empty Region; rows without one are dropped at load.
type Catalog []InstitutionRecord

// Registry holds the catalog plus the alias table derived from it.
// Safe for concurrent use after construction.
type Registry struct {
	Catalog Catalog

	// aliasTable maps a lowercase alias (including each canonical region's
	// own lowercase form) to the canonical region exactly as stored in the
	// catalog. aliasKeys holds the same keys sorted alphabetically so that
	// fuzzy scans and suggestion generation have a fixed iteration order.
	aliasTable map[string]string
	aliasKeys  []string
}

// Option is a functional option for configuring a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	dataPath string
	logger   *slog.Logger
}

// WithDataPath sets the registry CSV path.
func WithDataPath(path string) Option {
	return func(c *registryConfig) { c.dataPath = path }
}

// WithLogger sets the logger used during load. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) { c.logger = l }
}

// NewRegistry loads the registry CSV and builds the alias table.
//
// Load failures are not propagated: a Registry with an empty Catalog is
// returned instead, and every subsequent operation reports
// ErrDataUnavailable. Callers treat that as degraded-but-running.
//
//	reg := nbfcreg.NewRegistry(nbfcreg.WithDataPath("data/registry.csv"))
//	res := reg.Recommend("bengaluru", "", 10)
func NewRegistry(opts ...Option) *Registry {
	cfg := &registryConfig{dataPath: DefaultDataPath, logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	catalog, err := loadCatalog(cfg.dataPath)
	if err != nil {
		cfg.logger.Warn("registry data not loaded, serving degraded",
			"path", cfg.dataPath, "error", err)
		catalog = Catalog{}
	} else {
		cfg.logger.Info("registry loaded",
			"path", cfg.dataPath, "records", len(catalog))
	}

	return NewRegistryFromCatalog(catalog)
}

// NewRegistryFromCatalog builds a Registry over an already-parsed catalog.
// Useful for callers with their own data source and for tests.
func NewRegistryFromCatalog(catalog Catalog) *Registry {
	r := &Registry{Catalog: catalog}
	r.buildAliasTable()
	return r
}

// loadCatalog parses the registry CSV. The header row is matched by column
// name (case-insensitive) so column order does not matter. Rows whose
// regional office is empty after trimming are dropped; row order is
// otherwise preserved.
func loadCatalog(path string) (Catalog, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fi.Close()

	cr := csv.NewReader(fi)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	col := headerIndex(header)

	var catalog Catalog
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rec := InstitutionRecord{
			Name:            strings.TrimSpace(field(row, col, "nbfc name")),
			Region:          strings.TrimSpace(field(row, col, "regional office")),
			Classification:  strings.TrimSpace(field(row, col, "classification")),
			Address:         field(row, col, "address"),
			Email:           field(row, col, "email id"),
			CorporateID:     field(row, col, "corporate identification number"),
			Layer:           field(row, col, "layer"),
			AcceptsDeposits: field(row, col, "whether have cor for holding/ accepting public deposits"),
		}
		if rec.Region == "" {
			continue
		}
		if rec.AcceptsDeposits == "" {
			rec.AcceptsDeposits = "No"
		}
		catalog = append(catalog, rec)
	}
	return catalog, nil
}

// headerIndex maps lowercase trimmed column names to their positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// field reads a named column from a row, tolerating short rows and columns
// absent from the header.
func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// buildAliasTable derives the alias table from the catalog's distinct
// canonical regions plus the static variation seed. Rebuilding from the
// same catalog yields an identical table.
func (r *Registry) buildAliasTable() {
	r.aliasTable = make(map[string]string)

	// Canonical self-mappings first: a region's own lowercase form must
	// never be shadowed by another region's seed variant (the seed lists
	// "mumbai suburban" under "mumbai", but a catalog that carries
	// "Mumbai Suburban" as its own regional office keeps it canonical).
	for _, rec := range r.Catalog {
		r.aliasTable[strings.ToLower(rec.Region)] = rec.Region
	}
	for _, rec := range r.Catalog {
		for _, variant := range regionVariations[strings.ToLower(rec.Region)] {
			v := strings.ToLower(variant)
			if _, exists := r.aliasTable[v]; !exists {
				r.aliasTable[v] = rec.Region
			}
		}
	}

	r.aliasKeys = make([]string, 0, len(r.aliasTable))
	for k := range r.aliasTable {
		r.aliasKeys = append(r.aliasKeys, k)
	}
	sort.Strings(r.aliasKeys)
}

// AliasCount returns the number of alias table entries. Useful for testing.
func (r *Registry) AliasCount() int { return len(r.aliasTable) }

// similarityRatio computes the difflib SequenceMatcher ratio between two
// strings at character level, in [0,1]. This matches the behavior of
// Python's difflib.SequenceMatcher().ratio(), which downstream thresholds
// were tuned against.
func similarityRatio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// ResolveRegion maps free-text user input to a canonical region.
//
// An exact (case- and whitespace-insensitive) alias hit is always preferred.
// Otherwise every alias key is scored with similarityRatio and the best key
// wins if it scores strictly above 0.6. Keys are scanned in sorted order
// with a strictly-greater comparison, so ties resolve to the alphabetically
// first key and results are reproducible.
func (r *Registry) ResolveRegion(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	if region, ok := r.aliasTable[input]; ok {
		return region, true
	}

	bestKey := ""
	bestScore := 0.0
	for _, key := range r.aliasKeys {
		if score := similarityRatio(input, key); score > bestScore {
			bestScore = score
			bestKey = key
		}
	}
	if bestScore > similarityThreshold {
		return r.aliasTable[bestKey], true
	}
	return "", false
}

// suggestRegions returns up to 5 canonical regions whose alias keys either
// contain the input or are contained by it, sorted alphabetically.
func (r *Registry) suggestRegions(input string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, key := range r.aliasKeys {
		if !strings.Contains(key, input) && !strings.Contains(input, key) {
			continue
		}
		region := r.aliasTable[key]
		if seen[region] {
			continue
		}
		seen[region] = true
		suggestions = append(suggestions, region)
	}
	sort.Strings(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// Recommendation is one ranked registry entry returned by Recommend.
type Recommendation struct {
	Name                      string `json:"name"`
	RegionalOffice            string `json:"regional_office"`
	Classification            string `json:"classification"`
	ClassificationDescription string `json:"classification_description"`
	Address                   string `json:"address"`
	Email                     string `json:"email"`
	CorporateID               string `json:"corporate_id"`
	Layer                     string `json:"layer"`
	AcceptsDeposits           string `json:"accepts_deposits"`
}

// RecommendationResult is the outcome of Recommend. TotalFound is the match
// count BEFORE truncation to maxResults.
type RecommendationResult struct {
	Failure              *Failure         `json:"error,omitempty"`
	UserRegion           string           `json:"user_region,omitempty"`
	ResolvedRegion       string           `json:"resolved_region,omitempty"`
	Recommendations      []Recommendation `json:"recommendations"`
	TotalFound           int              `json:"total_found"`
	ClassificationFilter string           `json:"classification_filter,omitempty"`
}

// Ok reports whether the operation succeeded.
func (r *RecommendationResult) Ok() bool { return r.Failure == nil }

// Recommend resolves userRegion and returns registry entries for it, sorted
// by name ascending and truncated to maxResults (default 10).
//
// The region filter is a case-insensitive SUBSTRING match of the canonical
// region against each record's regional office. That is deliberate: it lets
// a canonical region such as "Mumbai" also cover more specific offices like
// "Mumbai Suburban". classificationFilter, when non-empty, composes with
// the region filter via logical AND, also as a case-insensitive substring.
func (r *Registry) Recommend(userRegion, classificationFilter string, maxResults int) *RecommendationResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(r.Catalog) == 0 {
		return &RecommendationResult{
			Failure:         &Failure{Kind: ErrDataUnavailable, Message: "NBFC data not available"},
			Recommendations: []Recommendation{},
		}
	}

	region, ok := r.ResolveRegion(userRegion)
	if !ok {
		return &RecommendationResult{
			Failure: &Failure{
				Kind:        ErrRegionNotFound,
				Message:     "could not identify region: " + userRegion,
				Suggestions: r.suggestRegions(userRegion),
			},
			UserRegion:      userRegion,
			Recommendations: []Recommendation{},
		}
	}

	var matched []InstitutionRecord
	for _, rec := range r.Catalog {
		if !containsFold(rec.Region, region) {
			continue
		}
		if classificationFilter != "" && !containsFold(rec.Classification, classificationFilter) {
			continue
		}
		matched = append(matched, rec)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	total := len(matched)
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}

	recommendations := make([]Recommendation, 0, len(matched))
	for _, rec := range matched {
		recommendations = append(recommendations, Recommendation{
			Name:                      rec.Name,
			RegionalOffice:            rec.Region,
			Classification:            rec.Classification,
			ClassificationDescription: DescribeClassification(rec.Classification),
			Address:                   rec.Address,
			Email:                     rec.Email,
			CorporateID:               rec.CorporateID,
			Layer:                     rec.Layer,
			AcceptsDeposits:           rec.AcceptsDeposits,
		})
	}

	return &RecommendationResult{
		UserRegion:           userRegion,
		ResolvedRegion:       region,
		Recommendations:      recommendations,
		TotalFound:           total,
		ClassificationFilter: classificationFilter,
	}
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SearchField selects which record field Search matches against.
type SearchField string

const (
	SearchByName           SearchField = "name"
	SearchByClassification SearchField = "classification"
	SearchByRegion         SearchField = "region"
)

// SearchHit is one search result row.
type SearchHit struct {
	Name           string `json:"name"`
	RegionalOffice string `json:"regional_office"`
	Classification string `json:"classification"`
	Address        string `json:"address"`
	Email          string `json:"email"`
}

// SearchResult is the outcome of Search.
type SearchResult struct {
	Failure    *Failure    `json:"error,omitempty"`
	Query      string      `json:"query,omitempty"`
	Field      SearchField `json:"search_type,omitempty"`
	Results    []SearchHit `json:"results"`
	TotalFound int         `json:"total_found"`
}

// Ok reports whether the operation succeeded.
func (r *SearchResult) Ok() bool { return r.Failure == nil }

// Search performs a case-insensitive substring search of query against one
// record field across the whole catalog. No region resolution and no
// sorting: hits come back in catalog order, truncated to maxResults.
func (r *Registry) Search(query string, field SearchField, maxResults int) *SearchResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(r.Catalog) == 0 {
		return &SearchResult{
			Failure: &Failure{Kind: ErrDataUnavailable, Message: "NBFC data not available"},
			Results: []SearchHit{},
		}
	}
	if strings.TrimSpace(query) == "" {
		return &SearchResult{
			Failure: &Failure{Kind: ErrEmptyQuery, Message: "search query is required"},
			Results: []SearchHit{},
		}
	}

	var pick func(InstitutionRecord) string
	switch field {
	case SearchByName:
		pick = func(rec InstitutionRecord) string { return rec.Name }
	case SearchByClassification:
		pick = func(rec InstitutionRecord) string { return rec.Classification }
	case SearchByRegion:
		pick = func(rec InstitutionRecord) string { return rec.Region }
	default:
		return &SearchResult{
			Failure: &Failure{Kind: ErrInvalidSearchType, Message: "invalid search type: " + string(field)},
			Results: []SearchHit{},
		}
	}

	results := []SearchHit{}
	for _, rec := range r.Catalog {
		if !containsFold(pick(rec), query) {
			continue
		}
		results = append(results, SearchHit{
			Name:           rec.Name,
			RegionalOffice: rec.Region,
			Classification: rec.Classification,
			Address:        rec.Address,
			Email:          rec.Email,
		})
		if len(results) == maxResults {
			break
		}
	}

	return &SearchResult{
		Query:      query,
		Field:      field,
		Results:    results,
		TotalFound: len(results),
	}
}

// DetailsResult is the outcome of InstitutionDetails.
type DetailsResult struct {
	Failure *Failure        `json:"error,omitempty"`
	Details *Recommendation `json:"details,omitempty"`
}

// Ok reports whether the operation succeeded.
func (r *DetailsResult) Ok() bool { return r.Failure == nil }

// InstitutionDetails returns the first record (catalog order) whose name
// contains the given name case-insensitively. On a miss the failure carries
// up to 5 name suggestions, also by substring, in catalog order.
func (r *Registry) InstitutionDetails(name string) *DetailsResult {
	if len(r.Catalog) == 0 {
		return &DetailsResult{
			Failure: &Failure{Kind: ErrDataUnavailable, Message: "NBFC data not available"},
		}
	}

	for _, rec := range r.Catalog {
		if !containsFold(rec.Name, name) {
			continue
		}
		return &DetailsResult{Details: &Recommendation{
			Name:                      rec.Name,
			RegionalOffice:            rec.Region,
			Classification:            rec.Classification,
			ClassificationDescription: DescribeClassification(rec.Classification),
			Address:                   rec.Address,
			Email:                     rec.Email,
			CorporateID:               rec.CorporateID,
			Layer:                     rec.Layer,
			AcceptsDeposits:           rec.AcceptsDeposits,
		}}
	}

	return &DetailsResult{
		Failure: &Failure{
			Kind:        ErrInstitutionNotFound,
			Message:     "NBFC '" + name + "' not found",
			Suggestions: r.suggestNames(name),
		},
	}
}

// suggestNames returns up to 5 institution names containing the partial
// input, in catalog order.
func (r *Registry) suggestNames(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	var suggestions []string
	for _, rec := range r.Catalog {
		if strings.Contains(strings.ToLower(rec.Name), name) {
			suggestions = append(suggestions, rec.Name)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// Statistics holds aggregate counts over a scope of the catalog.
type Statistics struct {
	TotalInstitutions   int            `json:"total_nbfcs"`
	ByClassification    map[string]int `json:"by_classification"`
	ByLayer             map[string]int `json:"by_layer"`
	DepositAccepting    int            `json:"deposit_accepting"`
	NonDepositAccepting int            `json:"non_deposit_accepting"`
}

// StatsResult is the outcome of Statistics.
type StatsResult struct {
	Failure *Failure    `json:"error,omitempty"`
	Region  string      `json:"region,omitempty"`
	Stats   *Statistics `json:"statistics,omitempty"`
}

// Ok reports whether the operation succeeded.
func (r *StatsResult) Ok() bool { return r.Failure == nil }

// Statistics aggregates counts over the whole catalog, or over records
// whose regional office contains the resolved region when one is given.
// A record counts as deposit-accepting only when its flag is exactly "Yes".
func (r *Registry) Statistics(region string) *StatsResult {
	if len(r.Catalog) == 0 {
		return &StatsResult{
			Failure: &Failure{Kind: ErrDataUnavailable, Message: "NBFC data not available"},
		}
	}

	scope := r.Catalog
	label := "All India"
	if strings.TrimSpace(region) != "" {
		resolved, ok := r.ResolveRegion(region)
		if !ok {
			return &StatsResult{
				Failure: &Failure{
					Kind:        ErrRegionNotFound,
					Message:     "region '" + region + "' not found",
					Suggestions: r.suggestRegions(region),
				},
			}
		}
		label = resolved
		scope = nil
		for _, rec := range r.Catalog {
			if containsFold(rec.Region, resolved) {
				scope = append(scope, rec)
			}
		}
	}

	stats := &Statistics{
		TotalInstitutions: len(scope),
		ByClassification:  make(map[string]int),
		ByLayer:           make(map[string]int),
	}
	for _, rec := range scope {
		stats.ByClassification[rec.Classification]++
		stats.ByLayer[rec.Layer]++
		if rec.AcceptsDeposits == "Yes" {
			stats.DepositAccepting++
		}
	}
	stats.NonDepositAccepting = stats.TotalInstitutions - stats.DepositAccepting

	return &StatsResult{Region: label, Stats: stats}
}
