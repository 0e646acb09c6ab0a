package nbfcreg

import (
	"fmt"
	"strings"
)

// Locale selects the language for human-readable summaries.
// Adding a language means adding a constant and a branch in each
// message helper, not subclassing or template lookup.
type Locale string

const (
	LocaleEnglish Locale = "english"
	LocaleHindi   Locale = "hindi"
	LocaleKannada Locale = "kannada"
)

// summaryEntryLimit is the number of entries printed before the
// "...and N more" trailer. Exactly summaryEntryLimit matches produce
// no trailer; one more produces "...and 1 more".
const summaryEntryLimit = 5

// FormatRecommendationSummary renders a recommendation result as localized
// human-readable text. Pure function: no I/O, no catalog access. Unknown
// locales render English.
func FormatRecommendationSummary(res *RecommendationResult, locale Locale) string {
	if !res.Ok() {
		return formatError(res.Failure.Message, locale)
	}

	if res.TotalFound == 0 {
		switch locale {
		case LocaleHindi:
			return fmt.Sprintf("🔍 %s क्षेत्र में कोई NBFC नहीं मिला। कृपया अन्य क्षेत्र का प्रयास करें।", res.ResolvedRegion)
		case LocaleKannada:
			return fmt.Sprintf("🔍 %s ಪ್ರದೇಶದಲ್ಲಿ ಯಾವುದೇ NBFC ಕಂಡುಬಂದಿಲ್ಲ. ದಯವಿಟ್ಟು ಬೇರೆ ಪ್ರದೇಶವನ್ನು ಪ್ರಯತ್ನಿಸಿ.", res.ResolvedRegion)
		default:
			return fmt.Sprintf("🔍 No NBFCs found in %s region. Please try another region.", res.ResolvedRegion)
		}
	}

	var b strings.Builder
	switch locale {
	case LocaleHindi:
		fmt.Fprintf(&b, "✅ %s क्षेत्र में %d NBFC मिले:\n\n", res.ResolvedRegion, res.TotalFound)
	case LocaleKannada:
		fmt.Fprintf(&b, "✅ %s ಪ್ರದೇಶದಲ್ಲಿ %d NBFC ಕಂಡುಬಂದಿದೆ:\n\n", res.ResolvedRegion, res.TotalFound)
	default:
		fmt.Fprintf(&b, "✅ Found %d NBFCs in %s region:\n\n", res.TotalFound, res.ResolvedRegion)
	}

	entries := res.Recommendations
	if len(entries) > summaryEntryLimit {
		entries = entries[:summaryEntryLimit]
	}
	for i, rec := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec.Name)
		switch locale {
		case LocaleHindi:
			fmt.Fprintf(&b, "   प्रकार: %s\n", rec.ClassificationDescription)
			if rec.Email != "" {
				fmt.Fprintf(&b, "   ईमेल: %s\n", rec.Email)
			}
		case LocaleKannada:
			fmt.Fprintf(&b, "   ವಿಧ: %s\n", rec.ClassificationDescription)
			if rec.Email != "" {
				fmt.Fprintf(&b, "   ಇಮೇಲ್: %s\n", rec.Email)
			}
		default:
			fmt.Fprintf(&b, "   Type: %s\n", rec.ClassificationDescription)
			if rec.Email != "" {
				fmt.Fprintf(&b, "   Email: %s\n", rec.Email)
			}
		}
		b.WriteString("\n")
	}

	if res.TotalFound > summaryEntryLimit {
		more := res.TotalFound - summaryEntryLimit
		switch locale {
		case LocaleHindi:
			fmt.Fprintf(&b, "... और %d अधिक NBFC", more)
		case LocaleKannada:
			fmt.Fprintf(&b, "... ಮತ್ತು %d ಹೆಚ್ಚಿನ NBFC", more)
		default:
			fmt.Fprintf(&b, "... and %d more NBFCs", more)
		}
	}

	return b.String()
}

// formatError renders a one-line localized error message with the locale's
// error marker, embedding the failure's message text.
func formatError(msg string, locale Locale) string {
	switch locale {
	case LocaleHindi:
		return fmt.Sprintf("❌ त्रुटि: %s", msg)
	case LocaleKannada:
		return fmt.Sprintf("❌ ದೋಷ: %s", msg)
	default:
		return fmt.Sprintf("❌ Error: %s", msg)
	}
}
