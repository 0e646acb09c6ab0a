package nbfcreg

// regionVariations maps a lowercase canonical region name to its known
// alternate spellings, abbreviations and sub-localities. Consulted only
// while building the alias table; never at query time. Regions in the
// catalog that have no entry here still get their own lowercase form as
// an alias.
var regionVariations = map[string][]string{
	"mumbai":             {"bombay", "mumbai city", "mumbai suburban", "thane", "navi mumbai"},
	"delhi":              {"new delhi", "nct", "ncr", "gurgaon", "gurugram", "noida", "faridabad"},
	"bangalore":          {"bengaluru", "bangalore city", "bangalore urban"},
	"chennai":            {"madras", "chennai city"},
	"kolkata":            {"calcutta", "kolkata city"},
	"hyderabad":          {"secunderabad", "hyderabad city"},
	"ahmedabad":          {"ahmedabad city"},
	"pune":               {"pune city"},
	"jaipur":             {"jaipur city"},
	"lucknow":            {"lucknow city"},
	"patna":              {"patna city"},
	"bhubaneswar":        {"bhubaneshwar", "bhubaneswar city"},
	"chandigarh":         {"chandigarh city"},
	"thiruvananthapuram": {"trivandrum", "thiruvananthapuram city"},
	"andhra pradesh":     {"ap", "andhra"},
	"karnataka":          {"ka", "karnataka state"},
	"tamil nadu":         {"tn", "tamilnadu", "tamil nadu state"},
	"maharashtra":        {"mh", "maharashtra state"},
	"gujarat":            {"gj", "gujarat state"},
	"west bengal":        {"wb", "west bengal state"},
	"kerala":             {"kl", "kerala state"},
	"punjab":             {"pb", "punjab state"},
	"haryana":            {"hr", "haryana state"},
	"rajasthan":          {"rj", "rajasthan state"},
	"uttar pradesh":      {"up", "uttar pradesh state"},
	"bihar":              {"br", "bihar state"},
	"odisha":             {"or", "odisha state", "orissa"},
	"telangana":          {"tg", "telangana state"},
	"chhattisgarh":       {"cg", "chhattisgarh state"},
	"madhya pradesh":     {"mp", "madhya pradesh state"},
	"jharkhand":          {"jh", "jharkhand state"},
	"assam":              {"as", "assam state"},
	"manipur":            {"mn", "manipur state"},
	"meghalaya":          {"ml", "meghalaya state"},
	"nagaland":           {"nl", "nagaland state"},
	"tripura":            {"tr", "tripura state"},
	"arunachal pradesh":  {"ar", "arunachal pradesh state"},
	"mizoram":            {"mz", "mizoram state"},
	"sikkim":             {"sk", "sikkim state"},
	"goa":                {"ga", "goa state"},
	"himachal pradesh":   {"hp", "himachal pradesh state"},
	"uttarakhand":        {"uk", "uttarakhand state", "uttaranchal"},
	"jammu and kashmir":  {"jk", "jammu and kashmir state"},
	"ladakh":             {"la", "ladakh state"},
}

// fallbackClassificationDescription is returned for classification codes
// not present in classificationDescriptions. Never empty.
const fallbackClassificationDescription = "Specialized financial services"

// classificationDescriptions maps RBI classification codes to one-line
// human descriptions. Hand-authored, fixed closed set.
var classificationDescriptions = map[string]string{
	"ICC":         "Investment and Credit Company - Provides loans and investments",
	"CIC":         "Core Investment Company - Primarily invests in group companies",
	"MFI":         "Micro Finance Institution - Focuses on small loans to low-income groups",
	"IFC":         "Infrastructure Finance Company - Specializes in infrastructure financing",
	"IDF":         "Infrastructure Debt Fund - Provides debt financing for infrastructure",
	"HFC":         "Housing Finance Company - Specializes in housing loans",
	"NBFC-Factor": "Factoring Company - Provides factoring services",
	"NBFC-AA":     "Asset Reconstruction Company - Acquires and manages distressed assets",
	"NBFC-P2P":    "Peer to Peer Lending Platform - Facilitates lending between individuals",
}

// DescribeClassification returns the human description for a classification
// code, falling back to a generic description for unknown codes.
func DescribeClassification(code string) string {
	if desc, ok := classificationDescriptions[code]; ok {
		return desc
	}
	return fallbackClassificationDescription
}
