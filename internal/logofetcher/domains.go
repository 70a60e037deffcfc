package logofetcher

import "strings"

type knownDomain struct {
	alias  string
	domain string
}

// Well-known companies whose domain cannot be derived mechanically.
// Ordered: the first matching alias wins.
var knownDomains = []knownDomain{
	{"google", "google.com"},
	{"microsoft", "microsoft.com"},
	{"apple", "apple.com"},
	{"amazon", "amazon.com"},
	{"facebook", "facebook.com"},
	{"meta", "meta.com"},
	{"netflix", "netflix.com"},
	{"spotify", "spotify.com"},
	{"uber", "uber.com"},
	{"airbnb", "airbnb.com"},
	{"tesla", "tesla.com"},
	{"twitter", "twitter.com"},
	{"linkedin", "linkedin.com"},
	{"adobe", "adobe.com"},
	{"salesforce", "salesforce.com"},
	{"oracle", "oracle.com"},
	{"ibm", "ibm.com"},
	{"intel", "intel.com"},
	{"cisco", "cisco.com"},
	{"hp", "hp.com"},
	{"dell", "dell.com"},
	{"tata", "tata.com"},
	{"reliance", "ril.com"},
	{"infosys", "infosys.com"},
	{"wipro", "wipro.com"},
	{"tcs", "tcs.com"},
	{"accenture", "accenture.com"},
}

var corporateSuffixes = []string{
	" inc", " llc", " ltd", " corp", " corporation", " company",
	" co", " group", " holdings", " pvt", " private", " limited",
}

// CandidateDomains derives likely domains for a free-text company name.
// A known-company alias wins outright; otherwise the name is normalized
// and expanded across common TLDs.
func CandidateDomains(companyName string) []string {
	cleanName := strings.ToLower(strings.TrimSpace(companyName))

	for _, known := range knownDomains {
		if strings.Contains(cleanName, known.alias) {
			return []string{known.domain}
		}
	}

	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(cleanName, suffix) {
			cleanName = strings.TrimSpace(strings.TrimSuffix(cleanName, suffix))
		}
	}

	replacer := strings.NewReplacer(" ", "", "&", "and", ".", "", "-", "")
	cleanName = replacer.Replace(cleanName)

	return []string{
		cleanName + ".com",
		"www." + cleanName + ".com",
		cleanName + ".in",
		cleanName + ".org",
		cleanName + ".net",
		cleanName + "group.com",
		cleanName + "corp.com",
	}
}

// slug turns a company name into a filename fragment.
func slug(companyName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(companyName)), " ", "_")
}
