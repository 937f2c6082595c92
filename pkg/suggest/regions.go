package suggest

// countryToRegion maps display names to the gl codes the suggest endpoint
// accepts for geo targeting. The set is closed; callers pick from it.
var countryToRegion = map[string]string{
	"India":          "IN",
	"United States":  "US",
	"United Kingdom": "GB",
	"Australia":      "AU",
	"Canada":         "CA",
	"Germany":        "DE",
	"France":         "FR",
	"Spain":          "ES",
	"Italy":          "IT",
	"Brazil":         "BR",
}

// countryOrder keeps the display order stable across runs.
var countryOrder = []string{
	"India",
	"United States",
	"United Kingdom",
	"Australia",
	"Canada",
	"Germany",
	"France",
	"Spain",
	"Italy",
	"Brazil",
}

// regionCodes is the reverse index for fast validation.
var regionCodes = func() map[string]bool {
	codes := make(map[string]bool, len(countryToRegion))
	for _, code := range countryToRegion {
		codes[code] = true
	}
	return codes
}()

// RegionFor returns the gl code for a country display name.
func RegionFor(country string) (string, bool) {
	code, ok := countryToRegion[country]
	return code, ok
}

// ValidRegion reports whether code is one of the supported gl codes.
func ValidRegion(code string) bool {
	return regionCodes[code]
}

// Countries lists the supported country display names in a fixed order.
func Countries() []string {
	out := make([]string, len(countryOrder))
	copy(out, countryOrder)
	return out
}

// Regions lists the supported gl codes, ordered by their country names.
func Regions() []string {
	out := make([]string, 0, len(countryOrder))
	for _, country := range countryOrder {
		out = append(out, countryToRegion[country])
	}
	return out
}
