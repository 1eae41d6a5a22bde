package services

// ─── Airport Distances ────────────────────────────────────────────────────────

type routePair struct {
	From string
	To   string
}

// Approximate great-circle distances in km. Lookups are symmetric, so
// each pair is stored once.
var airportDistances = map[routePair]float64{
	{"IST", "SAW"}: 50,
	{"IST", "ESB"}: 350,
	{"IST", "ADB"}: 330,
	{"IST", "AYT"}: 480,
	{"IST", "BJV"}: 520,
	{"IST", "DLM"}: 600,
	{"IST", "TZX"}: 880,
	{"IST", "GZT"}: 850,
	{"IST", "VAN"}: 1200,
	{"IST", "JFK"}: 8000,
	{"IST", "LAX"}: 11000,
	{"IST", "LHR"}: 2500,
	{"IST", "CDG"}: 2200,
	{"IST", "FRA"}: 1800,
	{"IST", "AMS"}: 2200,
	{"IST", "DXB"}: 3000,
	{"ADB", "SAW"}: 290,
	{"ADB", "ESB"}: 450,
	{"ESB", "AYT"}: 350,
	{"AYT", "SAW"}: 400,
}

// DefaultDistanceKM is used for routes missing from the table.
const DefaultDistanceKM = 500

// GetDistance returns the distance between two airports, trying the
// pair in both directions before falling back to the default.
func GetDistance(from, to string) float64 {
	if d, ok := airportDistances[routePair{from, to}]; ok {
		return d
	}
	if d, ok := airportDistances[routePair{to, from}]; ok {
		return d
	}
	return DefaultDistanceKM
}

// ─── Domestic Routes ──────────────────────────────────────────────────────────

var domesticAirports = map[string]bool{
	"IST": true, "SAW": true, "ESB": true, "ADB": true, "AYT": true,
	"BJV": true, "DLM": true, "TZX": true, "GZT": true, "VAN": true,
}

// IsDomestic reports whether both endpoints are Turkish domestic
// airports. Codes are expected to be uppercased already.
func IsDomestic(from, to string) bool {
	return domesticAirports[from] && domesticAirports[to]
}
