package api

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Graph   GraphStats `json:"graph"`
}

// GraphStats contains graph totals for the health response.
type GraphStats struct {
	Airports int `json:"airports"`
	Routes   int `json:"routes"`
	Flights  int `json:"flights"`
}

// AirportResponse is returned by the airport endpoint.
type AirportResponse struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	InDegree     int      `json:"in_degree"`
	OutDegree    int      `json:"out_degree"`
	FlightsTo    int      `json:"flights_to"`
	FlightsFrom  int      `json:"flights_from"`
	Destinations []string `json:"destinations"`
	Airlines     []string `json:"airlines"`
}

// ReachableResponse is returned by the reachability endpoint.
type ReachableResponse struct {
	Code      string `json:"code"`
	Stops     int    `json:"stops"`
	Airports  int    `json:"airports"`
	Cities    int    `json:"cities"`
	Countries int    `json:"countries"`
}

// ItineraryResult is one trip candidate in a path response.
type ItineraryResult struct {
	Stops    []string `json:"stops"`
	Layovers int      `json:"layovers"`
	Distance float64  `json:"distance_km"`
	Airlines []string `json:"airlines,omitempty"`
}

// PathResponse is returned by the path endpoint.
type PathResponse struct {
	Found       bool              `json:"found"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Via         []string          `json:"via,omitempty"`
	SameAirline bool              `json:"same_airline"`
	Itineraries []ItineraryResult `json:"itineraries"`
	DurationMs  int64             `json:"duration_ms"`
}

// EssentialResponse is returned by the essential airports endpoint.
type EssentialResponse struct {
	Count    int      `json:"count"`
	Airports []string `json:"airports"`
}

// DiameterResponse is returned by the diameter endpoint.
type DiameterResponse struct {
	Diameter int        `json:"diameter"`
	Count    int        `json:"count"`
	Paths    [][]string `json:"paths"`
}

// TrafficEntry is one ranked airport in the top traffic response.
type TrafficEntry struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Flights int    `json:"flights"`
}

// TopResponse is returned by the top traffic endpoint.
type TopResponse struct {
	K       int            `json:"k"`
	Entries []TrafficEntry `json:"entries"`
}

// AirportSummary is a compact airport record in search results.
type AirportSummary struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// SearchResponse is returned by the search endpoint.
type SearchResponse struct {
	Query   string           `json:"query"`
	By      string           `json:"by"`
	Count   int              `json:"count"`
	Results []AirportSummary `json:"results"`
}
