package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lmcosta-dev/airgraph/internal/graph"
)

// handleHealth returns the health status of the server.
// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	status := "healthy"
	if s.graph.NodeCount() == 0 {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  status,
		Version: Version,
		Graph: GraphStats{
			Airports: s.graph.NodeCount(),
			Routes:   s.graph.RouteCount(),
			Flights:  s.graph.FlightCount(),
		},
	})
}

// handleGetAirport returns an airport with its direct destinations.
// GET /api/v1/airports/:code
func (s *Server) handleGetAirport(c *gin.Context) {
	code := c.Param("code")
	node := s.graph.FindByCode(code)
	if node == nil {
		RespondWithNotFound(c, "Airport", code)
		return
	}

	destinations := make([]string, 0, len(node.Adj))
	for _, e := range node.Adj {
		destinations = append(destinations, e.To.Code)
	}

	airlines := s.graph.AirlinesOutOf(node)
	airlineCodes := make([]string, 0, len(airlines))
	for _, a := range airlines {
		airlineCodes = append(airlineCodes, a.Code)
	}

	c.JSON(http.StatusOK, AirportResponse{
		Code:         node.Code,
		Name:         node.Name,
		City:         node.City,
		Country:      node.Country,
		Latitude:     node.Location.Lat,
		Longitude:    node.Location.Lon,
		InDegree:     node.InDegree,
		OutDegree:    node.OutDegree,
		FlightsTo:    node.FlightsTo,
		FlightsFrom:  node.FlightsFrom,
		Destinations: destinations,
		Airlines:     airlineCodes,
	})
}

// handleReachable counts airports, cities and countries within a stop budget.
// GET /api/v1/airports/:code/reachable?stops=N
func (s *Server) handleReachable(c *gin.Context) {
	code := c.Param("code")
	node := s.graph.FindByCode(code)
	if node == nil {
		RespondWithNotFound(c, "Airport", code)
		return
	}

	stops := parseIntQuery(c, "stops", 0)
	if stops < 0 || stops > 10 {
		RespondWithValidationError(c, "stops", "must be between 0 and 10")
		return
	}

	c.JSON(http.StatusOK, ReachableResponse{
		Code:      node.Code,
		Stops:     stops,
		Airports:  s.graph.ReachableAirportsInStops(node, stops),
		Cities:    s.graph.ReachableCitiesInStops(node, stops),
		Countries: s.graph.ReachableCountriesInStops(node, stops),
	})
}

// handleFindPath plans itineraries between two airports.
// GET /api/v1/path?from=JFK&to=LAX&via=ORD,DEN&same_airline=true
func (s *Server) handleFindPath(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		RespondWithMissingParam(c, "from")
		return
	}
	if to == "" {
		RespondWithMissingParam(c, "to")
		return
	}

	source := s.graph.FindByCode(from)
	if source == nil {
		RespondWithNotFound(c, "Airport", from)
		return
	}
	target := s.graph.FindByCode(to)
	if target == nil {
		RespondWithNotFound(c, "Airport", to)
		return
	}

	var via []*graph.Node
	var viaCodes []string
	if raw := c.Query("via"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			w := s.graph.FindByCode(strings.TrimSpace(code))
			if w == nil {
				RespondWithNotFound(c, "Airport", code)
				return
			}
			via = append(via, w)
			viaCodes = append(viaCodes, w.Code)
		}
	}

	sameAirline := c.DefaultQuery("same_airline", "false") == "true"

	start := time.Now()
	itineraries := s.graph.PlanItineraries(
		[]*graph.Node{source},
		[]*graph.Node{target},
		graph.PlanOptions{Via: via, SameAirline: sameAirline},
	)

	results := make([]ItineraryResult, 0, len(itineraries))
	for _, it := range itineraries {
		r := ItineraryResult{
			Stops:    make([]string, len(it.Stops)),
			Layovers: it.Layovers(),
			Distance: it.Distance,
		}
		for i, n := range it.Stops {
			r.Stops[i] = n.Code
		}
		for _, a := range it.Airlines {
			r.Airlines = append(r.Airlines, a.Code)
		}
		results = append(results, r)
	}

	c.JSON(http.StatusOK, PathResponse{
		Found:       len(results) > 0,
		From:        source.Code,
		To:          target.Code,
		Via:         viaCodes,
		SameAirline: sameAirline,
		Itineraries: results,
		DurationMs:  time.Since(start).Milliseconds(),
	})
}

// handleEssential returns the airports whose removal fragments the network.
// GET /api/v1/analysis/essential
func (s *Server) handleEssential(c *gin.Context) {
	essential := s.graph.EssentialAirports()

	codes := make([]string, 0, len(essential))
	for code := range essential {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	c.JSON(http.StatusOK, EssentialResponse{
		Count:    len(codes),
		Airports: codes,
	})
}

// handleDiameter returns the network diameter and its longest trips.
// GET /api/v1/analysis/diameter
func (s *Server) handleDiameter(c *gin.Context) {
	diameter, paths := s.graph.Diameter()

	out := make([][]string, 0, len(paths))
	for _, p := range paths {
		codes := make([]string, len(p))
		for i, n := range p {
			codes[i] = n.Code
		}
		out = append(out, codes)
	}

	c.JSON(http.StatusOK, DiameterResponse{
		Diameter: diameter,
		Count:    len(out),
		Paths:    out,
	})
}

// handleTopTraffic ranks airports by flight traffic.
// GET /api/v1/analysis/top?k=10
func (s *Server) handleTopTraffic(c *gin.Context) {
	k := parseIntQuery(c, "k", 10)
	if k < 1 || k > 100 {
		RespondWithValidationError(c, "k", "must be between 1 and 100")
		return
	}

	ranks := s.graph.TopTraffic(k)
	entries := make([]TrafficEntry, 0, len(ranks))
	for _, r := range ranks {
		entries = append(entries, TrafficEntry{
			Code:    r.Node.Code,
			Name:    r.Node.Name,
			City:    r.Node.City,
			Country: r.Node.Country,
			Flights: r.Flights,
		})
	}

	c.JSON(http.StatusOK, TopResponse{K: k, Entries: entries})
}

// handleSearch finds airports by name, city or country.
// GET /api/v1/search?q=london&by=city
func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondWithMissingParam(c, "q")
		return
	}

	by := c.DefaultQuery("by", "name")
	var nodes []*graph.Node
	switch by {
	case "name":
		nodes = s.graph.SearchByName(query)
	case "city":
		nodes = s.graph.SearchByCity(query)
	case "country":
		nodes = s.graph.SearchByCountry(query)
	default:
		RespondWithValidationError(c, "by", "must be 'name', 'city' or 'country'")
		return
	}

	results := make([]AirportSummary, 0, len(nodes))
	for _, n := range nodes {
		results = append(results, AirportSummary{
			Code:    n.Code,
			Name:    n.Name,
			City:    n.City,
			Country: n.Country,
		})
	}

	c.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		By:      by,
		Count:   len(results),
		Results: results,
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
