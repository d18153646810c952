package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	jfk := Coordinates{Lat: 40.6413, Lon: -73.7781}
	lhr := Coordinates{Lat: 51.4700, Lon: -0.4543}

	tests := []struct {
		name string
		a, b Coordinates
		want float64
		tol  float64
	}{
		{"same point", jfk, jfk, 0, 1e-9},
		{"JFK to LHR", jfk, lhr, 5540, 15},
		{"quarter equator", Coordinates{0, 0}, Coordinates{0, 90}, earthRadiusKm * math.Pi / 2, 0.1},
		{"pole to pole", Coordinates{90, 0}, Coordinates{-90, 0}, earthRadiusKm * math.Pi, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Haversine = %.2f km, want %.2f ± %.2f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := Coordinates{Lat: 38.7742, Lon: -9.1342}
	b := Coordinates{Lat: 40.6413, Lon: -73.7781}

	if Haversine(a, b) != Haversine(b, a) {
		t.Errorf("Haversine(a,b) = %v, Haversine(b,a) = %v", Haversine(a, b), Haversine(b, a))
	}
	if a.DistanceTo(b) != Haversine(a, b) {
		t.Errorf("DistanceTo disagrees with Haversine")
	}
}
