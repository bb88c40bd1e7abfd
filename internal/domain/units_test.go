package domain

import (
	"math"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{3665, "1 hour 1 minute"},
		{125, "2 minutes"},
		{60, "1 minute"},
		{0, "0 minutes"},
		{3600, "1 hour 0 minutes"},
		{7320, "2 hours 2 minutes"},
		{59, "0 minutes"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestMetersToMiles(t *testing.T) {
	if got := MetersToMiles(1609.344); math.Abs(got-1.0) > 0.0001 {
		t.Errorf("MetersToMiles(1609.344) = %f, want ~1.0", got)
	}
	if got := MetersToMiles(0); got != 0 {
		t.Errorf("MetersToMiles(0) = %f, want 0", got)
	}
}

func TestMetersToKilometers(t *testing.T) {
	if got := MetersToKilometers(1500); got != 1.5 {
		t.Errorf("MetersToKilometers(1500) = %f, want 1.5", got)
	}
}

func TestRouteInfoDerivedFields(t *testing.T) {
	route := RouteInfo{DistanceMeters: 482803, DurationSeconds: 3665}

	if got := route.DistanceMiles(); math.Abs(got-300.0) > 0.01 {
		t.Errorf("DistanceMiles() = %f, want ~300", got)
	}
	if got := route.DistanceKm(); got != 482.803 {
		t.Errorf("DistanceKm() = %f, want 482.803", got)
	}
	if got := route.DurationFormatted(); got != "1 hour 1 minute" {
		t.Errorf("DurationFormatted() = %q, want %q", got, "1 hour 1 minute")
	}
}

func TestCoordinatesDistanceKm(t *testing.T) {
	// Two points roughly 111 km apart (one degree of latitude).
	a := Coordinates{Lat: 40.0, Lng: -75.0}
	b := Coordinates{Lat: 41.0, Lng: -75.0}

	got := a.DistanceKm(b)
	if math.Abs(got-111.19) > 0.5 {
		t.Errorf("DistanceKm = %f, want ~111.19", got)
	}

	if d := a.DistanceKm(a); d != 0 {
		t.Errorf("DistanceKm to self = %f, want 0", d)
	}
}

func TestCoordinatesDegreeDistance(t *testing.T) {
	a := Coordinates{Lat: 40.0, Lng: -75.0}
	b := Coordinates{Lat: 40.03, Lng: -75.04}

	got := a.DegreeDistance(b)
	if math.Abs(got-0.05) > 0.0001 {
		t.Errorf("DegreeDistance = %f, want 0.05", got)
	}
}
