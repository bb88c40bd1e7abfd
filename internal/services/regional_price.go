package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

var digitsPattern = regexp.MustCompile(`\d+`)

// ExtractCityName pulls a city name out of a full address by comparing each
// comma-separated part (street numbers and zip codes stripped) against the
// known city list. Matching is case-insensitive and bidirectional, so
// "New York, NY 10001" resolves to "New York". When nothing matches, the
// cleaned first part is returned as-is.
func ExtractCityName(address string, knownCities []string) string {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	for _, part := range parts {
		cleaned := strings.TrimSpace(digitsPattern.ReplaceAllString(part, ""))
		if cleaned == "" {
			continue
		}
		lowered := strings.ToLower(cleaned)

		for _, city := range knownCities {
			cityLower := strings.ToLower(city)
			if strings.Contains(lowered, cityLower) || strings.Contains(cityLower, lowered) {
				return city
			}
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(digitsPattern.ReplaceAllString(parts[0], ""))
}

// AverageRegionalPrice averages the regional table price for the given
// grade across the cities extracted from the addresses. Addresses whose
// city is not in the table contribute the nationwide default instead, so
// every address counts toward the average. Returns the resolved city names
// alongside the price.
func AverageRegionalPrice(
	ctx context.Context,
	source ports.RegionalPriceSource,
	addresses []string,
	grade domain.FuelType,
) (float64, []string, error) {
	if len(addresses) == 0 {
		return 0, nil, fmt.Errorf("average regional price: no addresses: %w", ErrInvalidInput)
	}

	knownCities, err := source.Cities(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("average regional price: list cities: %w", err)
	}

	sum := 0.0
	cities := make([]string, 0, len(addresses))

	for _, address := range addresses {
		city := ExtractCityName(address, knownCities)

		row, ok, err := source.PriceForCity(ctx, city)
		if err != nil {
			return 0, nil, fmt.Errorf("average regional price: city %q: %w", city, err)
		}
		if !ok {
			row, err = source.DefaultPrice(ctx)
			if err != nil {
				return 0, nil, fmt.Errorf("average regional price: default price: %w", err)
			}
		}

		price := row.GradePrice(grade)
		log.Printf("regional price: city=%q grade=%s price=%.2f", city, grade, price)

		sum += price
		cities = append(cities, city)
	}

	return sum / float64(len(addresses)), cities, nil
}
