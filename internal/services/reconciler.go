package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

const (
	// proximityThresholdDeg groups stations within ~5 km of a group seed.
	proximityThresholdDeg = 0.05
	// maxMatchDistanceKm rejects feed records farther than 100 m from a
	// candidate before name scoring.
	maxMatchDistanceKm = 0.1
	// matchThreshold is the minimum combined score for an accepted match.
	matchThreshold = 0.7
	// minRegionalSamples is the smallest number of matched prices that can
	// form a regional average.
	minRegionalSamples = 3

	nameWeight      = 0.7
	proximityWeight = 0.3

	defaultFeedTimeout = 10 * time.Second
)

// Reconciler matches candidate stations from a places lookup against
// crowd-sourced pricing feed records, scoring by geo proximity and name
// similarity and falling back to a regional average for the unmatched.
//
// Feed results are cached per proximity-group centroid; a feed failure for
// one group degrades only that group. Safe for concurrent use when the
// cache is.
type Reconciler struct {
	Feed        ports.PricingFeedProvider
	Cache       ports.PriceCache
	FeedTimeout time.Duration
}

func NewReconciler(feed ports.PricingFeedProvider, cache ports.PriceCache) *Reconciler {
	return &Reconciler{
		Feed:        feed,
		Cache:       cache,
		FeedTimeout: defaultFeedTimeout,
	}
}

// Reconcile prices the given candidates. Matched candidates carry the feed's
// regular-grade price; unmatched ones receive the regional average when at
// least minRegionalSamples matches exist across all groups, and are omitted
// from the output entirely otherwise.
func (rc *Reconciler) Reconcile(
	ctx context.Context,
	candidates []domain.GasStationCandidate,
) ([]domain.PricedStation, error) {
	if len(candidates) == 0 {
		return []domain.PricedStation{}, nil
	}

	groups := groupByProximity(candidates)

	priced := make([]domain.PricedStation, 0, len(candidates))
	pricedAddresses := make(map[string]struct{}, len(candidates))
	regionalSamples := make([]float64, 0, len(candidates))

	for _, group := range groups {
		records, err := rc.lookupGroup(ctx, group)
		if err != nil {
			// Degrade this group to the regional-average path.
			log.Printf("reconcile: feed lookup failed for group of %d: %v", len(group), err)
			continue
		}

		for _, candidate := range group {
			station, ok := findBestMatch(candidate, records)
			if !ok {
				continue
			}

			priced = append(priced, station)
			pricedAddresses[candidate.Address] = struct{}{}
			if station.RegularPrice != nil {
				regionalSamples = append(regionalSamples, *station.RegularPrice)
			}
		}
	}

	var regionalAverage *float64
	if len(regionalSamples) >= minRegionalSamples {
		sum := 0.0
		for _, p := range regionalSamples {
			sum += p
		}
		avg := sum / float64(len(regionalSamples))
		regionalAverage = &avg
	}

	for _, candidate := range candidates {
		if _, ok := pricedAddresses[candidate.Address]; ok {
			continue
		}
		if regionalAverage == nil {
			continue
		}

		avg := *regionalAverage
		priced = append(priced, domain.PricedStation{
			StationName:  candidate.Name,
			Address:      candidate.Address,
			RegularPrice: &avg,
			Source:       domain.PriceSourceRegionalAverage,
		})
	}

	return priced, nil
}

// lookupGroup returns feed records for a proximity group, consulting the
// cache by rounded centroid before calling the feed under its own timeout.
func (rc *Reconciler) lookupGroup(
	ctx context.Context,
	group []domain.GasStationCandidate,
) ([]ports.FeedStationRecord, error) {
	var latSum, lngSum float64
	for _, c := range group {
		latSum += c.Location.Lat
		lngSum += c.Location.Lng
	}
	centerLat := latSum / float64(len(group))
	centerLng := lngSum / float64(len(group))

	key := cacheKey(centerLat, centerLng)

	if rc.Cache != nil {
		records, ok, err := rc.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("reconcile: cache read failed for %s: %v", key, err)
		} else if ok {
			return records, nil
		}
	}

	timeout := rc.FeedTimeout
	if timeout <= 0 {
		timeout = defaultFeedTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	records, err := rc.Feed.LookupStationPrices(callCtx, centerLat, centerLng)
	if err != nil {
		return nil, fmt.Errorf("lookup station prices at %s: %w", key, err)
	}

	if rc.Cache != nil {
		if err := rc.Cache.Put(ctx, key, records); err != nil {
			log.Printf("reconcile: cache write failed for %s: %v", key, err)
		}
	}

	return records, nil
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.3f,%.3f", lat, lng)
}

// groupByProximity partitions candidates with a greedy single pass: each
// ungrouped station seeds a group and pulls in every later ungrouped
// station within the degree threshold of that seed. Not a transitive
// clustering; membership is decided against the seed only.
func groupByProximity(candidates []domain.GasStationCandidate) [][]domain.GasStationCandidate {
	var groups [][]domain.GasStationCandidate
	grouped := make(map[int]struct{}, len(candidates))

	for i := range candidates {
		if _, ok := grouped[i]; ok {
			continue
		}

		group := []domain.GasStationCandidate{candidates[i]}
		grouped[i] = struct{}{}

		for j := i + 1; j < len(candidates); j++ {
			if _, ok := grouped[j]; ok {
				continue
			}

			if candidates[i].Location.DegreeDistance(candidates[j].Location) < proximityThresholdDeg {
				group = append(group, candidates[j])
				grouped[j] = struct{}{}
			}
		}

		groups = append(groups, group)
	}

	return groups
}

// findBestMatch scores every feed record against a candidate and accepts
// the best one above the match threshold. Records beyond the distance gate
// are skipped before name scoring. Equal scores keep the record seen first.
func findBestMatch(
	candidate domain.GasStationCandidate,
	records []ports.FeedStationRecord,
) (domain.PricedStation, bool) {
	var best *ports.FeedStationRecord
	bestScore := 0.0

	candidateName := normalizeStationName(candidate.Name)

	for i := range records {
		record := &records[i]

		distanceKm := candidate.Location.DistanceKm(domain.Coordinates{Lat: record.Lat, Lng: record.Lng})
		if distanceKm > maxMatchDistanceKm {
			continue
		}

		recordName := record.Name
		if recordName == "" {
			recordName = record.Address
		}

		nameScore := nameSimilarity(candidateName, normalizeStationName(recordName))
		proximityScore := 1 - distanceKm/maxMatchDistanceKm
		if proximityScore < 0 {
			proximityScore = 0
		}

		score := nameWeight*nameScore + proximityWeight*proximityScore
		if score > bestScore && score > matchThreshold {
			bestScore = score
			best = record
		}
	}

	if best == nil {
		return domain.PricedStation{}, false
	}

	name := best.Name
	if name == "" {
		name = best.Address
	}

	station := domain.PricedStation{
		StationName: name,
		Address:     best.Address,
		Source:      domain.PriceSourceFeed,
	}

	if price, posted, ok := regularPrice(best); ok {
		station.RegularPrice = &price
		station.LastUpdated = posted
	}

	return station, true
}

// regularPrice extracts the regular-grade price from a feed record,
// preferring a credit posting over cash when both exist.
func regularPrice(record *ports.FeedStationRecord) (price float64, posted string, ok bool) {
	for _, grade := range record.Prices {
		if grade.FuelProduct != "regular_gas" &&
			!strings.Contains(strings.ToLower(grade.LongName), "regular") {
			continue
		}

		if grade.Credit != nil && grade.Credit.Price > 0 {
			return grade.Credit.Price, grade.Credit.PostedTime, true
		}
		if grade.Cash != nil && grade.Cash.Price > 0 {
			return grade.Cash.Price, grade.Cash.PostedTime, true
		}
		return 0, "", false
	}

	return 0, "", false
}
