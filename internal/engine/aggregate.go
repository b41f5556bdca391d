package engine

import (
	"math"
	"sort"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// PriceBounds returns [floor(min price), ceil(max price)] over flights.
// An empty list yields domain.EmptyResultPriceRange.
func PriceBounds(flights []domain.Flight) domain.PriceRange {
	if len(flights) == 0 {
		return domain.EmptyResultPriceRange
	}

	lo, hi := flights[0].Price, flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < lo {
			lo = f.Price
		}
		if f.Price > hi {
			hi = f.Price
		}
	}

	return domain.PriceRange{Min: math.Floor(lo), Max: math.Ceil(hi)}
}

// AirlineFacets groups flights by carrier code and counts them.
//
// The name of each facet is the carrier name of its first flight. Facets are
// ordered by count descending; equal counts keep first-seen order.
// The counts always sum to len(flights).
func AirlineFacets(flights []domain.Flight) []domain.AirlineFacet {
	index := make(map[string]int)
	facets := make([]domain.AirlineFacet, 0)

	for _, f := range flights {
		if i, ok := index[f.CarrierCode]; ok {
			facets[i].Count++
			continue
		}
		index[f.CarrierCode] = len(facets)
		facets = append(facets, domain.AirlineFacet{
			Code:  f.CarrierCode,
			Name:  f.CarrierName,
			Count: 1,
		})
	}

	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].Count > facets[j].Count
	})

	return facets
}

// AirlineCodes returns the codes of facets in facet order.
func AirlineCodes(facets []domain.AirlineFacet) []string {
	codes := make([]string, len(facets))
	for i, a := range facets {
		codes[i] = a.Code
	}
	return codes
}

// ChartData reduces flights to one point per carrier holding the carrier's
// lowest price and flight count.
//
// Points are ordered by price ascending; equal prices keep the order in
// which carriers were first seen.
func ChartData(flights []domain.Flight) []domain.ChartPoint {
	index := make(map[string]int)
	points := make([]domain.ChartPoint, 0)

	for _, f := range flights {
		if i, ok := index[f.CarrierCode]; ok {
			if f.Price < points[i].Price {
				points[i].Price = f.Price
			}
			points[i].Count++
			continue
		}
		index[f.CarrierCode] = len(points)
		points = append(points, domain.ChartPoint{
			Name:        f.CarrierName,
			CarrierCode: f.CarrierCode,
			Price:       f.Price,
			Count:       1,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Price < points[j].Price
	})

	return points
}
