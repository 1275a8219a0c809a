package domain

import (
	"fmt"
	"sort"
	"time"
)

// InterestRateMap is a yield curve snapshot: annual rate by maturity in
// months
type InterestRateMap struct {
	Date  time.Time
	Rates map[int]float64
}

// GetRate returns the rate for the given maturity, interpolating
// linearly between the two nearest maturities on the curve
func (im InterestRateMap) GetRate(months int) (float64, error) {
	if v, ok := im.Rates[months]; ok {
		return v, nil
	}

	keys := []int{}
	for k := range im.Rates {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return 0, fmt.Errorf("no rates in yield curve on %s", im.Date.Format(time.DateOnly))
	}
	sort.Ints(keys)

	if months < keys[0] {
		return im.Rates[keys[0]], nil
	}
	if months > keys[len(keys)-1] {
		return im.Rates[keys[len(keys)-1]], nil
	}

	for i := 0; i < len(keys)-1; i++ {
		lo, hi := keys[i], keys[i+1]
		if months > lo && months < hi {
			frac := float64(months-lo) / float64(hi-lo)
			return im.Rates[lo] + frac*(im.Rates[hi]-im.Rates[lo]), nil
		}
	}

	return 0, fmt.Errorf("unable to compute %d month rate", months)
}
