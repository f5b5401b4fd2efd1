package drift

import (
	"godrift/domain/core"
)

// DefaultThreshold is the drift cutoff applied when the caller supplies none.
const DefaultThreshold = 0.05

// ValidateThreshold enforces the accepted range (0, 1]. Zero is rejected
// rather than silently meaning "never flag".
func ValidateThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 1 {
		return core.ErrInvalidThreshold
	}
	return nil
}

// Classify thresholds a p-value into a drift flag. The same threshold is
// applied uniformly to every feature in one invocation.
func Classify(pValue, threshold float64) bool {
	return pValue < threshold
}
