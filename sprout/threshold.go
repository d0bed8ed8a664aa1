package sprout

import "github.com/katalvlaran/omegalearn/sample"

// Threshold returns maxSpoke + maxCycle² + 1 over every word of s, where the
// maxima are taken independently. An empty sample yields 1.
func Threshold(s *sample.OmegaSample) int {
	maxSpoke, maxCycle := 0, 0
	for w := range s.Words() {
		spoke, cycle := w.Len()
		maxSpoke = max(maxSpoke, spoke)
		maxCycle = max(maxCycle, cycle)
	}

	return maxSpoke + maxCycle*maxCycle + 1
}
