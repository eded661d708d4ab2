package problemgen

import "math/rand/v2"

const (
	// OptionCount is the size of every option set.
	OptionCount = 3

	// optionSpread is the initial distance of a distractor from the answer.
	optionSpread = 5

	// widenAfter is the number of rejected draws before the window grows.
	widenAfter = 10
)

// BuildOptions returns OptionCount distinct non-negative values including
// correct, in random order.
//
// Distractors are drawn from [max(0, correct-spread), correct+spread]. The
// spread starts at 5 and grows by 5 after every 10 rejected draws, so the
// loop ends even when the floor at zero leaves few candidates.
func BuildOptions(rng *rand.Rand, correct int) []int {
	if correct < 0 {
		correct = 0
	}

	opts := []int{correct}
	seen := map[int]bool{correct: true}
	spread := optionSpread
	rejected := 0

	for len(opts) < OptionCount {
		lo := max(0, correct-spread)
		hi := correct + spread
		candidate := lo + rng.IntN(hi-lo+1)
		if seen[candidate] {
			rejected++
			if rejected%widenAfter == 0 {
				spread += optionSpread
			}
			continue
		}
		seen[candidate] = true
		opts = append(opts, candidate)
	}

	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
