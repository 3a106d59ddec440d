package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// PlaceMines mines up to mineCount cells chosen uniformly at random, never
// the avoiding cell or any of its neighbors, then recounts NearbyMines for
// every cell. When fewer candidates remain than requested, all of them are
// mined. Placing twice on one board is an [EngineMisuse].
func PlaceMines(b *Board, avoiding int, mineCount int, r *rand.Rand) error {
	if b.mined {
		return misuse("mines already placed on this board")
	}
	if avoiding < 0 || avoiding >= len(b.cells) {
		return misuse("cell index %d outside of %dx%d board", avoiding, b.height, b.width)
	}
	if mineCount < 0 {
		return misuse("negative mine count %d", mineCount)
	}

	disallowed := make(map[int]struct{}, len(moore)+1)
	disallowed[avoiding] = struct{}{}
	for _, j := range b.neighborsOf(avoiding) {
		disallowed[j] = struct{}{}
	}

	candidates := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if _, ok := disallowed[i]; !ok {
			candidates = append(candidates, i)
		}
	}

	n := min(mineCount, len(candidates))
	if n < mineCount {
		Log.WithFields(logrus.Fields{
			"requested": mineCount,
			"placed":    n,
		}).Warn("not enough room for all mines")
	}

	/*
	 * Partial Fisher-Yates: pick n off the candidate list, moving the
	 * last live candidate into each picked slot.
	 */
	k := len(candidates)
	for range n {
		i := r.IntN(k)
		b.cells[candidates[i]].HasMine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countNearby()
	b.mined = true

	Log.WithFields(logrus.Fields{
		"board":    b.String(),
		"avoiding": avoiding,
		"mines":    n,
	}).Debug("mines placed")

	return nil
}
