package dataset

import (
	"math"

	"github.com/xx-peach/borealis/types"
)

// Partition frame indices into train and test sets. A positive hold stride
// takes every hold-th frame for the test set; with no stride the single frame
// closest to the average pose is held out. The two sets are disjoint and
// cover all frames.
func holdoutSplit(poses []types.Mat34, hold int) (train, test []int) {
	n := len(poses)
	isTest := make([]bool, n)

	if hold > 0 {
		for i := 0; i < n; i += hold {
			isTest[i] = true
		}
	} else {
		avg := posesAvg(poses)
		best, bestDist := 0, float32(math.MaxFloat32)
		for i, p := range poses {
			d := p.Trans().Sub(avg.Trans())
			if distSq := d.Dot(d); distSq < bestDist {
				best, bestDist = i, distSq
			}
		}
		isTest[best] = true
	}

	for i := 0; i < n; i++ {
		if isTest[i] {
			test = append(test, i)
		} else {
			train = append(train, i)
		}
	}
	return train, test
}
