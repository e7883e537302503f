package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/sbinet/npyio"
	"github.com/xx-peach/borealis/types"
)

// The NumPy file holding the per-frame pose metadata emitted by the LLFF
// capture tooling.
const poseBoundsFile = "poses_bounds.npy"

// Per-frame depth range of the scene content along the view axis.
type Bound struct {
	Near float32
	Far  float32
}

// Read the pose metadata file. Each of the N rows holds 17 values: a 3x5
// block (3x4 camera-to-world matrix plus a height/width/focal column) in
// row-major order, followed by the near and far depth bounds.
//
// LLFF stores rotations with a down/right/back column basis; the returned
// poses are converted to the right/up/back convention used everywhere else.
func readPoseBounds(dir string) ([]types.Mat34, []types.Vec3, []Bound, error) {
	path := filepath.Join(dir, poseBoundsFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dataset: could not parse %s: %w", path, err)
	}

	shape := r.Header.Descr.Shape
	if len(shape) != 2 || shape[1] != 17 || shape[0] == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s has shape %v", ErrMalformedPoseFile, path, shape)
	}

	var data []float64
	if err := r.Read(&data); err != nil {
		return nil, nil, nil, fmt.Errorf("dataset: could not read %s: %w", path, err)
	}
	if len(data) != shape[0]*shape[1] {
		return nil, nil, nil, fmt.Errorf("%w: %s holds %d values for shape %v", ErrMalformedPoseFile, path, len(data), shape)
	}

	n := shape[0]
	poses := make([]types.Mat34, n)
	hwfs := make([]types.Vec3, n)
	bounds := make([]Bound, n)
	for i := 0; i < n; i++ {
		base := i * 17
		at := func(row, col int) float32 {
			return float32(data[base+row*5+col])
		}

		var m types.Mat34
		for row := 0; row < 3; row++ {
			m[row*4+0] = at(row, 1)
			m[row*4+1] = -at(row, 0)
			m[row*4+2] = at(row, 2)
			m[row*4+3] = at(row, 3)
		}
		poses[i] = m
		hwfs[i] = types.Vec3{at(0, 4), at(1, 4), at(2, 4)}
		bounds[i] = Bound{Near: float32(data[base+15]), Far: float32(data[base+16])}
	}

	return poses, hwfs, bounds, nil
}

// Average the camera poses: mean origin, summed view axis, summed up axis.
func posesAvg(poses []types.Mat34) types.Mat34 {
	var center, z, up types.Vec3
	for _, p := range poses {
		center = center.Add(p.Trans())
		z = z.Add(p.Col(2))
		up = up.Add(p.Col(1))
	}
	center = center.Mul(1 / float32(len(poses)))
	return types.ViewMatrix(z, up, center)
}

// Rebase all poses so that the average pose becomes the world origin.
func recenterPoses(poses []types.Mat34) []types.Mat34 {
	inv := posesAvg(poses).RigidInverse()
	out := make([]types.Mat34, len(poses))
	for i, p := range poses {
		out[i] = inv.Compose(p)
	}
	return out
}

// The overall depth range covered by a set of per-frame bounds.
func boundsRange(bounds []Bound) (min, max float32) {
	min, max = bounds[0].Near, bounds[0].Far
	for _, b := range bounds[1:] {
		if b.Near < min {
			min = b.Near
		}
		if b.Far > max {
			max = b.Far
		}
	}
	return min, max
}

// Calculate the p-th percentile of the samples using linear interpolation
// between the two nearest ranks.
func percentile(samples []float32, p float64) float32 {
	sorted := append([]float32(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := float32(rank - float64(lo))
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
