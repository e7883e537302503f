package dataset

import (
	"math"

	"github.com/xx-peach/borealis/types"
)

// Number of poses on a generated render path and the number of spiral
// revolutions, matching the reference capture tooling.
const (
	renderPathViews = 120
	renderPathRots  = 2
)

// Generate a spiral of n camera poses around the anchor pose, all looking at
// a point focal units down the anchor's view axis.
func renderPathSpiral(c2w types.Mat34, up, rads types.Vec3, focal, zrate float32, rots, n int) []types.Mat34 {
	lookAt := c2w.TransformPoint(types.Vec3{0, 0, -focal})

	out := make([]types.Mat34, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(rots) * float64(i) / float64(n)
		offset := types.Vec3{
			float32(math.Cos(theta)),
			-float32(math.Sin(theta)),
			-float32(math.Sin(theta * float64(zrate))),
		}.MulVec(rads)

		c := c2w.TransformPoint(offset)
		z := c.Sub(lookAt)
		out = append(out, types.ViewMatrix(z, up, c))
	}
	return out
}

// Build the render path for a forward-facing capture: a spiral around the
// average pose with radii covering 90% of the camera offsets, focused at a
// depth mixed from the near and far planes. The poses must already be
// recentered about their average.
func forwardFacingPath(poses []types.Mat34, bounds []Bound, pathZFlat bool) []types.Mat34 {
	c2w := posesAvg(poses)

	var up types.Vec3
	for _, p := range poses {
		up = up.Add(p.Col(1))
	}
	up = up.Normalize()

	// Focus depth from a near/far mixture, weighted toward the far plane.
	minB, maxB := boundsRange(bounds)
	closeDepth, infDepth := minB*0.9, maxB*5
	dt := float32(0.75)
	focal := 1 / ((1-dt)/closeDepth + dt/infDepth)

	offsets := make([][]float32, 3)
	for _, p := range poses {
		t := p.Trans()
		for axis := 0; axis < 3; axis++ {
			offsets[axis] = append(offsets[axis], float32(math.Abs(float64(t[axis]))))
		}
	}
	rads := types.Vec3{
		percentile(offsets[0], 90),
		percentile(offsets[1], 90),
		percentile(offsets[2], 90),
	}

	rots, views := renderPathRots, renderPathViews
	if pathZFlat {
		zloc := -closeDepth * 0.1
		c2w = c2w.SetCol(3, c2w.Trans().Add(c2w.Col(2).Mul(zloc)))
		rads[2] = 0
		rots, views = 1, renderPathViews/2
	}

	return renderPathSpiral(c2w, up, rads, focal, 0.5, rots, views)
}

// Rebase an inward-facing capture about the point minimizing the distance to
// all view axes, rescale it to a unit-radius sphere and build a circular
// render path around it.
func spherifyPoses(poses []types.Mat34, bounds []Bound) (reset, path []types.Mat34, scaled []Bound, err error) {
	// Least-squares point closest to every camera ray.
	var mSum types.Mat3
	var bSum types.Vec3
	for _, p := range poses {
		d := p.Col(2)
		a := types.Ident3().Add(types.Outer3(d, d).Scale(-1))
		mSum = mSum.Add(a.Transpose().Mul(a))
		bSum = bSum.Add(a.MulVec(p.Trans()).Mul(-1))
	}
	n := float32(len(poses))
	inv, ok := mSum.Scale(1 / n).Inverse()
	if !ok {
		return nil, nil, nil, ErrDegeneratePoses
	}
	center := inv.MulVec(bSum.Mul(1 / n)).Mul(-1)

	var up types.Vec3
	for _, p := range poses {
		up = up.Add(p.Trans().Sub(center))
	}
	up = up.Mul(1 / n)

	vec0 := up.Normalize()
	vec1 := types.Vec3{0.1, 0.2, 0.3}.Cross(vec0).Normalize()
	vec2 := vec0.Cross(vec1).Normalize()
	frame := types.ColMajor34(vec1, vec2, vec0, center)

	frameInv := frame.RigidInverse()
	reset = make([]types.Mat34, len(poses))
	var radSq float32
	for i, p := range poses {
		reset[i] = frameInv.Compose(p)
		t := reset[i].Trans()
		radSq += t.Dot(t)
	}
	rad := float32(math.Sqrt(float64(radSq / n)))
	if rad < 1e-7 {
		return nil, nil, nil, ErrDegeneratePoses
	}

	sc := 1 / rad
	for i := range reset {
		reset[i] = reset[i].SetCol(3, reset[i].Trans().Mul(sc))
	}
	scaled = make([]Bound, len(bounds))
	for i, b := range bounds {
		scaled[i] = Bound{Near: b.Near * sc, Far: b.Far * sc}
	}

	var centroid types.Vec3
	for _, p := range reset {
		centroid = centroid.Add(p.Trans())
	}
	centroid = centroid.Mul(1 / n)
	zh := centroid[2]
	if zh*zh >= 1 {
		return nil, nil, nil, ErrDegeneratePoses
	}
	radcircle := float32(math.Sqrt(float64(1 - zh*zh)))

	path = make([]types.Mat34, 0, renderPathViews)
	for i := 0; i < renderPathViews; i++ {
		th := 2 * math.Pi * float64(i) / float64(renderPathViews-1)
		camorigin := types.Vec3{
			radcircle * float32(math.Cos(th)),
			radcircle * float32(math.Sin(th)),
			zh,
		}
		down := types.Vec3{0, 0, -1}

		z := camorigin.Normalize()
		x := z.Cross(down).Normalize()
		y := z.Cross(x).Normalize()
		path = append(path, types.ColMajor34(x, y, z, camorigin))
	}

	return reset, path, scaled, nil
}
