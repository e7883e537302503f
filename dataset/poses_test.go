package dataset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xx-peach/borealis/types"
)

// Emit a minimal NumPy v1.0 file holding a 2-D float64 array in C order.
func writeNPY(t *testing.T, path string, rows, cols int, data []float64) {
	t.Helper()

	header := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%d, %d), }", rows, cols)
	if pad := (10 + len(header) + 1) % 64; pad != 0 {
		header += strings.Repeat(" ", 64-pad)
	}
	header += "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	binary.Write(&buf, binary.LittleEndian, data)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

// Pack a right/up/back pose back into the down/right/back row layout used by
// poses_bounds.npy.
func llffRow(pose types.Mat34, h, w, f, near, far float64) []float64 {
	row := make([]float64, 17)
	for r := 0; r < 3; r++ {
		row[r*5+0] = float64(-pose[r*4+1])
		row[r*5+1] = float64(pose[r*4+0])
		row[r*5+2] = float64(pose[r*4+2])
		row[r*5+3] = float64(pose[r*4+3])
	}
	row[0*5+4] = h
	row[1*5+4] = w
	row[2*5+4] = f
	row[15], row[16] = near, far
	return row
}

// Write a poses_bounds.npy for the given poses into dir.
func writePoseBounds(t *testing.T, dir string, poses []types.Mat34, h, w, f, near, far float64) {
	t.Helper()

	var data []float64
	for _, pose := range poses {
		data = append(data, llffRow(pose, h, w, f, near, far)...)
	}
	writeNPY(t, filepath.Join(dir, poseBoundsFile), len(poses), 17, data)
}

// A small forward-facing capture: parallel view axes, cameras spread on x.
func forwardPoses(n int) []types.Mat34 {
	poses := make([]types.Mat34, 0, n)
	for i := 0; i < n; i++ {
		x := 0.5*float32(i) - 0.25*float32(n-1)
		poses = append(poses, types.Ident34().SetCol(3, types.Vec3{x, 0, 0}))
	}
	return poses
}

func TestReadPoseBounds(t *testing.T) {
	dir := t.TempDir()
	expPose := types.ColMajor34(
		types.Vec3{1, 0, 0},
		types.Vec3{0, 1, 0},
		types.Vec3{0, 0, 1},
		types.Vec3{1, 2, 3},
	)
	writePoseBounds(t, dir, []types.Mat34{expPose, expPose}, 8, 12, 10, 2, 10)

	poses, hwfs, bounds, err := readPoseBounds(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(poses) != 2 || len(hwfs) != 2 || len(bounds) != 2 {
		t.Fatalf("expected 2 frames; got %d poses, %d hwfs, %d bounds", len(poses), len(hwfs), len(bounds))
	}
	if !reflect.DeepEqual(poses[0], expPose) {
		t.Fatalf("expected pose to round-trip through the LLFF layout; got %v", poses[0])
	}
	if !reflect.DeepEqual(hwfs[0], types.Vec3{8, 12, 10}) {
		t.Fatalf("expected hwf column to be (8, 12, 10); got %v", hwfs[0])
	}
	if bounds[0].Near != 2 || bounds[0].Far != 10 {
		t.Fatalf("expected bounds (2, 10); got %+v", bounds[0])
	}
}

func TestReadPoseBoundsBadShape(t *testing.T) {
	dir := t.TempDir()
	writeNPY(t, filepath.Join(dir, poseBoundsFile), 2, 16, make([]float64, 32))

	_, _, _, err := readPoseBounds(dir)
	if !errors.Is(err, ErrMalformedPoseFile) {
		t.Fatalf("expected ErrMalformedPoseFile; got %v", err)
	}
}

func TestReadPoseBoundsMissingFile(t *testing.T) {
	_, _, _, err := readPoseBounds(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error; got %v", err)
	}
}

func TestRecenterPoses(t *testing.T) {
	poses := []types.Mat34{
		types.ViewMatrix(types.Vec3{0.2, 0, 1}, types.Vec3{0, 1, 0}, types.Vec3{1, 0, 0}),
		types.ViewMatrix(types.Vec3{-0.1, 0.1, 1}, types.Vec3{0, 1, 0}, types.Vec3{-1, 0.5, 0}),
		types.ViewMatrix(types.Vec3{0, -0.2, 1}, types.Vec3{0.1, 1, 0}, types.Vec3{0, -0.5, 0.5}),
	}

	avg := posesAvg(recenterPoses(poses))
	exp := types.Ident34()
	for i := range avg {
		if math.Abs(float64(avg[i]-exp[i])) > 1e-4 {
			t.Fatalf("expected the recentered average pose to be the identity; got %v", avg)
		}
	}
}

func TestBoundsRange(t *testing.T) {
	bounds := []Bound{{Near: 3, Far: 9}, {Near: 2, Far: 12}, {Near: 4, Far: 8}}
	min, max := boundsRange(bounds)
	if min != 2 || max != 12 {
		t.Fatalf("expected range (2, 12); got (%g, %g)", min, max)
	}
}

func TestPercentile(t *testing.T) {
	type spec struct {
		p   float64
		out float32
	}
	samples := []float32{5, 1, 3, 2, 4}
	specs := []spec{
		{0, 1},
		{50, 3},
		{90, 4.6},
		{100, 5},
	}

	for idx, s := range specs {
		if got := percentile(samples, s.p); math.Abs(float64(got-s.out)) > 1e-5 {
			t.Fatalf("[spec %d] expected percentile %g to be %g; got %g", idx, s.p, s.out, got)
		}
	}
}
