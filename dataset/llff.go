package dataset

import (
	"fmt"

	"github.com/xx-peach/borealis/config"
	"github.com/xx-peach/borealis/log"
	"github.com/xx-peach/borealis/types"
)

var logger = log.New("dataset")

// Options control how a capture directory is interpreted.
type Options struct {
	// Image downsampling factor; values below 2 load the original resolution.
	Factor int

	// Scale applied to the minimum depth bound when rescaling the world so
	// the closest scene content sits near unit depth. Zero disables the
	// rescale.
	BDFactor float32

	// Rebase all poses about the average camera.
	Recenter bool

	// Treat the capture as inward-facing: spherify the poses and generate a
	// circular render path instead of the forward-facing spiral.
	Spherify bool

	// Holdout stride for the test split; zero holds out the single frame
	// nearest the average pose.
	Hold int

	// Flatten the spiral render path onto a constant-z plane.
	PathZFlat bool

	// Report the unit near/far planes used with normalized device
	// coordinates instead of the raw scene depth range.
	NDC bool

	// Skip image decoding; geometry is derived from the pose metadata alone.
	PosesOnly bool
}

// ConfigOptions maps a training configuration onto loader options, using the
// reference defaults for everything the configuration does not carry.
func ConfigOptions(cfg *config.TrainingConfig) Options {
	return Options{
		Factor:   cfg.Factor,
		BDFactor: 0.75,
		Recenter: true,
		Hold:     cfg.LLFFHold,
	}
}

// Dataset is an LLFF capture prepared for training: per-frame camera-to-world
// poses and depth bounds, shared camera intrinsics, a generated render path
// and the holdout split.
type Dataset struct {
	Dir string

	// Per-frame data, index-aligned. ImagePaths is empty in poses-only mode.
	Poses      []types.Mat34
	Bounds     []Bound
	ImagePaths []string

	// Render path poses: a spiral for forward-facing captures, a circle for
	// spherified ones.
	RenderPoses []types.Mat34

	// Camera geometry shared by all frames.
	H, W  int
	Focal float32
	K     types.Mat3

	// Depth range handed to the ray sampler.
	Near, Far float32

	// Holdout split indices into the per-frame slices.
	Train, Test []int
}

// LoadForConfig runs the data-loading routine selected by the configuration's
// dataset_type against its data directory.
func LoadForConfig(cfg *config.TrainingConfig) (*Dataset, error) {
	switch cfg.DatasetType {
	case config.DatasetLLFF:
		return Load(cfg.DataDir, ConfigOptions(cfg))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDatasetType, cfg.DatasetType)
	}
}

// Load reads an LLFF capture directory and prepares it for training.
func Load(dir string, opts Options) (*Dataset, error) {
	if opts.Factor < 1 {
		opts.Factor = 1
	}

	poses, hwfs, bounds, err := readPoseBounds(dir)
	if err != nil {
		return nil, err
	}

	minB, maxB := boundsRange(bounds)
	logger.Infof("loaded %d poses from %s, depth bounds [%g, %g]", len(poses), dir, minB, maxB)

	if opts.BDFactor > 0 {
		sc := 1 / (minB * opts.BDFactor)
		for i := range poses {
			poses[i] = poses[i].SetCol(3, poses[i].Trans().Mul(sc))
		}
		for i, b := range bounds {
			bounds[i] = Bound{Near: b.Near * sc, Far: b.Far * sc}
		}
	}

	if opts.Recenter {
		poses = recenterPoses(poses)
	}

	var renderPoses []types.Mat34
	if opts.Spherify {
		poses, renderPoses, bounds, err = spherifyPoses(poses, bounds)
		if err != nil {
			return nil, err
		}
	} else {
		renderPoses = forwardFacingPath(poses, bounds, opts.PathZFlat)
	}

	ds := &Dataset{
		Dir:         dir,
		Poses:       poses,
		Bounds:      bounds,
		RenderPoses: renderPoses,
	}

	// Image geometry: either measured from the downsampled frames or, in
	// poses-only mode, derived from the metadata hwf column.
	origH, origW, origFocal := hwfs[0][0], hwfs[0][1], hwfs[0][2]
	if opts.PosesOnly {
		ds.H = int(origH) / opts.Factor
		ds.W = int(origW) / opts.Factor
		ds.Focal = origFocal / float32(opts.Factor)
	} else {
		imgDir, err := scaledImageDir(dir, opts.Factor)
		if err != nil {
			return nil, err
		}
		paths, err := listImages(imgDir)
		if err != nil {
			return nil, err
		}
		if len(paths) != len(poses) {
			return nil, fmt.Errorf("%w: %d images under %s vs %d poses", ErrFrameCountMismatch, len(paths), imgDir, len(poses))
		}

		first, err := DecodeImage(paths[0])
		if err != nil {
			return nil, err
		}
		ds.W = first.Bounds().Dx()
		ds.H = first.Bounds().Dy()
		ds.Focal = origFocal * float32(ds.H) / origH
		ds.ImagePaths = paths
	}

	ds.K = types.Mat3{
		ds.Focal, 0, 0.5 * float32(ds.W),
		0, ds.Focal, 0.5 * float32(ds.H),
		0, 0, 1,
	}

	minB, maxB = boundsRange(ds.Bounds)
	if opts.NDC {
		ds.Near, ds.Far = 0, 1
	} else {
		ds.Near, ds.Far = minB*0.9, maxB
	}

	ds.Train, ds.Test = holdoutSplit(ds.Poses, opts.Hold)
	logger.Infof("prepared dataset %s: %d frames (%d train / %d test), %dx%d, focal %g",
		dir, len(ds.Poses), len(ds.Train), len(ds.Test), ds.W, ds.H, ds.Focal)

	return ds, nil
}
