package config

import "path/filepath"

// TrainingConfig is the full set of hyper-parameters for a single training
// run. It is constructed once by Load and must be treated as read-only from
// that point on; any number of downstream consumers may share it without
// locking.
type TrainingConfig struct {
	// Experiment name, used to namespace output artifacts under BaseDir.
	ExpName string

	// Directory where output artifacts are written.
	BaseDir string

	// Directory holding the training imagery and pose metadata.
	DataDir string

	// Selects the data-loading routine (llff, blender, deepvoxels).
	DatasetType string

	// Image downsampling factor.
	Factor int

	// Holdout stride for the validation split. Only meaningful when
	// DatasetType is llff.
	LLFFHold int

	// Total optimization steps.
	Iters int

	// Selects per-image instead of global ray sampling.
	NoBatching bool

	// Whether the view direction is an input feature.
	UseViewDirs bool

	// Decay half-life for the learning-rate schedule, in thousands of steps.
	LRateDecay int

	// Stddev of the regularizing noise added to raw density predictions.
	RawNoiseStd float64

	// Coarse-pass samples per ray.
	NSamples int

	// Fine-pass (importance) samples per ray. Zero disables the fine network.
	NImportance int

	// Rays sampled per optimization step.
	NRand int
}

// The allowed dataset_type values.
const (
	DatasetLLFF       = "llff"
	DatasetBlender    = "blender"
	DatasetDeepVoxels = "deepvoxels"
)

// Return the directory where this run's artifacts are written. The experiment
// name namespaces runs sharing a base directory. The directory is not created
// here; that is the consumer's responsibility.
func (c *TrainingConfig) LogDir() string {
	return filepath.Join(c.BaseDir, c.ExpName)
}
