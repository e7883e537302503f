package config

import "strconv"

// The semantic type a raw value is coerced to.
type fieldKind int

const (
	stringField fieldKind = iota
	pathField
	enumField
	intField
	floatField
	boolField
)

func (k fieldKind) String() string {
	switch k {
	case stringField:
		return "string"
	case pathField:
		return "path"
	case enumField:
		return "enum"
	case intField:
		return "int"
	case floatField:
		return "float"
	case boolField:
		return "bool"
	}
	return "unknown"
}

// A coerced value. Exactly one member is meaningful, selected by the field
// kind; numeric checks always read the float member, which is populated for
// int fields as well.
type value struct {
	s string
	i int
	f float64
	b bool
}

// fieldSpec binds a key to its expected semantic type, its validation
// constraint and the accessors that move values in and out of the record.
// All coercion is driven by this table; no key is parsed ad hoc.
type fieldSpec struct {
	kind fieldKind

	// Allow-list for enum fields.
	allowed []string

	// Human-readable range constraint, checked by valid. Empty means
	// unconstrained.
	constraint string
	valid      func(v value) bool

	set func(c *TrainingConfig, v value)
	get func(c *TrainingConfig) string
}

func positive(v value) bool {
	return v.f > 0
}

func nonNegative(v value) bool {
	return v.f >= 0
}

func nonEmpty(v value) bool {
	return v.s != ""
}

// The canonical key order, used for serialization and for deterministic
// missing-key reporting.
var fieldOrder = []string{
	"expname",
	"basedir",
	"datadir",
	"dataset_type",
	"factor",
	"llffhold",
	"iters",
	"no_batching",
	"use_viewdirs",
	"lrate_decay",
	"raw_noise_std",
	"N_samples",
	"N_importance",
	"N_rand",
}

var schema = map[string]fieldSpec{
	"expname": {
		kind:       stringField,
		constraint: "non-empty",
		valid:      nonEmpty,
		set:        func(c *TrainingConfig, v value) { c.ExpName = v.s },
		get:        func(c *TrainingConfig) string { return c.ExpName },
	},
	"basedir": {
		kind:       pathField,
		constraint: "non-empty",
		valid:      nonEmpty,
		set:        func(c *TrainingConfig, v value) { c.BaseDir = v.s },
		get:        func(c *TrainingConfig) string { return c.BaseDir },
	},
	"datadir": {
		kind:       pathField,
		constraint: "non-empty",
		valid:      nonEmpty,
		set:        func(c *TrainingConfig, v value) { c.DataDir = v.s },
		get:        func(c *TrainingConfig) string { return c.DataDir },
	},
	"dataset_type": {
		kind:    enumField,
		allowed: []string{DatasetLLFF, DatasetBlender, DatasetDeepVoxels},
		set:     func(c *TrainingConfig, v value) { c.DatasetType = v.s },
		get:     func(c *TrainingConfig) string { return c.DatasetType },
	},
	"factor": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.Factor = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.Factor) },
	},
	"llffhold": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.LLFFHold = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.LLFFHold) },
	},
	"iters": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.Iters = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.Iters) },
	},
	"no_batching": {
		kind: boolField,
		set:  func(c *TrainingConfig, v value) { c.NoBatching = v.b },
		get:  func(c *TrainingConfig) string { return formatBool(c.NoBatching) },
	},
	"use_viewdirs": {
		kind: boolField,
		set:  func(c *TrainingConfig, v value) { c.UseViewDirs = v.b },
		get:  func(c *TrainingConfig) string { return formatBool(c.UseViewDirs) },
	},
	"lrate_decay": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.LRateDecay = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.LRateDecay) },
	},
	"raw_noise_std": {
		kind:       floatField,
		constraint: ">= 0",
		valid:      nonNegative,
		set:        func(c *TrainingConfig, v value) { c.RawNoiseStd = v.f },
		get:        func(c *TrainingConfig) string { return strconv.FormatFloat(c.RawNoiseStd, 'g', -1, 64) },
	},
	"N_samples": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.NSamples = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.NSamples) },
	},
	"N_importance": {
		kind:       intField,
		constraint: ">= 0",
		valid:      nonNegative,
		set:        func(c *TrainingConfig, v value) { c.NImportance = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.NImportance) },
	},
	"N_rand": {
		kind:       intField,
		constraint: "> 0",
		valid:      positive,
		set:        func(c *TrainingConfig, v value) { c.NRand = v.i },
		get:        func(c *TrainingConfig) string { return strconv.Itoa(c.NRand) },
	},
}

// The boolean literal style used by the original configuration files.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// A key/type/value triple in canonical serialization form.
type Field struct {
	Key   string
	Type  string
	Value string
}

// List all fields of the record in canonical key order.
func (c *TrainingConfig) Fields() []Field {
	fields := make([]Field, 0, len(fieldOrder))
	for _, key := range fieldOrder {
		spec := schema[key]
		fields = append(fields, Field{
			Key:   key,
			Type:  spec.kind.String(),
			Value: spec.get(c),
		})
	}
	return fields
}
