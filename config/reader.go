package config

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xx-peach/borealis/asset"
)

// Load reads a training configuration from a local path or an http(s) URL and
// returns the validated record. The load either yields a fully populated,
// internally consistent record or the first violation found; no partially
// parsed record is ever returned.
func Load(path string) (*TrainingConfig, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return LoadResource(res)
}

// LoadResource reads a training configuration from an already opened resource.
func LoadResource(res *asset.Resource) (*TrainingConfig, error) {
	r := &configReader{
		file: res.Path(),
		dir:  res.Dir(),
		seen: make(map[string]bool, len(schema)),
	}
	return r.read(res)
}

type configReader struct {
	// Source name used in error messages.
	file string

	// Directory that relative path fields are resolved against. Empty for
	// remote resources; their path fields pass through verbatim.
	dir string

	seen map[string]bool
	cfg  TrainingConfig
}

// Parse the line-oriented 'key = value' format. Blank lines and #-prefixed
// comment lines are ignored. Every violation aborts the load immediately.
func (r *configReader) read(in io.Reader) (*TrainingConfig, error) {
	var lineNum int

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			return nil, r.emitError(BadSyntax, lineNum, "", line, "expected 'key = value'")
		}
		key = strings.TrimSpace(key)
		raw = strings.TrimSpace(raw)
		if key == "" {
			return nil, r.emitError(BadSyntax, lineNum, "", line, "missing key before '='")
		}

		spec, exists := schema[key]
		if !exists {
			return nil, r.emitError(UnknownKey, lineNum, key, raw, "")
		}
		if r.seen[key] {
			return nil, r.emitError(BadSyntax, lineNum, key, line, "duplicate assignment to '"+key+"'")
		}
		r.seen[key] = true

		val, kind, detail := r.coerce(spec, raw)
		if detail != "" {
			return nil, r.emitError(kind, lineNum, key, raw, detail)
		}
		if spec.valid != nil && !spec.valid(val) {
			return nil, r.emitError(RangeViolation, lineNum, key, raw, spec.constraint)
		}
		spec.set(&r.cfg, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// The file is the sole source of truth; absence never implies a default.
	for _, key := range fieldOrder {
		if !r.seen[key] {
			return nil, r.emitError(MissingKey, 0, key, "", "")
		}
	}

	return &r.cfg, nil
}

// Coerce a raw token to the field's semantic type. On failure the returned
// detail is non-empty and names what was expected.
func (r *configReader) coerce(spec fieldSpec, raw string) (value, ErrorKind, string) {
	switch spec.kind {
	case stringField:
		return value{s: raw}, 0, ""

	case pathField:
		path := raw
		if r.dir != "" && path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(r.dir, path)
		}
		return value{s: path}, 0, ""

	case enumField:
		for _, allowed := range spec.allowed {
			if raw == allowed {
				return value{s: raw}, 0, ""
			}
		}
		return value{}, InvalidEnum, strings.Join(spec.allowed, ", ")

	case intField:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return value{}, TypeMismatch, "int"
		}
		return value{i: i, f: float64(i)}, 0, ""

	case floatField:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value{}, TypeMismatch, "float"
		}
		return value{f: f}, 0, ""

	case boolField:
		switch strings.ToLower(raw) {
		case "true", "1":
			return value{b: true}, 0, ""
		case "false", "0":
			return value{b: false}, 0, ""
		}
		return value{}, TypeMismatch, "bool"
	}

	return value{}, TypeMismatch, spec.kind.String()
}

func (r *configReader) emitError(kind ErrorKind, line int, key, raw, detail string) *Error {
	return &Error{
		Kind:   kind,
		File:   r.file,
		Line:   line,
		Key:    key,
		Raw:    raw,
		Detail: detail,
	}
}
