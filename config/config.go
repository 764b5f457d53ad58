package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boolnet/network"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrParse wraps YAML decoding failures.
	ErrParse = errors.New("config: cannot parse run file")

	// ErrEnv wraps malformed BOOLNET_* values.
	ErrEnv = errors.New("config: invalid environment override")
)

// Strategy selects the analysis algorithm.
type Strategy string

const (
	StrategyTrajectory Strategy = "trajectory" // trace every initial state
	StrategyGraph      Strategy = "graph"      // build the STG and analyse it
)

// Config is the run section.
type Config struct {
	ExhaustiveThresholdBits int           `yaml:"exhaustive_threshold_bits" json:"exhaustive_threshold_bits" validate:"min=1,max=62"`
	SampleSize              int           `yaml:"sample_size" json:"sample_size" validate:"min=1"`
	RandomSeed              int64         `yaml:"random_seed" json:"random_seed"`
	Strategy                Strategy      `yaml:"strategy" json:"strategy" validate:"oneof=trajectory graph"`
	Workers                 int           `yaml:"workers" json:"workers" validate:"min=1,max=1024"`
	Closure                 bool          `yaml:"closure" json:"closure"`
	MaxTrajectory           int           `yaml:"max_trajectory" json:"max_trajectory" validate:"gte=0"`
	Timeout                 time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
}

// Default returns threshold 14, sample 10000, seed 0, trajectory strategy, one worker.
func Default() Config {
	return Config{
		ExhaustiveThresholdBits: 14,
		SampleSize:              10000,
		Strategy:                StrategyTrajectory,
		Workers:                 1,
	}
}

// NodeSpec is one node and its update rule.
type NodeSpec struct {
	Name string `yaml:"name" validate:"required"`
	Rule string `yaml:"rule" validate:"required"`
}

// NetworkSpec is the network section.
type NetworkSpec struct {
	Nodes []NodeSpec      `yaml:"nodes" validate:"required,min=1,unique=Name,dive"`
	Pins  map[string]bool `yaml:"pins"`
}

// File is a complete run file.
type File struct {
	Run     Config      `yaml:"run"`
	Network NetworkSpec `yaml:"network"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Validate checks both sections.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Definition compiles the network section, applying pins.
func (n NetworkSpec) Definition() (*network.Definition, error) {
	names := make([]string, len(n.Nodes))
	rules := make([]string, len(n.Nodes))
	for i, node := range n.Nodes {
		names[i] = node.Name
		rules[i] = node.Rule
	}
	def, err := network.Compile(names, rules)
	if err != nil {
		return nil, err
	}
	if len(n.Pins) == 0 {
		return def, nil
	}

	return def.PinNames(n.Pins)
}

// Parse decodes a run file, fills defaults and validates it. Unknown keys are rejected.
// Environment overrides are not applied; see Load.
func Parse(data []byte) (*File, error) {
	f, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load reads path, applies BOOLNET_* overrides from the process environment and validates.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = f.Run.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func decode(data []byte) (*File, error) {
	f := &File{Run: Default()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return f, nil
}

// ApplyEnv overrides fields from BOOLNET_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"BOOLNET_EXHAUSTIVE_THRESHOLD_BITS", &c.ExhaustiveThresholdBits},
		{"BOOLNET_SAMPLE_SIZE", &c.SampleSize},
		{"BOOLNET_WORKERS", &c.Workers},
		{"BOOLNET_MAX_TRAJECTORY", &c.MaxTrajectory},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrEnv, e.key, v, err)
			}
			*e.dst = i
		}
	}
	if v, ok := lookup("BOOLNET_RANDOM_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: BOOLNET_RANDOM_SEED=%q: %v", ErrEnv, v, err)
		}
		c.RandomSeed = seed
	}
	if v, ok := lookup("BOOLNET_STRATEGY"); ok {
		c.Strategy = Strategy(v)
	}
	if v, ok := lookup("BOOLNET_CLOSURE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: BOOLNET_CLOSURE=%q: %v", ErrEnv, v, err)
		}
		c.Closure = b
	}
	if v, ok := lookup("BOOLNET_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: BOOLNET_TIMEOUT=%q: %v", ErrEnv, v, err)
		}
		c.Timeout = d
	}

	return nil
}
