// Package relu: YAML-loadable configuration bridging into functional
// options, for callers that wire the map from config files rather than
// code.

package relu

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relumap/bandwidth"
)

// Config mirrors the external configuration surface of the map. Zero or
// absent fields fall back to the package defaults, so a partial YAML
// document is valid.
//
//	gamma: avg_ann_50      # scale | avg_ann | avg_ann_50 | positive float
//	n_components: 300
//	random_state: 42
//	fit_intercept: true
type Config struct {
	Gamma        bandwidth.Selector `yaml:"gamma"`
	NComponents  int                `yaml:"n_components"`
	RandomState  uint64             `yaml:"random_state"`
	FitIntercept *bool              `yaml:"fit_intercept"`
}

// ParseConfig decodes and validates a YAML configuration document.
// Unknown gamma spellings surface bandwidth.ErrUnknownSelector here, at
// parse time, so a bad config never reaches Fit.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("relu: parse config: %w", err)
	}
	if c.NComponents < 0 {
		return Config{}, fmt.Errorf("relu: parse config: n_components=%d: %w",
			c.NComponents, ErrInvalidComponents)
	}
	return c, nil
}

// Options converts the config into functional options, skipping absent
// fields so defaults apply. Use as New(cfg.Options()...).
func (c Config) Options() []Option {
	opts := make([]Option, 0, 4)
	if c.Gamma != (bandwidth.Selector{}) {
		opts = append(opts, WithSelector(c.Gamma))
	}
	if c.NComponents > 0 {
		opts = append(opts, WithNComponents(c.NComponents))
	}
	if c.RandomState != 0 {
		opts = append(opts, WithSeed(c.RandomState))
	}
	if c.FitIntercept != nil {
		opts = append(opts, WithFitIntercept(*c.FitIntercept))
	}
	return opts
}
