package board

import (
	"fmt"

	"github.com/geofffranks/yaml"
	"github.com/hashicorp/go-multierror"
)

// ScenarioConfig is the YAML shape of a saved board scenario: exactly
// one of the board kinds below, selected by Kind.
type ScenarioConfig struct {
	Kind string `yaml:"kind"`

	// rect
	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`

	// grid
	Empty [][2]int `yaml:"empty"`

	// predicate
	Expression string `yaml:"expression"`
}

// LoadScenario parses YAML scenario data and builds the Board it
// describes.
func LoadScenario(data []byte) (Board, error) {
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("board: parsing scenario: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case "rect":
		return RectBoard{XMin: cfg.XMin, XMax: cfg.XMax, YMin: cfg.YMin, YMax: cfg.YMax}, nil
	case "grid":
		return NewGridBoard(cfg.Empty), nil
	case "predicate":
		return NewPredicateBoard(cfg.Expression)
	default:
		return nil, fmt.Errorf("board: unknown scenario kind %q", cfg.Kind)
	}
}

func (cfg ScenarioConfig) validate() error {
	var result *multierror.Error

	switch cfg.Kind {
	case "rect":
		if cfg.XMax < cfg.XMin {
			result = multierror.Append(result, fmt.Errorf("board: rect scenario has x_max (%d) < x_min (%d)", cfg.XMax, cfg.XMin))
		}
		if cfg.YMax < cfg.YMin {
			result = multierror.Append(result, fmt.Errorf("board: rect scenario has y_max (%d) < y_min (%d)", cfg.YMax, cfg.YMin))
		}
	case "grid":
		if len(cfg.Empty) == 0 {
			result = multierror.Append(result, fmt.Errorf("board: grid scenario has no empty tiles"))
		}
	case "predicate":
		if cfg.Expression == "" {
			result = multierror.Append(result, fmt.Errorf("board: predicate scenario has an empty expression"))
		}
	case "":
		result = multierror.Append(result, fmt.Errorf("board: scenario is missing a kind"))
	default:
		result = multierror.Append(result, fmt.Errorf("board: unknown scenario kind %q", cfg.Kind))
	}

	return result.ErrorOrNil()
}
