package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Config contains the search parameters of the gyro tracker.
type Config struct {
	// SmallSearchDistance is the half-width, in pixels, of the narrow search
	// window around a predicted keypoint position.
	SmallSearchDistance int `json:"small_search_distance_px"`
	// LargeSearchDistance is the half-width of the fallback window searched
	// when the narrow window yields nothing. Must exceed SmallSearchDistance.
	LargeSearchDistance int `json:"large_search_distance_px"`
	// MatchingThresholdRatio is the fraction of descriptor bits a candidate
	// must strictly exceed to be accepted.
	MatchingThresholdRatio float64 `json:"matching_threshold_ratio"`
	// UseDescriptorScore reports the descriptor agreement in bits as the
	// match score instead of the historical constant 0.
	UseDescriptorScore bool `json:"use_descriptor_score"`
}

// LoadConfiguration loads a Config from a json file.
func LoadConfiguration(file string) (*Config, error) {
	var config Config
	filePath := filepath.Clean(file)
	configFile, err := os.Open(filePath) //nolint:gosec
	defer utils.UncheckedErrorFunc(configFile.Close)
	if err != nil {
		return nil, err
	}
	jsonParser := json.NewDecoder(configFile)
	if err := jsonParser.Decode(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(file); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate ensures all parts of the Config are valid.
func (config *Config) Validate(path string) error {
	if config.SmallSearchDistance < 1 {
		return utils.NewConfigValidationError(path, errors.New("small_search_distance_px should be >= 1"))
	}
	if config.LargeSearchDistance <= config.SmallSearchDistance {
		return utils.NewConfigValidationError(path, errors.New("large_search_distance_px should be greater than small_search_distance_px"))
	}
	if config.MatchingThresholdRatio <= 0 || config.MatchingThresholdRatio >= 1 {
		return utils.NewConfigValidationError(path, errors.New("matching_threshold_ratio should be in (0, 1)"))
	}
	return nil
}
