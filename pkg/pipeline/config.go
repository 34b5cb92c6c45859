package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/maximizer/pkg/errors"
)

// LoadConfig reads run options from a TOML file:
//
//	variant = "sparse"
//	matcher = "push-relabel"
//	workers = 4
//	max_iterations = 100000
//
// Unknown keys are rejected so that typos do not go unnoticed. The returned
// options are not yet defaulted; callers overlay command line flags and then
// call [Options.ValidateAndSetDefaults].
func LoadConfig(path string) (Options, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return ParseConfig(string(data))
}

// ParseConfig decodes run options from TOML text. See [LoadConfig].
func ParseConfig(text string) (Options, error) {
	var opts Options
	md, err := toml.Decode(text, &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}
