package cli

import (
	"errors"
	"fmt"

	"github.com/signalsphere/mdreport/internal/config"
	"github.com/signalsphere/mdreport/internal/fileutil"
	"github.com/signalsphere/mdreport/internal/hints"
)

// LoadConfig resolves the configuration named by the -c flag, or the
// defaults when the flag is empty. A missing file gets a hint listing where
// names are looked up. The result is also stored on e.Config.
func (e *Environment) LoadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		e.logger().Debug("no config file, using defaults")
		e.Config = config.DefaultConfig()
		return e.Config, nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(nameOrPath) {
				searched = config.SearchPaths(nameOrPath)
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, err
	}

	e.logger().Debug("config loaded", "config", nameOrPath)
	e.Config = cfg
	return cfg, nil
}
