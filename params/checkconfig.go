package params

import (
	"errors"
	"fmt"

	"github.com/anyswap/ICP-AccountID/tokens/icp"
)

const maxVerbosity = 6

// CheckConfig check config
func (c *Config) CheckConfig() error {
	if c.Log == nil {
		return errors.New("must config 'Log'")
	}
	if err := c.Log.CheckConfig(); err != nil {
		return err
	}
	if c.Derive != nil {
		if err := c.Derive.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check log config
func (c *LogConfig) CheckConfig() error {
	if c.Verbosity > maxVerbosity {
		return fmt.Errorf("'Verbosity' must be in range [0, %d]", maxVerbosity)
	}
	if c.LogFile != "" && c.Rotation > c.MaxAge {
		return errors.New("'Rotation' must not be larger than 'MaxAge'")
	}
	return nil
}

// CheckConfig check derive config
func (c *DeriveConfig) CheckConfig() error {
	if c.Subaccount == "" {
		return nil
	}
	if _, err := icp.SubaccountFromHex(c.Subaccount); err != nil {
		return fmt.Errorf("wrong 'Subaccount': %w", err)
	}
	return nil
}

// GetSubaccount get configed subaccount, default subaccount if not configed
func (c *DeriveConfig) GetSubaccount() (icp.Subaccount, error) {
	if c == nil || c.Subaccount == "" {
		return icp.DefaultSubaccount(), nil
	}
	return icp.SubaccountFromHex(c.Subaccount)
}
