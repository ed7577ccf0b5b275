package config

import (
	"fmt"

	"github.com/de-tools/report-forge/pkg/services/export"
	"github.com/spf13/viper"
)

// LoadPageSetup loads PDF page geometry from the given config file.
// Missing keys keep the US Letter defaults.
func LoadPageSetup(path string) (export.PageSetup, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := export.DefaultPageSetup()
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("margin", defaults.Margin)

	if err := v.ReadInConfig(); err != nil {
		return export.PageSetup{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var setup export.PageSetup
	if err := v.Unmarshal(&setup); err != nil {
		return export.PageSetup{}, fmt.Errorf("failed to parse page setup: %w", err)
	}
	return setup, nil
}
