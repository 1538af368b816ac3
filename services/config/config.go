// services/config/config.go
package config

import (
	"audiodock-go/types"
)

// ForBoard resolves the embedded configuration for a board ID.
func ForBoard(board string) (types.DockConfig, bool) {
	cfg, ok := boardConfigs[board]
	return cfg, ok
}

// Default returns the configuration for the shipped dock hardware.
func Default() types.DockConfig { return boardConfigs[boardPicoDock] }
