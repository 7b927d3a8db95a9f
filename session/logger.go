package session

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger for the given mode. Anything other than
// "development"/"dev" gets the production preset.
func NewLogger(mode string) (*zap.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "dev", "development":
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}
