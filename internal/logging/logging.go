// Package logging bootstraps the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the shared sugared logger. Init must run before use.
var Logger *zap.SugaredLogger

// Init builds the logger. Verbose mode uses the development config at
// debug level; otherwise output is limited to warnings so scan output
// stays clean.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("initializing logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
