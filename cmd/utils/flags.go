package utils

import (
	"github.com/anyswap/ICP-AccountID/log"
	"github.com/anyswap/ICP-AccountID/params"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file (toml)",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   3,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// LogFileFlag --log
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag --rotation
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotation",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag --maxage
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "log max age (unit hour)",
		Value: 720,
	}

	// SubaccountFlag --subaccount
	SubaccountFlag = &cli.StringFlag{
		Name:  "subaccount",
		Usage: "subaccount in hex, left padded to 32 bytes",
	}
	// SubaccountIndexFlag --subaccount-index
	SubaccountIndexFlag = &cli.Uint64Flag{
		Name:  "subaccount-index",
		Usage: "subaccount from big endian index",
	}
	// SubaccountPrincipalFlag --subaccount-principal
	SubaccountPrincipalFlag = &cli.StringFlag{
		Name:  "subaccount-principal",
		Usage: "subaccount derived from principal id",
	}
	// StrictFlag --strict
	StrictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "verify the checksum embedded in principal id",
	}
	// PrincipalsFileFlag --file
	PrincipalsFileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "derive principals listed in file, one per line ('-' for stdin)",
	}

	// CommonLogFlags common log flags
	CommonLogFlags = []cli.Flag{
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
		LogFileFlag,
		LogRotationFlag,
		LogMaxAgeFlag,
	}
)

// SetLogger set log level, format and output.
// Explicitly set flags take precedence over the log config.
func SetLogger(ctx *cli.Context, config *params.LogConfig) error {
	if config == nil {
		config = params.NewDefaultConfig().Log
	}
	logLevel := uint64(config.Verbosity)
	if ctx.IsSet(VerbosityFlag.Name) {
		logLevel = ctx.Uint64(VerbosityFlag.Name)
	}
	jsonFormat := config.JSONFormat
	if ctx.IsSet(JSONFormatFlag.Name) {
		jsonFormat = ctx.Bool(JSONFormatFlag.Name)
	}
	colorFormat := config.ColorFormat && IsTerminal()
	if ctx.IsSet(ColorFormatFlag.Name) {
		colorFormat = ctx.Bool(ColorFormatFlag.Name)
	}
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)

	logFile := config.LogFile
	if ctx.IsSet(LogFileFlag.Name) {
		logFile = ctx.String(LogFileFlag.Name)
	}
	rotation := config.Rotation
	if ctx.IsSet(LogRotationFlag.Name) {
		rotation = ctx.Uint64(LogRotationFlag.Name)
	}
	maxAge := config.MaxAge
	if ctx.IsSet(LogMaxAgeFlag.Name) {
		maxAge = ctx.Uint64(LogMaxAgeFlag.Name)
	}
	return log.SetLogFile(logFile, rotation, maxAge)
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}
