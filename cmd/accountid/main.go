package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/anyswap/ICP-AccountID/cmd/utils"
	"github.com/anyswap/ICP-AccountID/params"
	"github.com/anyswap/ICP-AccountID/tokens/icp"
	"github.com/urfave/cli/v2"
)

const (
	exitCodeFailure         = 1
	exitCodeMissingArgument = 2
)

var (
	clientIdentifier = "accountid"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

func newApp() *cli.App {
	app := utils.NewApp(clientIdentifier, gitCommit, gitDate, "derive the ledger account identifier of a principal id")
	app.Action = accountID
	app.ArgsUsage = "<principal_id>"
	app.HideVersion = true // we have a command to print the version
	app.Copyright = "Copyright 2021 The ICP-AccountID Authors"
	app.Commands = []*cli.Command{
		checkCommand,
		principalCommand,
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{
		utils.ConfigFileFlag,
		utils.SubaccountFlag,
		utils.SubaccountIndexFlag,
		utils.SubaccountPrincipalFlag,
		utils.StrictFlag,
		utils.PrincipalsFileFlag,
	}, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr
	// exit codes are decided by run
	app.ExitErrHandler = func(*cli.Context, error) {}

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, utils.SprintError("Error:"), err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if errors.Is(err, icp.ErrMissingArgument) {
		return exitCodeMissingArgument
	}
	return exitCodeFailure
}

// loadConfig load config file and set logger, flags override config
func loadConfig(ctx *cli.Context) (*params.Config, error) {
	config, err := params.LoadConfig(utils.GetConfigFilePath(ctx))
	if err != nil {
		return nil, err
	}
	if err := utils.SetLogger(ctx, config.Log); err != nil {
		return nil, err
	}
	return config, nil
}
