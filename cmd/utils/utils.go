package utils

import (
	"os"
	"path/filepath"

	"github.com/anyswap/ICP-AccountID/params"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string

	errorMark = color.New(color.FgRed, color.Bold)
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// IsTerminal whether stderr is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// SprintError render error mark, colored when stderr is a terminal
func SprintError(msg string) string {
	if !IsTerminal() {
		return msg
	}
	return errorMark.Sprint(msg)
}
