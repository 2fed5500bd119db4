// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package build

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// DryRunFlag dry run flag
var DryRunFlag = flag.Bool("n", false, "dry run, don't execute commands")

// Environment contains metadata provided by the build environment.
type Environment struct {
	Commit string // git commit hash
	Date   string // git commit date, format 20060102
}

func (env Environment) String() string {
	return fmt.Sprintf("commit=%s date=%s", env.Commit, env.Date)
}

// Env returns metadata about the current git checkout.
func Env() Environment {
	commit := RunGit("rev-parse", "HEAD")
	if commit == "" {
		return Environment{}
	}
	return Environment{
		Commit: commit,
		Date:   getDate(RunGit("show", "-s", "--format=%ct", "HEAD")),
	}
}

func getDate(unixTime string) string {
	var sec int64
	if _, err := fmt.Sscanf(unixTime, "%d", &sec); err != nil {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format("20060102")
}

// MustRun executes the given command and exits the host process for
// any error.
func MustRun(cmd *exec.Cmd) {
	fmt.Println(">>>", strings.Join(cmd.Args, " "))
	if !*DryRunFlag {
		cmd.Stderr = os.Stderr
		cmd.Stdout = os.Stdout
		if err := cmd.Run(); err != nil {
			log.Fatal(err)
		}
	}
}

var warnedAboutGit bool

// RunGit runs a git subcommand and returns its output.
// Returns empty string if git is not installed or this is not a git checkout.
func RunGit(args ...string) string {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			if !warnedAboutGit {
				log.Println("Warning: can't find 'git' in PATH")
				warnedAboutGit = true
			}
			return ""
		}
		log.Println(strings.Join(cmd.Args, " "), ": ", err, "\n", stderr.String())
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

// GoTool returns the command that runs a go tool. This uses go from GOROOT instead of PATH
// so that go commands executed by build use the same version of Go as the 'host' that runs
// build code.
func GoTool(tool string, args ...string) *exec.Cmd {
	args = append([]string{tool}, args...)
	return exec.Command(filepath.Join(runtime.GOROOT(), "bin", "go"), args...) //nolint:gosec // any better way?
}
