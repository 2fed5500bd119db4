// Package build provide customized methods to build project.
// It adds external infos (eg. gitCommit, gitDate) to the version sub command.
//
// Usage:
//
//	go run build/ci.go install [ packages ]
//	go run build/ci.go test [ packages ]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anyswap/ICP-AccountID/internal/build"
)

const minGoMinorVersion = 18

var gobin, _ = filepath.Abs(filepath.Join("build", "bin"))

func main() {
	log.SetFlags(log.Lshortfile)

	if _, err := os.Stat(filepath.Join("build", "ci.go")); os.IsNotExist(err) {
		log.Fatal("this script must be run from the root of the repository")
	}
	if len(os.Args) < 2 {
		log.Fatal("need subcommand as first argument")
	}
	switch os.Args[1] {
	case "install":
		doInstall(os.Args[2:])
	case "test":
		doTest(os.Args[2:])
	default:
		log.Fatal("unknown command ", os.Args[1])
	}
}

func checkGoVersion() {
	if strings.Contains(runtime.Version(), "devel") {
		return
	}
	// Figure out the minor version number since we can't textually compare (1.10 < 1.9)
	var minor int
	_, _ = fmt.Sscanf(strings.TrimPrefix(runtime.Version(), "go1."), "%d", &minor)
	if minor < minGoMinorVersion {
		log.Println("You have Go version", runtime.Version())
		log.Printf("requires at least Go version 1.%d and cannot", minGoMinorVersion)
		log.Println("be compiled with an earlier version. Please upgrade your Go installation.")
		os.Exit(1)
	}
}

func packagesOrAll() []string {
	if flag.NArg() > 0 {
		return flag.Args()
	}
	return []string{"./..."}
}

// Compiling

func doInstall(cmdline []string) {
	_ = flag.CommandLine.Parse(cmdline)
	checkGoVersion()
	env := build.Env()
	log.Println("build environment:", env)

	goinstall := goTool("install", buildFlags(env)...)
	goinstall.Args = append(goinstall.Args, "-v")
	goinstall.Args = append(goinstall.Args, packagesOrAll()...)
	build.MustRun(goinstall)
}

// Testing

func doTest(cmdline []string) {
	_ = flag.CommandLine.Parse(cmdline)
	checkGoVersion()

	gotest := goTool("test", "-count=1")
	gotest.Args = append(gotest.Args, packagesOrAll()...)
	build.MustRun(gotest)
}

func buildFlags(env build.Environment) (flags []string) {
	var ld []string
	if env.Commit != "" {
		ld = append(ld,
			"-X", "main.gitCommit="+env.Commit,
			"-X", "main.gitDate="+env.Date,
		)
	}
	if runtime.GOOS == "darwin" {
		ld = append(ld, "-s")
	}

	if len(ld) > 0 {
		flags = append(flags, "-ldflags", strings.Join(ld, " "))
	}
	return flags
}

func goTool(subcmd string, args ...string) *exec.Cmd {
	cmd := build.GoTool(subcmd, args...)
	cmd.Env = append(cmd.Env, "GOBIN="+gobin)
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "GOBIN=") {
			continue
		}
		cmd.Env = append(cmd.Env, e)
	}
	return cmd
}
