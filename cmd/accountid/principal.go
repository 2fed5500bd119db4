package main

import (
	"fmt"
	"strings"

	"github.com/anyswap/ICP-AccountID/tokens/icp"
	"github.com/urfave/cli/v2"
)

var (
	principalCommand = &cli.Command{
		Action:    showPrincipal,
		Name:      "principal",
		Usage:     "decode principal id",
		ArgsUsage: "<principal_id>",
		Description: `
print the canonical text, raw bytes and embedded checksum status of principal id
`,
	}
)

func showPrincipal(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}
	switch ctx.NArg() {
	case 0:
		return icp.ErrMissingPrincipal
	case 1:
	default:
		return fmt.Errorf("%w: too many arguments %q", icp.ErrInvalidInput, ctx.Args().Slice())
	}

	text := ctx.Args().First()
	if strings.TrimSpace(text) == "" {
		return icp.ErrMissingPrincipal
	}
	p, err := icp.PrincipalFromText(text)
	if err != nil {
		return err
	}
	checksumOK, err := icp.VerifyPrincipalChecksum(text)
	if err != nil {
		return err
	}
	checksum := "ok"
	if !checksumOK {
		checksum = "mismatch"
	}

	w := ctx.App.Writer
	fmt.Fprintln(w, "principal:", p.String())
	fmt.Fprintln(w, "bytes:", p.Hex())
	fmt.Fprintln(w, "checksum:", checksum)
	fmt.Fprintln(w, "anonymous:", p.IsAnonymous())
	return nil
}
