package main

import (
	"fmt"
	"strings"

	"github.com/anyswap/ICP-AccountID/log"
	"github.com/anyswap/ICP-AccountID/tokens/icp"
	"github.com/urfave/cli/v2"
)

var (
	checkCommand = &cli.Command{
		Action:    checkAccountID,
		Name:      "check",
		Usage:     "validate account identifier checksum",
		ArgsUsage: "<account_id>",
		Description: `
check the leading 4 bytes of the 64 hex characters account identifier
equal the big endian crc32 of the remaining 28 bytes
`,
	}
)

func checkAccountID(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}
	switch ctx.NArg() {
	case 0:
		return icp.ErrMissingAccountID
	case 1:
	default:
		return fmt.Errorf("%w: too many arguments %q", icp.ErrInvalidInput, ctx.Args().Slice())
	}

	text := ctx.Args().First()
	if strings.TrimSpace(text) == "" {
		return icp.ErrMissingAccountID
	}
	id, err := icp.AccountIdentifierFromHex(text)
	if err != nil {
		return err
	}
	log.Info("check account id success", "accountID", id.Hex())
	fmt.Fprintln(ctx.App.Writer, "valid")
	return nil
}
