package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anyswap/ICP-AccountID/cmd/utils"
	"github.com/anyswap/ICP-AccountID/common"
	"github.com/anyswap/ICP-AccountID/log"
	"github.com/anyswap/ICP-AccountID/params"
	"github.com/anyswap/ICP-AccountID/tokens/icp"
	mapset "github.com/deckarep/golang-set"
	"github.com/urfave/cli/v2"
)

var errConflictSubaccounts = fmt.Errorf("%w: only one of --%v, --%v, --%v can be specified",
	icp.ErrInvalidInput, utils.SubaccountFlag.Name, utils.SubaccountIndexFlag.Name, utils.SubaccountPrincipalFlag.Name)

type deriver struct {
	subaccount icp.Subaccount
	strict     bool
}

func accountID(ctx *cli.Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	d, err := newDeriver(ctx, config.Derive)
	if err != nil {
		return err
	}

	if file := ctx.String(utils.PrincipalsFileFlag.Name); file != "" {
		if ctx.NArg() > 0 {
			return fmt.Errorf("%w: can not derive %q together with --%v", icp.ErrInvalidInput, ctx.Args().Slice(), utils.PrincipalsFileFlag.Name)
		}
		return d.deriveFile(ctx, file)
	}

	switch ctx.NArg() {
	case 0:
		return icp.ErrMissingPrincipal
	case 1:
	default:
		return fmt.Errorf("%w: too many arguments %q", icp.ErrInvalidInput, ctx.Args().Slice())
	}
	principalText := ctx.Args().First()
	if strings.TrimSpace(principalText) == "" {
		return icp.ErrMissingPrincipal
	}

	id, err := d.derive(principalText)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, id.Hex())
	return nil
}

func newDeriver(ctx *cli.Context, config *params.DeriveConfig) (*deriver, error) {
	sub, err := getSubaccount(ctx, config)
	if err != nil {
		return nil, err
	}
	return &deriver{
		subaccount: sub,
		strict:     config.StrictChecksum || ctx.Bool(utils.StrictFlag.Name),
	}, nil
}

// getSubaccount subaccount flags take precedence over the derive config
func getSubaccount(ctx *cli.Context, config *params.DeriveConfig) (sub icp.Subaccount, err error) {
	count := 0
	for _, name := range []string{
		utils.SubaccountFlag.Name,
		utils.SubaccountIndexFlag.Name,
		utils.SubaccountPrincipalFlag.Name,
	} {
		if ctx.IsSet(name) {
			count++
		}
	}
	if count > 1 {
		return sub, errConflictSubaccounts
	}

	switch {
	case ctx.IsSet(utils.SubaccountFlag.Name):
		return icp.SubaccountFromHex(ctx.String(utils.SubaccountFlag.Name))
	case ctx.IsSet(utils.SubaccountIndexFlag.Name):
		return icp.SubaccountFromIndex(ctx.Uint64(utils.SubaccountIndexFlag.Name)), nil
	case ctx.IsSet(utils.SubaccountPrincipalFlag.Name):
		p, err := icp.PrincipalFromText(ctx.String(utils.SubaccountPrincipalFlag.Name))
		if err != nil {
			return sub, err
		}
		return icp.SubaccountFromPrincipal(p)
	default:
		return config.GetSubaccount()
	}
}

func (d *deriver) principal(principalText string) (icp.Principal, error) {
	if d.strict {
		return icp.PrincipalFromTextStrict(principalText)
	}
	return icp.PrincipalFromText(principalText)
}

func (d *deriver) accountID(p icp.Principal) icp.AccountIdentifier {
	id := icp.NewAccountIdentifier(p, d.subaccount)
	log.Debug("derive account id", "principal", p.String(), "subaccount", d.subaccount.Hex(), "accountID", id.Hex())
	return id
}

func (d *deriver) derive(principalText string) (id icp.AccountIdentifier, err error) {
	p, err := d.principal(principalText)
	if err != nil {
		return id, err
	}
	return d.accountID(p), nil
}

// deriveFile derive principals listed in file.
// Lines decoding to the same principal (eg. differ in case or hyphens) are derived once.
func (d *deriver) deriveFile(ctx *cli.Context, file string) error {
	var r io.Reader
	if file == "-" {
		r = ctx.App.Reader
	} else {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	lines, err := common.ReadLines(r)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: no principal in %v", icp.ErrMissingPrincipal, file)
	}

	seen := mapset.NewThreadUnsafeSet()
	for _, line := range lines {
		p, err := d.principal(line)
		if err != nil {
			return fmt.Errorf("derive %v failed: %w", line, err)
		}
		if !seen.Add(p.String()) {
			log.Debug("skip duplicate principal", "principal", line, "canonical", p.String())
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "%v\t%v\n", line, d.accountID(p).Hex())
	}
	log.Info("derive principals file finished", "file", file, "total", len(lines), "derived", seen.Cardinality())
	return nil
}
