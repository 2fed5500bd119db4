package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kb4lgPrincipal = "kb4lg-bqaaa-aaaab-qabfq-cai"
	kb4lgAccountID = "22c138e9ab7156bf99a09fb4edabb12a35cae06ed162577ab6479d3dfd2f26c6"

	gmk2mPrincipal = "gmk2m-oiaaa-aaaab-qaaja-cai"
	gmk2mAccountID = "17506366cdd9f3478b35944a6eed621f6fe14176abd1dfa26720e31785ab8462"

	kb4lgIndex1AccountID    = "4def203d62bbfd59550bebe5d854cee30c3176042d37adce91f80b2790e92d44"
	kb4lgAnonymousAccountID = "4d5a40cd62c33955851e88546b5514c17039ac88e7509f3a9cf2ccf339a33e2a"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWithInput(stdin string, args ...string) result {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"accountid"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func runArgs(args ...string) result {
	return runWithInput("", args...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestDerive(t *testing.T) {
	res := runArgs(kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAccountID+"\n", res.stdout)

	res = runArgs(gmk2mPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, gmk2mAccountID+"\n", res.stdout)

	res = runArgs(strings.ToUpper(strings.ReplaceAll(kb4lgPrincipal, "-", "")))
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAccountID+"\n", res.stdout)
}

func TestDeriveMissingArgument(t *testing.T) {
	res := runArgs()
	assert.Equal(t, exitCodeMissingArgument, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "please provide principalID")

	res = runArgs("  ")
	assert.Equal(t, exitCodeMissingArgument, res.code)

	res = runArgs("2vxsx\n\n\n\n\n\n\n\nfae")
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Empty(t, res.stdout)
}

func TestDeriveInvalidInput(t *testing.T) {
	for _, p := range []string{"kb4lg-bqaaa-aaaab-qabfq-ca1", "gmk8m", "aa"} {
		res := runArgs(p)
		assert.Equal(t, exitCodeFailure, res.code, p)
		assert.Empty(t, res.stdout, p)
		assert.Contains(t, res.stderr, "invalid input", p)
	}

	res := runArgs(kb4lgPrincipal, gmk2mPrincipal)
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "too many arguments")
}

func TestDeriveStrict(t *testing.T) {
	const corrupted = "v54lg-bqaaa-aaaab-qabfq-cai"

	res := runArgs(corrupted)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAccountID+"\n", res.stdout)

	res = runArgs("--strict", corrupted)
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "checksum mismatch")

	res = runArgs("--strict", kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAccountID+"\n", res.stdout)
}

func TestDeriveSubaccount(t *testing.T) {
	res := runArgs("--subaccount-index", "1", kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgIndex1AccountID+"\n", res.stdout)

	res = runArgs("--subaccount", "0x01", kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgIndex1AccountID+"\n", res.stdout)

	res = runArgs("--subaccount-principal", "2vxsx-fae", kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAnonymousAccountID+"\n", res.stdout)

	res = runArgs("--subaccount", "01", "--subaccount-index", "1", kb4lgPrincipal)
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "only one of")

	res = runArgs("--subaccount", "xyz", kb4lgPrincipal)
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "invalid subaccount")
}

func TestDeriveWithConfig(t *testing.T) {
	config := writeFile(t, "config.toml", `
[Derive]
Subaccount = "01"
StrictChecksum = true
`)
	res := runArgs("--config", config, kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgIndex1AccountID+"\n", res.stdout)

	// flags override config
	res = runArgs("--config", config, "--subaccount-index", "0", kb4lgPrincipal)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgAccountID+"\n", res.stdout)

	res = runArgs("--config", config, "v54lg-bqaaa-aaaab-qabfq-cai")
	assert.Equal(t, exitCodeFailure, res.code)

	res = runArgs("--config", filepath.Join(t.TempDir(), "not-exist.toml"), kb4lgPrincipal)
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "not exist")
}

func TestDeriveFile(t *testing.T) {
	file := writeFile(t, "principals.txt", strings.Join([]string{
		"# canisters",
		kb4lgPrincipal,
		"",
		gmk2mPrincipal,
		kb4lgPrincipal,
	}, "\n"))

	res := runArgs("--file", file)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgPrincipal+"\t"+kb4lgAccountID+"\n"+gmk2mPrincipal+"\t"+gmk2mAccountID+"\n", res.stdout)

	// same principal in different text forms is derived once
	res = runArgs("--file", writeFile(t, "forms.txt", strings.Join([]string{
		kb4lgPrincipal,
		"KB4LGBQAAAAAAABQABFQCAI",
		"kb4lgbqaaaaaaabqabfqcai",
		gmk2mPrincipal,
	}, "\n")))
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, kb4lgPrincipal+"\t"+kb4lgAccountID+"\n"+gmk2mPrincipal+"\t"+gmk2mAccountID+"\n", res.stdout)

	res = runWithInput(gmk2mPrincipal+"\n", "--file", "-")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, gmk2mPrincipal+"\t"+gmk2mAccountID+"\n", res.stdout)

	res = runArgs("--file", writeFile(t, "empty.txt", "# nothing\n"))
	assert.Equal(t, exitCodeMissingArgument, res.code)

	res = runArgs("--file", writeFile(t, "bad.txt", kb4lgPrincipal+"\nkb4lg-1\n"))
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "derive kb4lg-1 failed")

	res = runArgs("--file", file, kb4lgPrincipal)
	assert.Equal(t, exitCodeFailure, res.code)

	res = runArgs("--file", filepath.Join(t.TempDir(), "not-exist.txt"))
	assert.Equal(t, exitCodeFailure, res.code)
}

func TestCheckCommand(t *testing.T) {
	res := runArgs("check", kb4lgAccountID)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "valid\n", res.stdout)

	res = runArgs("check", "00"+kb4lgAccountID[2:])
	assert.Equal(t, exitCodeFailure, res.code)
	assert.Contains(t, res.stderr, "checksum mismatch")

	res = runArgs("check")
	assert.Equal(t, exitCodeMissingArgument, res.code)
	assert.Contains(t, res.stderr, "please provide accountID")

	res = runArgs("check", " ")
	assert.Equal(t, exitCodeMissingArgument, res.code)

	res = runArgs("check", kb4lgAccountID, kb4lgAccountID)
	assert.Equal(t, exitCodeFailure, res.code)
}

func TestPrincipalCommand(t *testing.T) {
	res := runArgs("principal", "KB4LGBQAAAAAAABQABFQCAI")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "principal: "+kb4lgPrincipal+"\n"+
		"bytes: 000000000030004b0101\n"+
		"checksum: ok\n"+
		"anonymous: false\n", res.stdout)

	res = runArgs("principal", "v54lg-bqaaa-aaaab-qabfq-cai")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "checksum: mismatch\n")

	res = runArgs("principal", "2vxsx-fae")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "anonymous: true\n")

	res = runArgs("principal")
	assert.Equal(t, exitCodeMissingArgument, res.code)

	res = runArgs("principal", "  ")
	assert.Equal(t, exitCodeMissingArgument, res.code)
	assert.Contains(t, res.stderr, "please provide principalID")
}

func TestVersionCommand(t *testing.T) {
	res := runArgs("version")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Version: 0.1.0")
}
