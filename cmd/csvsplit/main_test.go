package main

import (
	"os"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestRunExitCodes(t *testing.T) {
	dir := fs.NewDir(t, "csvsplit-cli",
		fs.WithFile("people.csv", "name,city,age\na,pune,30\nb,delhi,25\nc,pune,22\n"),
	)
	defer dir.Remove()

	out := dir.Join("parts")
	base := []string{"-log-level", "error", "-out", out}

	code := run(append(base, "-by", "city", dir.Join("people.csv")))
	assert.Equal(t, code, exitOK)
	got, err := os.ReadFile(dir.Join("parts", "pune.csv"))
	assert.NilError(t, err)
	assert.Equal(t, string(got), "name,age\na,30\nc,22\n")
	got, err = os.ReadFile(dir.Join("parts", "delhi.csv"))
	assert.NilError(t, err)
	assert.Equal(t, string(got), "name,age\nb,25\n")

	code = run(append(base, dir.Join("people.csv")))
	assert.Equal(t, code, exitUsage)

	code = run(append(base, "-by", "city"))
	assert.Equal(t, code, exitUsage)

	code = run(append(base, "-by", "city", "-delim", "ab", dir.Join("people.csv")))
	assert.Equal(t, code, exitUsage)

	code = run(append(base, "-by", "country", dir.Join("people.csv")))
	assert.Equal(t, code, exitError)

	code = run(append(base, "-in", dir.Join("nope.csv"), "-by", "city"))
	assert.Equal(t, code, exitError)
}
