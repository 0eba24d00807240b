package main

import (
	"os"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestRunExitCodes(t *testing.T) {
	dir := fs.NewDir(t, "csvjoin-cli",
		fs.WithFile("people.csv", "id,name\n1,x\n2,y\n"),
		fs.WithFile("depts.csv", "id,dept\n1,eng\n3,ops\n"),
		fs.WithFile("other.csv", "id,dept\n9,hr\n"),
	)
	defer dir.Remove()

	out := dir.Join("result.csv")
	base := []string{"-log-level", "error", "-out", out}

	code := run(append(base, "-type", "left", "-on", "ID", dir.Join("people.csv"), dir.Join("depts.csv")))
	assert.Equal(t, code, exitOK)
	got, err := os.ReadFile(out)
	assert.NilError(t, err)
	assert.Equal(t, string(got), "id,name,dept\n1,x,eng\n2,y,\n")

	code = run(append(base, "-on", "id", dir.Join("people.csv"), dir.Join("other.csv")))
	assert.Equal(t, code, exitNoMatch)

	code = run(append(base, "-on", "dept", dir.Join("people.csv"), dir.Join("depts.csv")))
	assert.Equal(t, code, exitUsage)

	code = run(append(base, dir.Join("people.csv"), dir.Join("depts.csv")))
	assert.Equal(t, code, exitUsage)

	code = run(append(base, "-on", "id", dir.Join("people.csv"), dir.Join("nope.csv")))
	assert.Equal(t, code, exitError)
}
