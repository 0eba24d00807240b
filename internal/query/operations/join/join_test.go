package join_test

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/csvjoin/internal/domain/data"
	derrors "github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/query/operations/join"
	"github.com/leengari/csvjoin/internal/query/operations/testutil"
)

func TestCheck(t *testing.T) {
	a := data.RowFromPairs("id", "1", "Region", "eu", "n", "07")
	b := data.RowFromPairs("ID", "1", "region", "eu", "n", "7")

	ok, err := join.Check(a, b, data.NewJoinSpec("id", "REGION"))
	assert.NilError(t, err)
	assert.Check(t, ok, "column names compare case-insensitively")

	// No numeric coercion
	ok, err = join.Check(a, b, data.NewJoinSpec("n"))
	assert.NilError(t, err)
	assert.Check(t, !ok)

	// No trimming
	ok, err = join.Check(data.RowFromPairs("id", "1 "), data.RowFromPairs("id", "1"), data.NewJoinSpec("id"))
	assert.NilError(t, err)
	assert.Check(t, !ok)
}

func TestCheck_ShortCircuits(t *testing.T) {
	a := data.RowFromPairs("id", "1")
	b := data.RowFromPairs("id", "2")

	// "missing" would fail the lookup, but the first column already mismatches
	ok, err := join.Check(a, b, data.NewJoinSpec("id", "missing"))
	assert.NilError(t, err)
	assert.Check(t, !ok)

	_, err = join.Check(a, data.RowFromPairs("id", "1"), data.NewJoinSpec("id", "missing"))
	assert.Check(t, errors.Is(err, derrors.ErrMissingColumn))
}

// TestInnerJoin_Scenario covers the basic id/name/dept example
func TestInnerJoin_Scenario(t *testing.T) {
	people := testutil.CreatePeopleTable()
	depts := testutil.CreateDeptTable()

	result, err := join.Execute(people, depts, data.NewJoinSpec("id"), join.TypeInner)
	assert.NilError(t, err)

	testutil.AssertRowCount(t, len(result.Rows), 1, "inner join")
	assert.DeepEqual(t, result.Columns, []string{"id", "name", "dept"})
	assert.DeepEqual(t, result.Rows[0].Columns(), []string{"id", "name", "dept"})
	assert.DeepEqual(t, testutil.RowMaps(result.Rows), []map[string]string{
		{"id": "1", "name": "x", "dept": "eng"},
	})
}

// TestLeftJoin_Scenario checks unmatched left rows are passed through untouched
func TestLeftJoin_Scenario(t *testing.T) {
	people := testutil.CreatePeopleTable()
	depts := testutil.CreateDeptTable()

	result, err := join.Execute(people, depts, data.NewJoinSpec("id"), join.TypeLeft)
	assert.NilError(t, err)

	testutil.AssertRowCount(t, len(result.Rows), 2, "left join")
	testutil.AssertValue(t, result.Rows[0], "dept", "eng", "matched row")
	testutil.AssertColumnNotExists(t, result.Rows[1], "dept", "unmatched row")
	assert.DeepEqual(t, result.Columns, []string{"id", "name", "dept"})

	// Inputs are not modified
	testutil.AssertColumnNotExists(t, people.Rows[0], "dept", "source row")
}

func TestRightJoin_IsLeftJoinSwapped(t *testing.T) {
	people := testutil.CreatePeopleTable()
	depts := testutil.CreateDeptTable()
	spec := data.NewJoinSpec("id")

	right, err := join.Execute(people, depts, spec, join.TypeRight)
	assert.NilError(t, err)
	left, err := join.Execute(depts, people, spec, join.TypeLeft)
	assert.NilError(t, err)

	assert.DeepEqual(t, right.Columns, left.Columns)
	assert.DeepEqual(t, testutil.RowMaps(right.Rows), testutil.RowMaps(left.Rows))

	assert.DeepEqual(t, right.Columns, []string{"id", "dept", "name"})
	testutil.AssertValue(t, right.Rows[0], "name", "x", "matched right row")
	testutil.AssertColumnNotExists(t, right.Rows[1], "name", "unmatched right row")
}

// TestJoin_MatchOrder checks pairs come out left-major, right-minor
func TestJoin_MatchOrder(t *testing.T) {
	left := testutil.CreateTestTable("l", []string{"k", "l"},
		[]string{"a", "l1"},
		[]string{"b", "l2"},
		[]string{"a", "l3"},
	)
	right := testutil.CreateTestTable("r", []string{"k", "r"},
		[]string{"a", "r1"},
		[]string{"c", "r2"},
		[]string{"a", "r3"},
		[]string{"b", "r4"},
	)

	res, err := join.Join(left, right, data.NewJoinSpec("k"))
	assert.NilError(t, err)

	var pairs []string
	for _, m := range res.Matches {
		l, _ := m.Get("l")
		r, _ := m.Get("r")
		pairs = append(pairs, l+"-"+r)
	}
	assert.DeepEqual(t, pairs, []string{"l1-r1", "l1-r3", "l2-r4", "l3-r1", "l3-r3"})
}

// TestJoin_LastMatchWins pins the augmented table behavior when one left
// row matches several right rows
func TestJoin_LastMatchWins(t *testing.T) {
	users := testutil.CreateTestTable("users", []string{"id", "username"},
		[]string{"1", "alice"},
		[]string{"2", "bob"},
		[]string{"3", "charlie"},
	)
	orders := testutil.CreateOrdersTable()

	res, err := join.Join(users, orders, data.NewJoinSpec("id"))
	assert.NilError(t, err)

	// Every pair is kept in the match list
	testutil.AssertRowCount(t, len(res.Matches), 3, "matches")
	testutil.AssertValue(t, res.Matches[0], "product", "Laptop", "first alice match")
	testutil.AssertValue(t, res.Matches[1], "product", "Mouse", "second alice match")

	// The augmented left row only reflects the last match
	testutil.AssertRowCount(t, len(res.Left.Rows), 3, "augmented")
	testutil.AssertValue(t, res.Left.Rows[0], "product", "Mouse", "alice")
	testutil.AssertValue(t, res.Left.Rows[0], "order_id", "11", "alice")
	testutil.AssertValue(t, res.Left.Rows[1], "product", "Keyboard", "bob")
	testutil.AssertColumnNotExists(t, res.Left.Rows[2], "product", "charlie")

	assert.DeepEqual(t, res.Columns, []string{"id", "username", "order_id", "ID", "product"})
}

func TestJoin_RightWinsOnConflict(t *testing.T) {
	a := testutil.CreateTestTable("a", []string{"id", "note"}, []string{"1", "from-a"})
	b := testutil.CreateTestTable("b", []string{"id", "note"}, []string{"1", "from-b"})

	inner, err := join.Execute(a, b, data.NewJoinSpec("id"), join.TypeInner)
	assert.NilError(t, err)
	testutil.AssertValue(t, inner.Rows[0], "note", "from-b", "inner")
	assert.DeepEqual(t, inner.Columns, []string{"id", "note"})

	right, err := join.Execute(a, b, data.NewJoinSpec("id"), join.TypeRight)
	assert.NilError(t, err)
	testutil.AssertValue(t, right.Rows[0], "note", "from-a", "right")
}

func TestJoin_MultipleColumns(t *testing.T) {
	a := testutil.CreateTestTable("a", []string{"city", "year", "pop"},
		[]string{"pune", "2020", "1"},
		[]string{"pune", "2021", "2"},
	)
	b := testutil.CreateTestTable("b", []string{"CITY", "Year", "gdp"},
		[]string{"pune", "2021", "9"},
		[]string{"mumbai", "2021", "8"},
	)

	spec := data.JoinSpec{}.Add("place", "city").Add("when", "year")
	res, err := join.Execute(a, b, spec, join.TypeInner)
	assert.NilError(t, err)

	testutil.AssertRowCount(t, len(res.Rows), 1, "conjunctive match")
	testutil.AssertValue(t, res.Rows[0], "pop", "2", "matched row")
	testutil.AssertValue(t, res.Rows[0], "gdp", "9", "matched row")
}

func TestJoin_Errors(t *testing.T) {
	people := testutil.CreatePeopleTable()
	depts := testutil.CreateDeptTable()

	_, err := join.Join(people, depts, nil)
	assert.Check(t, is.ErrorIs(err, derrors.ErrEmptyJoinSpec))

	_, err = join.Join(people, depts, data.NewJoinSpec("name"))
	assert.Check(t, is.ErrorIs(err, derrors.ErrMissingColumn))
	var mce *derrors.MissingColumnError
	assert.Assert(t, errors.As(err, &mce))
	assert.Equal(t, mce.Table, "depts")
	assert.Equal(t, mce.Column, "name")

	noMatch := testutil.CreateTestTable("none", []string{"id", "dept"}, []string{"9", "hr"})
	for _, jt := range []join.Type{join.TypeInner, join.TypeLeft, join.TypeRight} {
		_, err = join.Execute(people, noMatch, data.NewJoinSpec("id"), jt)
		assert.Check(t, is.ErrorIs(err, derrors.ErrNoMatch), jt.String())
	}

	_, err = join.Join(nil, depts, data.NewJoinSpec("id"))
	assert.ErrorContains(t, err, "left table is nil")

	_, err = join.Execute(people, depts, data.NewJoinSpec("id"), join.Type(42))
	assert.ErrorContains(t, err, "unknown JOIN type")
}

func TestParseType(t *testing.T) {
	cases := map[string]join.Type{
		"inner":      join.TypeInner,
		"LEFT":       join.TypeLeft,
		"right":      join.TypeRight,
		"left-outer": join.TypeLeft,
	}
	for in, want := range cases {
		got, err := join.ParseType(in)
		assert.NilError(t, err)
		assert.Equal(t, got, want, in)
	}

	_, err := join.ParseType("cross")
	assert.ErrorContains(t, err, "unknown join type")
	assert.Equal(t, join.TypeRight.String(), "RIGHT JOIN")
}
