package predicate_test

import (
	"testing"

	"git.sr.ht/~kanr/smartfolder/lib/predicate"
)

func TestString(t *testing.T) {
	contains := predicate.NewComparison(
		predicate.KeyPath("Subject"), predicate.Contains,
		predicate.Constant("go"))
	unread := predicate.NewComparison(
		predicate.KeyPath("Read"), predicate.EqualTo,
		predicate.Constant("No"))

	tests := []struct {
		expr predicate.Expr
		want string
	}{
		{contains, `Subject CONTAINS "go"`},
		{unread, `Read == "No"`},
		{
			predicate.NewCompound(predicate.And, contains, unread),
			`(Subject CONTAINS "go" AND Read == "No")`,
		},
		{
			predicate.NewCompound(predicate.Or, contains, unread),
			`(Subject CONTAINS "go" OR Read == "No")`,
		},
		{
			predicate.NewCompound(predicate.Not, contains),
			`NOT (Subject CONTAINS "go")`,
		},
	}
	for _, test := range tests {
		if got := test.expr.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
