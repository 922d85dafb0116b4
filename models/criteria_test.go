package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.sr.ht/~kanr/smartfolder/models"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		s    string
		want models.Condition
	}{
		{"all", models.CondAll},
		{"any", models.CondAny},
		{"none", models.CondNone},
		{"ALL", models.CondAll},
		{" any ", models.CondAny},
		{"some", models.CondInvalid},
		{"", models.CondInvalid},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, models.ParseCondition(test.s),
			"ParseCondition(%q)", test.s)
	}
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "all", models.CondAll.String())
	assert.Equal(t, "any", models.CondAny.String())
	assert.Equal(t, "none", models.CondNone.String())
	assert.Equal(t, "invalid", models.CondInvalid.String())

	// string form survives a round trip for the valid conditions
	for _, cond := range []models.Condition{
		models.CondAll, models.CondAny, models.CondNone,
	} {
		assert.Equal(t, cond, models.ParseCondition(cond.String()))
	}
}

func TestFieldKnown(t *testing.T) {
	for _, f := range []models.Field{
		models.FieldFolder, models.FieldDate, models.FieldSubject,
		models.FieldAuthor, models.FieldText, models.FieldRead,
		models.FieldFlagged, models.FieldHasEnclosure,
		models.FieldDeleted,
	} {
		assert.True(t, f.Known(), "field %q", f)
	}
	assert.False(t, models.Field("Bogus").Known())
	assert.False(t, models.Field("").Known())
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "contains", models.OpContains.String())
	assert.Equal(t, "is not equal to", models.OpNotEqualTo.String())
	assert.Equal(t, "unknown operator", models.Operator(99).String())
}
