// Package criteria compiles between the canonical smart-folder
// criteria tree and the native predicate representation. Both
// directions are pure recursive transformations; recoverable problems
// are reported to the injected diagnostics sink and substituted, never
// returned as errors.
package criteria

import (
	"git.sr.ht/~kanr/smartfolder/lib/predicate"
	"git.sr.ht/~kanr/smartfolder/models"
)

// fieldClass groups fields that share an operator vocabulary.
type fieldClass int

const (
	classUnknown fieldClass = iota
	classFolder
	classText
	classDate
	classBool
)

func classOf(f models.Field) fieldClass {
	switch f {
	case models.FieldFolder:
		return classFolder
	case models.FieldSubject, models.FieldAuthor, models.FieldText:
		return classText
	case models.FieldDate:
		return classDate
	case models.FieldRead, models.FieldFlagged,
		models.FieldHasEnclosure, models.FieldDeleted:
		return classBool
	}
	return classUnknown
}

// nativeOperators maps every criteria operator to the comparison
// operator it compiles to. containsNot maps to a plain Contains; the
// negation is a NOT wrapper added by the build step.
var nativeOperators = map[models.Operator]predicate.ComparisonOperator{
	models.OpEqualTo:              predicate.EqualTo,
	models.OpNotEqualTo:           predicate.NotEqualTo,
	models.OpLessThan:             predicate.LessThan,
	models.OpGreaterThan:          predicate.GreaterThan,
	models.OpLessThanOrEqualTo:    predicate.LessThanOrEqualTo,
	models.OpGreaterThanOrEqualTo: predicate.GreaterThanOrEqualTo,
	models.OpContains:             predicate.Contains,
	models.OpContainsNot:          predicate.Contains,
	models.OpBefore:               predicate.LessThan,
	models.OpAfter:                predicate.GreaterThan,
	models.OpOnOrBefore:           predicate.LessThanOrEqualTo,
	models.OpOnOrAfter:            predicate.GreaterThanOrEqualTo,
	models.OpUnder:                predicate.LessThan,
	models.OpNotUnder:             predicate.GreaterThanOrEqualTo,
}

// parseOperators is the parse-direction half of the validity table:
// which comparison operators each field class accepts, and the criteria
// operator each one decodes to. Contains decodes to containsNot instead
// when the caller saw the NOT wrapper (see parse.go).
var parseOperators = map[fieldClass]map[predicate.ComparisonOperator]models.Operator{
	classFolder: {
		predicate.EqualTo:    models.OpEqualTo,
		predicate.NotEqualTo: models.OpNotEqualTo,
	},
	classText: {
		predicate.Contains:   models.OpContains,
		predicate.NotEqualTo: models.OpNotEqualTo,
		predicate.EqualTo:    models.OpEqualTo,
	},
	classDate: {
		predicate.LessThan:             models.OpBefore,
		predicate.LessThanOrEqualTo:    models.OpOnOrBefore,
		predicate.GreaterThan:          models.OpAfter,
		predicate.GreaterThanOrEqualTo: models.OpOnOrAfter,
		predicate.NotEqualTo:           models.OpNotEqualTo,
		predicate.EqualTo:              models.OpEqualTo,
	},
	classBool: {
		predicate.EqualTo:    models.OpEqualTo,
		predicate.NotEqualTo: models.OpNotEqualTo,
	},
	classUnknown: {
		predicate.EqualTo: models.OpEqualTo,
	},
}

// allowedOperators is the authoring-direction half of the table: the
// criteria operators each field class supports. The criteria editor and
// the SQL compiler both consult this table so that in-memory and
// persisted-store filtering cannot drift apart.
var allowedOperators = map[fieldClass][]models.Operator{
	classFolder: {
		models.OpEqualTo, models.OpNotEqualTo,
		models.OpUnder, models.OpNotUnder,
	},
	classText: {
		models.OpContains, models.OpContainsNot,
		models.OpEqualTo, models.OpNotEqualTo,
	},
	classDate: {
		models.OpEqualTo, models.OpNotEqualTo,
		models.OpBefore, models.OpAfter,
		models.OpOnOrBefore, models.OpOnOrAfter,
	},
	classBool: {
		models.OpEqualTo, models.OpNotEqualTo,
	},
	classUnknown: {
		models.OpEqualTo,
	},
}

// AllowedOperators returns the criteria operators valid for a field, in
// presentation order.
func AllowedOperators(f models.Field) []models.Operator {
	ops := allowedOperators[classOf(f)]
	out := make([]models.Operator, len(ops))
	copy(out, ops)
	return out
}

// OperatorAllowed reports whether op is valid for field f.
func OperatorAllowed(f models.Field, op models.Operator) bool {
	for _, allowed := range allowedOperators[classOf(f)] {
		if allowed == op {
			return true
		}
	}
	return false
}
