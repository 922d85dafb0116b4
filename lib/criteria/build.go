package criteria

import (
	"git.sr.ht/~kanr/smartfolder/lib/log"
	"git.sr.ht/~kanr/smartfolder/lib/predicate"
	"git.sr.ht/~kanr/smartfolder/models"
)

// Compiler converts criteria trees to and from native predicate
// expressions. It holds no state beyond the diagnostics sink, so a
// single Compiler may be shared freely.
type Compiler struct {
	log log.Logger
}

// New returns a Compiler reporting diagnostics to the given sink. A nil
// sink falls back to the package logger.
func New(logger log.Logger) *Compiler {
	if logger == nil {
		logger = log.NewLogger("criteria", 4)
	}
	return &Compiler{log: logger}
}

// Build compiles a criteria element into its native predicate form.
func (c *Compiler) Build(el models.CriteriaElement) predicate.Expr {
	switch el := el.(type) {
	case *models.Criteria:
		return c.buildLeaf(el)
	case *models.CriteriaTree:
		return c.buildTree(el)
	}
	c.log.Warnf("cannot build predicate for element of type %T", el)
	return nil
}

func (c *Compiler) buildLeaf(leaf *models.Criteria) predicate.Expr {
	op, ok := nativeOperators[leaf.Operator]
	if !ok {
		c.log.Warnf("operator %v has no native form, using equality",
			leaf.Operator)
		op = predicate.EqualTo
	}

	field := predicate.KeyPath(string(leaf.Field))
	var cmp *predicate.Comparison
	switch {
	case leaf.Field == models.FieldDate &&
		leaf.Operator == models.OpAfter && leaf.Value == "yesterday":
		// "after yesterday" and "equals today" are the same day;
		// prefer the equality form
		cmp = predicate.NewComparison(field, predicate.EqualTo,
			predicate.Constant("today"))
	case leaf.Operator == models.OpNotEqualTo &&
		(leaf.Value == "Yes" || leaf.Value == "No"):
		// boolean state has one canonical spelling: equality against
		// the opposite value
		opposite := "Yes"
		if leaf.Value == "Yes" {
			opposite = "No"
		}
		cmp = predicate.NewComparison(field, predicate.EqualTo,
			predicate.Constant(opposite))
	default:
		cmp = predicate.NewComparison(field, op,
			predicate.Constant(leaf.Value))
	}

	if leaf.Operator == models.OpContainsNot {
		// the only single-level NOT shape the editor understands
		return predicate.NewCompound(predicate.Not, cmp)
	}
	return cmp
}

func (c *Compiler) buildTree(tree *models.CriteriaTree) predicate.Expr {
	conn := predicate.And
	switch tree.Condition {
	case models.CondAll:
		conn = predicate.And
	case models.CondAny:
		conn = predicate.Or
	case models.CondNone:
		conn = predicate.Not
	default:
		c.log.Warnf("invalid condition %v, treating as all",
			tree.Condition)
	}

	children := make([]predicate.Expr, 0, len(tree.Elements))
	for _, el := range tree.Elements {
		if child := c.Build(el); child != nil {
			children = append(children, child)
		}
	}

	if tree.Condition == models.CondNone {
		// always NOT(OR(...)); the editor recognizes no other shape
		// for "none of"
		return predicate.NewCompound(predicate.Not,
			predicate.NewCompound(predicate.Or, children...))
	}
	return predicate.NewCompound(conn, children...)
}
