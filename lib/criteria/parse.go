package criteria

import (
	"git.sr.ht/~kanr/smartfolder/lib/predicate"
	"git.sr.ht/~kanr/smartfolder/models"
)

// subKind is the shape classification of a subpredicate, decided by
// lookahead before recursing.
type subKind int

const (
	subUnrecognized subKind = iota
	subLeaf
	subContainsNot
	subTree
)

// Parse converts a native compound expression back into a criteria
// tree. It returns nil when the expression is not a compound or its
// subpredicate list cannot be determined. Corrupted subpredicates are
// logged and dropped; the remaining children still form a usable tree.
func (c *Compiler) Parse(expr predicate.Expr) *models.CriteriaTree {
	compound, ok := expr.(*predicate.Compound)
	if !ok {
		c.log.Warnf("cannot parse criteria from %T, expected a compound",
			expr)
		return nil
	}

	var cond models.Condition
	switch compound.Connective {
	case predicate.And:
		cond = models.CondAll
	case predicate.Or:
		cond = models.CondAny
	case predicate.Not:
		cond = models.CondNone
	default:
		cond = models.CondInvalid
	}

	subs, ok := c.subpredicates(compound)
	if !ok {
		return nil
	}

	tree := &models.CriteriaTree{Condition: cond}
	for _, sub := range subs {
		switch classify(sub) {
		case subLeaf:
			leaf := c.parseLeaf(sub.(*predicate.Comparison), false)
			tree.Elements = append(tree.Elements, leaf)
		case subContainsNot:
			inner := sub.(*predicate.Compound).Children[0]
			leaf := c.parseLeaf(inner.(*predicate.Comparison), true)
			tree.Elements = append(tree.Elements, leaf)
		case subTree:
			if nested := c.Parse(sub); nested != nil {
				tree.Elements = append(tree.Elements, nested)
			}
		default:
			c.log.Warnf("subpredicate is corrupted, cannot be converted: %v",
				sub)
		}
	}
	return tree
}

// subpredicates extracts the child list to parse. A "none of" tree is
// stored as NOT(OR(...)), so a NOT compound must wrap exactly one OR
// compound whose children are the real subpredicates. Any other NOT
// shape is malformed.
func (c *Compiler) subpredicates(compound *predicate.Compound) ([]predicate.Expr, bool) {
	if compound.Connective != predicate.Not {
		return compound.Children, true
	}
	if len(compound.Children) == 1 {
		if inner, ok := compound.Children[0].(*predicate.Compound); ok &&
			inner.Connective == predicate.Or {
			return inner.Children, true
		}
	}
	c.log.Warnf("cannot determine subpredicates of %v", compound)
	return nil, false
}

// classify decides, by lookahead only, whether a subpredicate is a
// plain leaf, the NOT(x CONTAINS y) leaf shape, a nested subtree, or
// nothing we recognize.
func classify(expr predicate.Expr) subKind {
	switch expr := expr.(type) {
	case *predicate.Comparison:
		return subLeaf
	case *predicate.Compound:
		if expr.Connective == predicate.Not && len(expr.Children) == 1 {
			if cmp, ok := expr.Children[0].(*predicate.Comparison); ok &&
				cmp.Operator == predicate.Contains {
				return subContainsNot
			}
		}
		return subTree
	}
	return subUnrecognized
}

// parseLeaf decodes one comparison into a criteria clause. notContains
// is set when the caller unwrapped the NOT(x CONTAINS y) shape. The
// operator is validated against the per-field table; anything invalid
// falls back to equality with a warning, never a failure.
func (c *Compiler) parseLeaf(cmp *predicate.Comparison, notContains bool) *models.Criteria {
	field := models.Field(cmp.Left.Value)
	value := cmp.Right.Value

	class := classOf(field)
	if class == classUnknown {
		c.log.Warnf("unknown field %q", field)
	}

	op, ok := parseOperators[class][cmp.Operator]
	if !ok {
		c.log.Warnf("operator %v is not valid for field %q, using equality",
			cmp.Operator, field)
		op = models.OpEqualTo
	} else if op == models.OpContains && notContains {
		op = models.OpContainsNot
	}

	return &models.Criteria{Field: field, Operator: op, Value: value}
}
