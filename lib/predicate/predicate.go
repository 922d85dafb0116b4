// Package predicate is the native comparison/compound expression
// representation shared with the predicate editor and the evaluation
// engine. The criteria compiler only ever constructs these nodes or
// introspects them; it never evaluates them.
package predicate

import (
	"fmt"
	"strings"
)

// ComparisonOperator relates the two operands of a Comparison.
type ComparisonOperator int

const (
	EqualTo ComparisonOperator = iota
	NotEqualTo
	LessThan
	GreaterThan
	LessThanOrEqualTo
	GreaterThanOrEqualTo
	Contains
)

func (o ComparisonOperator) String() string {
	switch o {
	case EqualTo:
		return "=="
	case NotEqualTo:
		return "!="
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case LessThanOrEqualTo:
		return "<="
	case GreaterThanOrEqualTo:
		return ">="
	case Contains:
		return "CONTAINS"
	}
	return "?"
}

// Connective joins the children of a Compound.
type Connective int

const (
	And Connective = iota
	Or
	Not
)

func (c Connective) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Not:
		return "NOT"
	}
	return "?"
}

// Expr is a node of the predicate object graph: either a Comparison or
// a Compound.
type Expr interface {
	fmt.Stringer
	expr()
}

// OperandKind discriminates the two operand forms.
type OperandKind int

const (
	// OperandKeyPath names an item property, e.g. a field.
	OperandKeyPath OperandKind = iota
	// OperandConstant is a literal string value.
	OperandConstant
)

// Operand is one side of a Comparison.
type Operand struct {
	Kind  OperandKind
	Value string
}

// KeyPath returns a property-reference operand.
func KeyPath(name string) Operand {
	return Operand{Kind: OperandKeyPath, Value: name}
}

// Constant returns a literal string operand.
func Constant(value string) Operand {
	return Operand{Kind: OperandConstant, Value: value}
}

func (o Operand) String() string {
	if o.Kind == OperandConstant {
		return fmt.Sprintf("%q", o.Value)
	}
	return o.Value
}

// Comparison relates a left and right operand with an operator.
type Comparison struct {
	Left     Operand
	Operator ComparisonOperator
	Right    Operand
}

// NewComparison constructs a field-against-constant comparison.
func NewComparison(left Operand, op ComparisonOperator, right Operand) *Comparison {
	return &Comparison{Left: left, Operator: op, Right: right}
}

func (c *Comparison) expr() {}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Operator, c.Right)
}

// Compound joins an ordered list of child expressions with a
// connective.
type Compound struct {
	Connective Connective
	Children   []Expr
}

// NewCompound constructs a compound expression over the given children.
func NewCompound(conn Connective, children ...Expr) *Compound {
	return &Compound{Connective: conn, Children: children}
}

func (c *Compound) expr() {}

func (c *Compound) String() string {
	parts := make([]string, len(c.Children))
	for i, child := range c.Children {
		parts[i] = child.String()
	}
	if c.Connective == Not {
		return fmt.Sprintf("NOT (%s)", strings.Join(parts, " OR "))
	}
	return fmt.Sprintf("(%s)", strings.Join(parts,
		fmt.Sprintf(" %s ", c.Connective)))
}
