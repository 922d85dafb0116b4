// Package sqlfilter compiles smart-folder criteria trees into
// parameterized SQL WHERE clauses over the article table. It shares
// the per-field operator table with the predicate compiler so that
// in-memory and persisted-store filtering stay consistent.
package sqlfilter

import (
	"fmt"
	"strings"
	"time"

	"git.sr.ht/~kanr/smartfolder/lib/criteria"
	"git.sr.ht/~kanr/smartfolder/lib/log"
	"git.sr.ht/~kanr/smartfolder/lib/parse"
	"git.sr.ht/~kanr/smartfolder/models"
)

// columns maps criteria fields to article table columns.
var columns = map[models.Field]string{
	models.FieldFolder:       "folder",
	models.FieldAuthor:       "sender",
	models.FieldSubject:      "subject",
	models.FieldText:         "text",
	models.FieldDate:         "date",
	models.FieldRead:         "read_flag",
	models.FieldFlagged:      "marked_flag",
	models.FieldHasEnclosure: "hasenclosure_flag",
	models.FieldDeleted:      "deleted_flag",
}

// Compiler builds WHERE clauses against a fixed reference time, which
// anchors relative date values like "yesterday" or "3 days".
type Compiler struct {
	now time.Time
	log log.Logger
}

// New returns a Compiler anchored at the given reference time. A nil
// sink falls back to the package logger.
func New(now time.Time, logger log.Logger) *Compiler {
	if logger == nil {
		logger = log.NewLogger("sqlfilter", 4)
	}
	return &Compiler{now: now, log: logger}
}

// Where compiles a criteria tree into a WHERE clause body and its
// ?-placeholder arguments. It follows the same degrade-gracefully
// policy as the predicate compiler: invalid operators fall back to
// equality with a warning and unknown fields compile to a neutral
// term, so a damaged smart folder still yields a runnable query. An
// empty or nil tree compiles to "1".
func (c *Compiler) Where(tree *models.CriteriaTree) (string, []any) {
	if tree == nil || len(tree.Elements) == 0 {
		return "1", nil
	}
	return c.compound(tree)
}

func (c *Compiler) compound(tree *models.CriteriaTree) (string, []any) {
	connective := " AND "
	switch tree.Condition {
	case models.CondAll:
	case models.CondAny:
		connective = " OR "
	case models.CondNone:
	default:
		c.log.Warnf("invalid condition %v, treating as all",
			tree.Condition)
	}

	var clauses []string
	var args []any
	for _, el := range tree.Elements {
		var clause string
		var clauseArgs []any
		switch el := el.(type) {
		case *models.Criteria:
			clause, clauseArgs = c.leaf(el)
		case *models.CriteriaTree:
			clause, clauseArgs = c.compound(el)
		default:
			c.log.Warnf("cannot compile element of type %T", el)
			continue
		}
		clauses = append(clauses, clause)
		args = append(args, clauseArgs...)
	}
	if len(clauses) == 0 {
		return "1", nil
	}

	if tree.Condition == models.CondNone {
		return fmt.Sprintf("NOT (%s)",
			strings.Join(clauses, " OR ")), args
	}
	return fmt.Sprintf("(%s)", strings.Join(clauses, connective)), args
}

func (c *Compiler) leaf(leaf *models.Criteria) (string, []any) {
	col, known := columns[leaf.Field]
	if !known {
		c.log.Warnf("unknown field %q", leaf.Field)
		return "1", nil
	}

	op := leaf.Operator
	if !criteria.OperatorAllowed(leaf.Field, op) {
		c.log.Warnf("operator %v is not valid for field %q, using equality",
			op, leaf.Field)
		op = models.OpEqualTo
	}

	switch leaf.Field {
	case models.FieldDate:
		return c.dateClause(col, op, leaf.Value)
	case models.FieldRead, models.FieldFlagged,
		models.FieldHasEnclosure, models.FieldDeleted:
		return boolClause(col, op, leaf.Value)
	case models.FieldFolder:
		return folderClause(col, op, leaf.Value)
	}
	return textClause(col, op, leaf.Value)
}

func textClause(col string, op models.Operator, value string) (string, []any) {
	switch op {
	case models.OpContains:
		return col + " LIKE ?", []any{"%" + value + "%"}
	case models.OpContainsNot:
		return col + " NOT LIKE ?", []any{"%" + value + "%"}
	case models.OpNotEqualTo:
		return col + " <> ?", []any{value}
	}
	return col + " = ?", []any{value}
}

func boolClause(col string, op models.Operator, value string) (string, []any) {
	flag := 0
	if value == "Yes" {
		flag = 1
	}
	if op == models.OpNotEqualTo {
		return col + " <> ?", []any{flag}
	}
	return col + " = ?", []any{flag}
}

// folderClause matches folders by their slash-separated path. "under"
// matches the folder itself and everything beneath it.
func folderClause(col string, op models.Operator, value string) (string, []any) {
	prefix := strings.TrimSuffix(value, "/") + "/%"
	switch op {
	case models.OpNotEqualTo:
		return col + " <> ?", []any{value}
	case models.OpUnder:
		return fmt.Sprintf("(%s = ? OR %s LIKE ?)", col, col),
			[]any{value, prefix}
	case models.OpNotUnder:
		return fmt.Sprintf("NOT (%s = ? OR %s LIKE ?)", col, col),
			[]any{value, prefix}
	}
	return col + " = ?", []any{value}
}

// dateClause resolves the value to the [start, end) bounds of the day
// it names and compares against the article's unix timestamp.
func (c *Compiler) dateClause(col string, op models.Operator, value string) (string, []any) {
	start, end, ok := parse.ResolveDay(value, c.now)
	if !ok {
		c.log.Warnf("unrecognized date value %q, using today", value)
		start, end, _ = parse.ResolveDay("today", c.now)
	}
	switch op {
	case models.OpBefore:
		return col + " < ?", []any{start.Unix()}
	case models.OpAfter:
		return col + " >= ?", []any{end.Unix()}
	case models.OpOnOrBefore:
		return col + " < ?", []any{end.Unix()}
	case models.OpOnOrAfter:
		return col + " >= ?", []any{start.Unix()}
	case models.OpNotEqualTo:
		return fmt.Sprintf("NOT (%s >= ? AND %s < ?)", col, col),
			[]any{start.Unix(), end.Unix()}
	}
	return fmt.Sprintf("(%s >= ? AND %s < ?)", col, col),
		[]any{start.Unix(), end.Unix()}
}
