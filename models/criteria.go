package models

import "strings"

// Field identifies an article property a criteria clause filters on.
// Parsed trees may carry field names outside this vocabulary; the
// compilers treat those as unknown and degrade to equality matching.
type Field string

const (
	FieldFolder       Field = "Folder"
	FieldDate         Field = "Date"
	FieldSubject      Field = "Subject"
	FieldAuthor       Field = "Author"
	FieldText         Field = "Text"
	FieldRead         Field = "Read"
	FieldFlagged      Field = "Flagged"
	FieldHasEnclosure Field = "HasEnclosure"
	FieldDeleted      Field = "Deleted"
)

// Known reports whether the field belongs to the supported vocabulary.
func (f Field) Known() bool {
	switch f {
	case FieldFolder, FieldDate, FieldSubject, FieldAuthor, FieldText,
		FieldRead, FieldFlagged, FieldHasEnclosure, FieldDeleted:
		return true
	}
	return false
}

// Operator is a criteria comparison operator. Not every operator is
// valid for every field; see criteria.AllowedOperators.
type Operator int

const (
	OpEqualTo Operator = iota
	OpNotEqualTo
	OpLessThan
	OpGreaterThan
	OpLessThanOrEqualTo
	OpGreaterThanOrEqualTo
	OpContains
	OpContainsNot
	OpBefore
	OpAfter
	OpOnOrBefore
	OpOnOrAfter
	OpUnder
	OpNotUnder
)

var operatorNames = map[Operator]string{
	OpEqualTo:              "is equal to",
	OpNotEqualTo:           "is not equal to",
	OpLessThan:             "is less than",
	OpGreaterThan:          "is greater than",
	OpLessThanOrEqualTo:    "is less than or equal to",
	OpGreaterThanOrEqualTo: "is greater than or equal to",
	OpContains:             "contains",
	OpContainsNot:          "does not contain",
	OpBefore:               "is before",
	OpAfter:                "is after",
	OpOnOrBefore:           "is on or before",
	OpOnOrAfter:            "is on or after",
	OpUnder:                "is under",
	OpNotUnder:             "is not under",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "unknown operator"
}

// Condition is the logical connective of a composite criteria clause.
type Condition int

const (
	CondInvalid Condition = iota
	CondAll
	CondAny
	CondNone
)

func (c Condition) String() string {
	switch c {
	case CondAll:
		return "all"
	case CondAny:
		return "any"
	case CondNone:
		return "none"
	}
	return "invalid"
}

// ParseCondition parses the persisted form of a condition. Anything
// unrecognized yields CondInvalid; the compilers later treat that as
// CondAll rather than failing.
func ParseCondition(s string) Condition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return CondAll
	case "any":
		return CondAny
	case "none":
		return CondNone
	}
	return CondInvalid
}

// CriteriaElement is either a single Criteria clause or a nested
// CriteriaTree. Consumers dispatch with a type switch; the two concrete
// types are the only implementations.
type CriteriaElement interface {
	criteriaElement()
}

// Criteria is a leaf filter clause: field, operator, value. For date
// fields the value is either an absolute keyword ("today", "yesterday")
// or a relative magnitude+unit pair ("3 days"); see the parse package.
type Criteria struct {
	Field    Field
	Operator Operator
	Value    string
}

func (*Criteria) criteriaElement() {}

// CriteriaTree is a composite filter clause: a condition over an
// ordered list of child clauses. Order is display order only.
type CriteriaTree struct {
	Condition Condition
	Elements  []CriteriaElement
}

func (*CriteriaTree) criteriaElement() {}
