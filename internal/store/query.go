// Package store is the narrow client through which the portal reads and
// partially updates records in the relational store. Callers address logical
// collections and camelCase field names; the client maps them onto tables and
// columns and refuses anything outside that mapping.
package store

import (
	"context"
)

//go:generate mockgen -source=query.go -destination=../mocks/store_mocks.go -package=mocks

// Operator is a filter predicate
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Filter restricts a query to records whose Field satisfies Op against Value
type Filter struct {
	Field string
	Op    Operator
	Value interface{}
}

// Eq matches records where field equals value
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// Gte matches records where field is greater than or equal to value
func Gte(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpGte, Value: value}
}

// Lte matches records where field is less than or equal to value
func Lte(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpLte, Value: value}
}

// Order sorts a query by a single field
type Order struct {
	Field     string
	Ascending bool
}

// Asc orders by field ascending
func Asc(field string) *Order {
	return &Order{Field: field, Ascending: true}
}

// Desc orders by field descending
func Desc(field string) *Order {
	return &Order{Field: field, Ascending: false}
}

// Query describes one logical read. Joins names related collections that are
// fetched together with the matching records.
type Query struct {
	Collection string
	Filters    []Filter
	Order      *Order
	Joins      []string
}

// Client executes reads and partial updates against named collections.
//
// Query fills dest (a pointer to a slice of the collection's model) with zero or
// more records; no match is not an error. QueryOne fills dest (a pointer to the
// model) and fails unless exactly one record matches. Update applies fields to
// every record matching filters and fails when none match.
type Client interface {
	Query(ctx context.Context, q Query, dest interface{}) error
	QueryOne(ctx context.Context, q Query, dest interface{}) error
	Update(ctx context.Context, collection string, filters []Filter, fields map[string]interface{}) error
}
