// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityType is the predicate function for entitytype builders.
type EntityType func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// FacetType is the predicate function for facettype builders.
type FacetType func(*sql.Selector)

// FacetValue is the predicate function for facetvalue builders.
type FacetValue func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Widget is the predicate function for widget builders.
type Widget func(*sql.Selector)
