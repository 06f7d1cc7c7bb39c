// Package search narrows list views with free-text and exact-match predicates.
package search

import (
	"strings"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// All matches every category or status.
const All = "all"

// Query holds the predicates of a list view. Every predicate must hold for a record to match.
type Query struct {
	Text     string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

func (q *Query) Clean() {
	q.Text = core.CleanString(q.Text)
	q.Category = core.CleanString(q.Category)
	q.Status = core.CleanString(q.Status)
}

// Fields tells Filter where to look on a record of type T. A nil accessor makes its predicate match everything.
type Fields[T any] struct {
	Text     func(T) []string
	Category func(T) string
	Status   func(T) string
}

// Filter returns the records of items matching q, keeping their original order.
// Text is a case-insensitive substring match against any of the text fields.
func Filter[T any](items []T, q Query, flds Fields[T]) []T {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if text != "" && flds.Text != nil && !containsAny(flds.Text(item), text) {
			continue
		}
		if !exact(q.Category, flds.Category, item) || !exact(q.Status, flds.Status, item) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func containsAny(values []string, text string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), text) {
			return true
		}
	}
	return false
}

func exact[T any](want string, field func(T) string, item T) bool {
	want = strings.TrimSpace(want)
	if want == "" || want == All || field == nil {
		return true
	}
	return field(item) == want
}
