// Package pipeline composes multi-stage aggregation queries against the
// document store. A Pipeline is an ordered stage list (match, lookup,
// computed fields, projection, sort, paginate) rendered into a single
// SurrealQL SELECT. Keeping the rendering here centralizes the projection
// allow-list discipline: a field that is not projected or looked up never
// appears in a query, so credential fields cannot leak into view models.
package pipeline

import (
	"fmt"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	defaultSortField = "created_at"
)

type Pipeline struct {
	table      string
	conditions []string
	fields     []string
	vars       map[string]interface{}
	sortField  string
	sortDesc   bool
	page       int
	limit      int
}

func From(table string) *Pipeline {
	return &Pipeline{
		table:     table,
		vars:      make(map[string]interface{}),
		sortField: defaultSortField,
		sortDesc:  true,
		page:      DefaultPage,
		limit:     DefaultLimit,
	}
}

// Match appends a filter condition. Conditions are ANDed together; bind
// values referenced by the condition are registered with Bind.
func (p *Pipeline) Match(condition string) *Pipeline {
	p.conditions = append(p.conditions, condition)
	return p
}

func (p *Pipeline) Bind(name string, value interface{}) *Pipeline {
	p.vars[name] = value
	return p
}

// Lookup embeds the result of a correlated subquery under alias. The
// subquery may reference the outer record via $parent and must itself
// project only the fields the view model needs.
func (p *Pipeline) Lookup(alias, subquery string) *Pipeline {
	p.fields = append(p.fields, fmt.Sprintf("(%s) AS %s", subquery, alias))
	return p
}

// AddField derives a scalar from an expression, such as an array::len
// count over a looked-up collection or a principal-membership boolean.
func (p *Pipeline) AddField(expr, alias string) *Pipeline {
	p.fields = append(p.fields, fmt.Sprintf("%s AS %s", expr, alias))
	return p
}

// Project sets the allow-list of plain fields returned. Anything not
// projected or added via Lookup/AddField is absent from the output.
func (p *Pipeline) Project(fields ...string) *Pipeline {
	p.fields = append(p.fields, fields...)
	return p
}

func (p *Pipeline) Sort(field string, desc bool) *Pipeline {
	if field != "" {
		p.sortField = field
	}
	p.sortDesc = desc
	return p
}

// Paginate validates and applies 1-based pagination. Out-of-range values
// fall back to defaults and the page size is capped to bound query cost.
func (p *Pipeline) Paginate(page, limit int) *Pipeline {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	p.page = page
	p.limit = limit
	return p
}

// SelectQuery renders the pipeline in fixed stage order: match, lookup and
// computed fields, projection, sort (record id tiebreak for stable
// pagination), paginate.
func (p *Pipeline) SelectQuery() string {
	var b strings.Builder

	b.WriteString("SELECT ")
	if len(p.fields) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(p.fields, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(p.table)

	p.writeWhere(&b)

	direction := "ASC"
	if p.sortDesc {
		direction = "DESC"
	}
	fmt.Fprintf(&b, " ORDER BY %s %s", p.sortField, direction)
	if p.sortField != "id" {
		b.WriteString(", id ASC")
	}

	b.WriteString(" LIMIT $__limit START $__start")

	return b.String()
}

// CountQuery renders the matching-rows count for the same filters.
func (p *Pipeline) CountQuery() string {
	var b strings.Builder
	b.WriteString("SELECT count() AS total FROM ")
	b.WriteString(p.table)
	p.writeWhere(&b)
	b.WriteString(" GROUP ALL")
	return b.String()
}

func (p *Pipeline) writeWhere(b *strings.Builder) {
	if len(p.conditions) == 0 {
		return
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(p.conditions, " AND "))
}

// Vars returns the bind variables for either rendered query, including the
// pagination window.
func (p *Pipeline) Vars() map[string]interface{} {
	vars := make(map[string]interface{}, len(p.vars)+2)
	for k, v := range p.vars {
		vars[k] = v
	}
	vars["__limit"] = p.limit
	vars["__start"] = (p.page - 1) * p.limit
	return vars
}

// SanitizeSort maps client-supplied sortBy/sortType onto an allow-listed
// sort key. Unknown fields fall back to creation time, newest first.
func SanitizeSort(sortBy, sortType string, allowed map[string]bool) (string, bool) {
	field := defaultSortField
	if sortBy != "" && allowed[sortBy] {
		field = sortBy
	}

	desc := true
	if sortType == "asc" {
		desc = false
	}
	return field, desc
}
