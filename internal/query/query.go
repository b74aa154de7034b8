// Package query turns list-endpoint query strings into validated SQL
// fragments and pagination metadata. Column and field names are only ever
// taken from a resource's declared allowlists; client values always travel
// as bind arguments.
package query

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Default pagination values.
const (
	DefaultLimit = 5
	MaxLimit     = 100
)

const dateLayout = "02-01-2006"

// ColumnType drives how a filter value is bound for a column. Columns
// absent from a resource's Types map bind as text.
type ColumnType int

const (
	String ColumnType = iota
	Int
	Date
)

// Resource declares what query shaping may touch for one entity collection.
// Columns is the filter/sort allowlist (actual table columns); Fields is the
// output-selection allowlist (columns plus nested relation names); Types
// maps non-text columns to their bind type.
type Resource struct {
	Name    string
	Columns []string
	Fields  []string
	Types   map[string]ColumnType
}

func (r Resource) hasColumn(name string) bool {
	for _, c := range r.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (r Resource) hasField(name string) bool {
	for _, f := range r.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Error describes a malformed query parameter. Handlers map it to a 400
// response carrying the message.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Filter is a single validated filter expression.
type Filter struct {
	Column string
	Op     string
	Value  any
}

var filterOps = map[string]string{
	"eq":  "=",
	"ne":  "<>",
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// Params is the validated shape of a list request.
type Params struct {
	Fields   []string
	Sort     string // validated column name, "" when the client sent none
	SortDesc bool
	Filters  []Filter
	Page     int
	Limit    int

	resource Resource
	path     string
	rawQuery string
}

// Parse validates the query string of r against the resource's allowlists.
// Any returned error is a client error.
func Parse(r *http.Request, res Resource, defaultLimit, maxLimit int) (*Params, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}

	p := &Params{
		Page:     1,
		Limit:    defaultLimit,
		resource: res,
		path:     r.URL.Path,
		rawQuery: r.URL.RawQuery,
	}
	q := r.URL.Query()

	if raw := q.Get("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if !res.hasField(f) {
				return nil, errf("unknown field: %s", f)
			}
			p.Fields = append(p.Fields, f)
		}
	}

	if raw := q.Get("sort"); raw != "" {
		col := raw
		if strings.HasPrefix(raw, "-") {
			col = raw[1:]
			p.SortDesc = true
		}
		if !res.hasColumn(col) {
			return nil, errf("unknown sort field: %s", col)
		}
		p.Sort = col
	}

	for _, raw := range q["filter"] {
		f, err := parseFilter(raw, res)
		if err != nil {
			return nil, err
		}
		p.Filters = append(p.Filters, f)
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, errf("page must be a positive integer")
		}
		p.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, errf("limit must be a positive integer")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		p.Limit = limit
	}

	return p, nil
}

// parseFilter accepts "column:value" (equality) and "column:op:value".
func parseFilter(raw string, res Resource) (Filter, error) {
	parts := strings.SplitN(raw, ":", 3)

	var col, op, val string
	switch len(parts) {
	case 2:
		col, op, val = parts[0], "eq", parts[1]
	case 3:
		col, op, val = parts[0], parts[1], parts[2]
		if _, ok := filterOps[op]; !ok {
			return Filter{}, errf("unknown filter operator: %s", op)
		}
	default:
		return Filter{}, errf("malformed filter expression: %s", raw)
	}

	if !res.hasColumn(col) {
		return Filter{}, errf("unknown filter field: %s", col)
	}

	value, err := typedValue(res, col, val)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Column: col, Op: op, Value: value}, nil
}

// typedValue converts the raw filter value to the column's declared bind
// type, so a digits-only value still binds as text against a text column.
// A value the column type cannot hold is a client error.
func typedValue(res Resource, col, raw string) (any, error) {
	switch res.Types[col] {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errf("filter value for %s must be an integer: %s", col, raw)
		}
		return n, nil
	case Date:
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errf("filter value for %s must be a DD-MM-YYYY date: %s", col, raw)
		}
		return d, nil
	}
	return raw, nil
}

// WhereClause renders the AND-composed filter expressions starting at bind
// position startArg. Returns the empty string when no filters were given.
func (p *Params) WhereClause(startArg int) (string, []any) {
	if len(p.Filters) == 0 {
		return "", nil
	}

	conds := make([]string, 0, len(p.Filters))
	args := make([]any, 0, len(p.Filters))
	for i, f := range p.Filters {
		conds = append(conds, fmt.Sprintf("%s.%s %s $%d", p.resource.Name, f.Column, filterOps[f.Op], startArg+i))
		args = append(args, f.Value)
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// OrderClause renders the sort expression; ordering defaults to the primary
// key so pages are stable.
func (p *Params) OrderClause() string {
	col := p.Sort
	if col == "" {
		col = "id"
	}
	dir := "ASC"
	if p.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s.%s %s", p.resource.Name, col, dir)
}

// LimitClause renders the page window starting at bind position startArg.
func (p *Params) LimitClause(startArg int) (string, []any) {
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", startArg, startArg+1),
		[]any{p.Limit, (p.Page - 1) * p.Limit}
}
