package repository

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ListOptions แปลง query string (select/sort/page/limit + filter operators)
// ให้กลายเป็น gorm query เดียว
type ListOptions struct {
	Select  []string
	Sort    []string // column or -column for descending
	Page    int
	Limit   int
	Filters []Filter
}

// Filter is one validated field comparison taken from the query string.
type Filter struct {
	Column string
	Op     string // =, >, >=, <, <=, IN
	Value  string
}

var filterOps = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
	"in":  "IN",
}

var reservedParams = map[string]bool{
	"select": true, "sort": true, "page": true, "limit": true,
}

// ParseListOptions reads the generic listing parameters. Field names are
// checked against the caller's column whitelist; anything unknown is
// silently dropped (never interpolated into SQL).
func ParseListOptions(q url.Values, allowed map[string]bool) ListOptions {
	opts := ListOptions{Page: 1, Limit: 25}

	if v := q.Get("select"); v != "" {
		for _, f := range strings.Split(v, ",") {
			if col := toSnake(strings.TrimSpace(f)); allowed[col] {
				opts.Select = append(opts.Select, col)
			}
		}
	}
	if v := q.Get("sort"); v != "" {
		for _, f := range strings.Split(v, ",") {
			f = strings.TrimSpace(f)
			desc := strings.HasPrefix(f, "-")
			col := toSnake(strings.TrimPrefix(f, "-"))
			if !allowed[col] {
				continue
			}
			if desc {
				col = "-" + col
			}
			opts.Sort = append(opts.Sort, col)
		}
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		opts.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 && n <= 100 {
		opts.Limit = n
	}

	for key, vals := range q {
		if reservedParams[key] || len(vals) == 0 {
			continue
		}
		field, op := key, "="
		// mongoose-style field[op]=value
		if i := strings.IndexByte(key, '['); i > 0 && strings.HasSuffix(key, "]") {
			if sqlOp, ok := filterOps[key[i+1:len(key)-1]]; ok {
				field, op = key[:i], sqlOp
			} else {
				continue
			}
		}
		col := toSnake(field)
		if !allowed[col] {
			continue
		}
		opts.Filters = append(opts.Filters, Filter{Column: col, Op: op, Value: vals[0]})
	}
	return opts
}

// Apply adds select/filter/sort to the query. Pagination is separate so
// callers can count the unpaged total first.
func (o ListOptions) Apply(db *gorm.DB) *gorm.DB {
	if len(o.Select) > 0 {
		db = db.Select(o.Select)
	}
	for _, f := range o.Filters {
		if f.Op == "IN" {
			db = db.Where(f.Column+" IN ?", strings.Split(f.Value, ","))
			continue
		}
		db = db.Where(f.Column+" "+f.Op+" ?", f.Value)
	}
	for _, s := range o.Sort {
		if strings.HasPrefix(s, "-") {
			db = db.Order(strings.TrimPrefix(s, "-") + " DESC")
		} else {
			db = db.Order(s)
		}
	}
	return db
}

// Paginate adds offset/limit for the requested page.
func (o ListOptions) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset((o.Page - 1) * o.Limit).Limit(o.Limit)
}

// PageInfo / Pagination mirror the next/prev block of the list responses.
type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *PageInfo `json:"next,omitempty"`
	Prev *PageInfo `json:"prev,omitempty"`
}

func BuildPagination(page, limit int, total int64) Pagination {
	var p Pagination
	if int64(page*limit) < total {
		p.Next = &PageInfo{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &PageInfo{Page: page - 1, Limit: limit}
	}
	return p
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
