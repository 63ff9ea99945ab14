package services

import (
	"strings"
)

// contentColumns whitelists the JSON field names accepted as filter, sort
// and select targets, mapped to their columns.
var contentColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"contentType": "content_type",
	"contentUrl":  "content_url",
	"creator":     "creator_id",
	"likes":       "likes",
	"views":       "views",
	"createdAt":   "created_at",
}

// filter suffix operators mapped to SQL comparisons.
var filterOps = []struct {
	suffix string
	op     string
}{
	{"_gte", ">="},
	{"_lte", "<="},
	{"_gt", ">"},
	{"_lt", "<"},
	{"_in", "IN"},
}

type contentFilter struct {
	column string
	op     string
	value  interface{}
}

// ContentListQuery is the parsed form of the content list query grammar:
// select, sort, page, limit, plus whitelisted field filters with the
// _gt/_gte/_lt/_lte/_in suffix operators. Unknown fields are ignored.
type ContentListQuery struct {
	filters []contentFilter
	columns []string
	orderBy []string
	Page    int
	Limit   int
}

func ParseContentQuery(params map[string]string) *ContentListQuery {
	q := &ContentListQuery{Page: 1, Limit: 10}

	for key, raw := range params {
		switch key {
		case "select":
			for _, field := range strings.Split(raw, ",") {
				if col, ok := contentColumns[strings.TrimSpace(field)]; ok {
					q.columns = append(q.columns, col)
				}
			}
		case "sort":
			for _, field := range strings.Split(raw, ",") {
				field = strings.TrimSpace(field)
				dir := "ASC"
				if strings.HasPrefix(field, "-") {
					field = field[1:]
					dir = "DESC"
				}
				if col, ok := contentColumns[field]; ok {
					q.orderBy = append(q.orderBy, col+" "+dir)
				}
			}
		case "page":
			if n := atoiDefault(raw, 1); n >= 1 {
				q.Page = n
			}
		case "limit":
			if n := atoiDefault(raw, 10); n >= 1 {
				q.Limit = n
			}
		default:
			q.addFilter(key, raw)
		}
	}

	if len(q.orderBy) == 0 {
		q.orderBy = []string{"created_at DESC"}
	}
	return q
}

func (q *ContentListQuery) addFilter(key, raw string) {
	for _, f := range filterOps {
		if field, found := strings.CutSuffix(key, f.suffix); found {
			col, ok := contentColumns[field]
			if !ok {
				return
			}
			if f.op == "IN" {
				q.filters = append(q.filters, contentFilter{col, f.op, strings.Split(raw, ",")})
			} else {
				q.filters = append(q.filters, contentFilter{col, f.op, raw})
			}
			return
		}
	}
	if col, ok := contentColumns[key]; ok {
		q.filters = append(q.filters, contentFilter{col, "=", raw})
	}
}

func atoiDefault(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	if s == "" {
		return fallback
	}
	return n
}
