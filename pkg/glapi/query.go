package glapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Sort is the sort direction of a list endpoint. The zero value leaves the
// server default in effect and is omitted from queries.
type Sort int

// Sort directions.
const (
	SortAsc Sort = iota + 1
	SortDesc
)

func (s Sort) String() string {
	switch s {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return ""
	}
}

// Visibility limits project listings by visibility level.
type Visibility int

// Visibility levels.
const (
	VisibilityPublic Visibility = iota + 1
	VisibilityInternal
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityPrivate:
		return "private"
	default:
		return ""
	}
}

// ProjectOrderBy orders project listings. The server default is created_at.
type ProjectOrderBy int

// Project orderings.
const (
	ProjectOrderByID ProjectOrderBy = iota + 1
	ProjectOrderByName
	ProjectOrderByPath
	ProjectOrderByCreatedAt
	ProjectOrderByUpdatedAt
	ProjectOrderByLastActivityAt
)

func (o ProjectOrderBy) String() string {
	switch o {
	case ProjectOrderByID:
		return "id"
	case ProjectOrderByName:
		return "name"
	case ProjectOrderByPath:
		return "path"
	case ProjectOrderByCreatedAt:
		return "created_at"
	case ProjectOrderByUpdatedAt:
		return "updated_at"
	case ProjectOrderByLastActivityAt:
		return "last_activity_at"
	default:
		return ""
	}
}

// GroupOrderBy orders group listings.
type GroupOrderBy int

// Group orderings.
const (
	GroupOrderByName GroupOrderBy = iota + 1
	GroupOrderByPath
)

func (o GroupOrderBy) String() string {
	switch o {
	case GroupOrderByName:
		return "name"
	case GroupOrderByPath:
		return "path"
	default:
		return ""
	}
}

// TimeOrderBy orders issue and merge request listings. The server default is
// created_at.
type TimeOrderBy int

// Time-based orderings.
const (
	TimeOrderByCreatedAt TimeOrderBy = iota + 1
	TimeOrderByUpdatedAt
)

func (o TimeOrderBy) String() string {
	switch o {
	case TimeOrderByCreatedAt:
		return "created_at"
	case TimeOrderByUpdatedAt:
		return "updated_at"
	default:
		return ""
	}
}

// IssueState filters issue listings.
type IssueState int

// Issue states.
const (
	IssueStateOpened IssueState = iota + 1
	IssueStateClosed
)

func (s IssueState) String() string {
	switch s {
	case IssueStateOpened:
		return "opened"
	case IssueStateClosed:
		return "closed"
	default:
		return ""
	}
}

// MergeRequestState filters merge request listings.
type MergeRequestState int

// Merge request states.
const (
	MergeRequestStateMerged MergeRequestState = iota + 1
	MergeRequestStateOpened
	MergeRequestStateClosed
	MergeRequestStateAll
)

func (s MergeRequestState) String() string {
	switch s {
	case MergeRequestStateMerged:
		return "merged"
	case MergeRequestStateOpened:
		return "opened"
	case MergeRequestStateClosed:
		return "closed"
	case MergeRequestStateAll:
		return "all"
	default:
		return ""
	}
}

// query appends key=value pairs to a base resource path in the exact order
// add* is called. The first present pair introduces the "?", later pairs are
// joined with "&". Absent values (empty strings, nil pointers, empty slices)
// produce nothing, so a query with no filters is the bare path.
type query struct {
	buf strings.Builder
	any bool
}

func newQuery(path string) *query {
	q := &query{}
	q.buf.WriteString(path)

	return q
}

func (q *query) sep() {
	if q.any {
		q.buf.WriteByte('&')
	} else {
		q.buf.WriteByte('?')
		q.any = true
	}
}

// add appends key=value, skipping empty values.
func (q *query) add(key, value string) {
	if value == "" {
		return
	}

	q.sep()
	q.buf.WriteString(key)
	q.buf.WriteByte('=')
	q.buf.WriteString(value)
}

// addEscaped is add with standard URL query escaping of the value. Used for
// caller-supplied free text such as search terms.
func (q *query) addEscaped(key, value string) {
	if value == "" {
		return
	}

	q.add(key, url.QueryEscape(value))
}

// addBool appends key=true or key=false when the field is set.
func (q *query) addBool(key string, value *bool) {
	if value == nil {
		return
	}

	q.sep()
	q.buf.WriteString(key)
	q.buf.WriteByte('=')

	if *value {
		q.buf.WriteString("true")
	} else {
		q.buf.WriteString("false")
	}
}

// addInts appends a multi-valued integer field: key=v for a single value,
// repeated key[]=v pairs for two or more, preserving caller order.
func (q *query) addInts(key string, values []int) {
	switch len(values) {
	case 0:
	case 1:
		q.add(key, strconv.Itoa(values[0]))
	default:
		for _, v := range values {
			q.sep()
			q.buf.WriteString(key)
			q.buf.WriteString("[]=")
			q.buf.WriteString(strconv.Itoa(v))
		}
	}
}

// addList appends a comma-joined string list under a single key.
func (q *query) addList(key string, values []string) {
	q.add(key, strings.Join(values, ","))
}

func (q *query) String() string {
	return q.buf.String()
}
