package api

import (
	"net/url"
	"strings"
)

// QueryParam is one key/value pair of a query string.
type QueryParam struct {
	Key   string
	Value string
}

// Query is an ordered query string. Unlike url.Values it keeps keys in the
// order they were added.
type Query []QueryParam

// Add appends a parameter and returns the extended query.
func (q Query) Add(key, value string) Query {
	return append(q, QueryParam{Key: key, Value: value})
}

// Encode percent-encodes the query in insertion order, without the leading "?".
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Endpoint describes where a resource type lives. Child is empty for top
// level resources; for nested resources Resource is the parent segment.
type Endpoint struct {
	BaseURL  string
	Version  string
	Resource string
	Child    string
}

// ListURL returns base + version + resource, plus optional action and query.
func (e Endpoint) ListURL(action string, query Query) string {
	u := e.root() + segment(e.Resource)
	return withActionAndQuery(u, action, query)
}

// DetailURL returns the list URL + id, plus optional action and query.
func (e Endpoint) DetailURL(id, action string, query Query) string {
	u := e.ListURL("", nil) + segment(id)
	return withActionAndQuery(u, action, query)
}

// NestedListURL returns base + version + parent + parent id + child, plus
// optional action and query.
func (e Endpoint) NestedListURL(parentID, action string, query Query) string {
	u := e.root() + segment(e.Resource) + segment(parentID) + segment(e.Child)
	return withActionAndQuery(u, action, query)
}

// NestedDetailURL returns the nested list URL + child id, plus optional
// action and query.
func (e Endpoint) NestedDetailURL(parentID, childID, action string, query Query) string {
	u := e.NestedListURL(parentID, "", nil) + segment(childID)
	return withActionAndQuery(u, action, query)
}

func (e Endpoint) root() string {
	base := e.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if e.Version == "" {
		return base
	}
	return base + segment(e.Version)
}

func segment(s string) string {
	return url.PathEscape(s) + "/"
}

func withActionAndQuery(u, action string, query Query) string {
	if action != "" {
		u += segment(action)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
