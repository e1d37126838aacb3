package semrush

import (
	"net/url"
	"strings"
)

// Param is one key/value pair of an assembled query.
type Param struct {
	Key   string
	Value string
}

// Params is the ordered parameter set sent to the report API. Order and
// repeated keys are significant, so it is a slice rather than a map:
// bracketed array keys appear once per element.
type Params []Param

// Add appends a pair to the set.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the first value recorded under key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Values returns every value recorded under key, in append order.
func (p Params) Values(key string) []string {
	var values []string
	for _, kv := range p {
		if kv.Key == key {
			values = append(values, kv.Value)
		}
	}
	return values
}

// Encode renders the set as a query string, preserving append order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
