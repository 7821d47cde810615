package repsona

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Optional is a query parameter that is sent only when set. The zero value
// is unset. Any JSON scalar decodes into a set value, so false, 0 and ""
// are all sent; JSON null stays unset. Arrays decode to comma-joined text
// and objects to their JSON encoding.
type Optional struct {
	text string
	set  bool
}

func (o Optional) IsSet() bool    { return o.set }
func (o Optional) String() string { return o.text }

func (o *Optional) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = Optional{}
		return nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	text, err := paramText(v)
	if err != nil {
		return err
	}
	*o = Optional{text: text, set: true}
	return nil
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.text)
}

func paramText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			s, err := paramText(e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	case nil:
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("query parameter value of type %T: %w", v, err)
	}
	return string(b), nil
}

// params collects optional query parameters.
type params url.Values

func (p params) add(key string, o Optional) {
	if o.set {
		url.Values(p).Set(key, o.text)
	}
}

func (p params) values() url.Values {
	if len(p) == 0 {
		return nil
	}
	return url.Values(p)
}

// TaskFilter holds the optional filters of GetTasks. Field names match the
// API's query parameter names.
type TaskFilter struct {
	Page             Optional `json:"page"`
	Keywords         Optional `json:"keywords"`
	Tags             Optional `json:"tags"`
	Statuses         Optional `json:"statuses"`
	Milestones       Optional `json:"milestones"`
	Priorities       Optional `json:"priorities"`
	ResponsibleUsers Optional `json:"responsible_users"`
	BallHoldingUsers Optional `json:"ball_holding_users"`
	DueDateGTE       Optional `json:"due_date_gte"`
	DueDateLTE       Optional `json:"due_date_lte"`
	IsExpired        Optional `json:"is_expired"`
	IsClosed         Optional `json:"is_closed"`
}

func (f TaskFilter) query() url.Values {
	p := params{}
	p.add("page", f.Page)
	p.add("keywords", f.Keywords)
	p.add("tags", f.Tags)
	p.add("statuses", f.Statuses)
	p.add("milestones", f.Milestones)
	p.add("priorities", f.Priorities)
	p.add("responsible_users", f.ResponsibleUsers)
	p.add("ball_holding_users", f.BallHoldingUsers)
	p.add("due_date_gte", f.DueDateGTE)
	p.add("due_date_lte", f.DueDateLTE)
	p.add("is_expired", f.IsExpired)
	p.add("is_closed", f.IsClosed)
	return p.values()
}

// Page selects one page of a paginated listing.
type Page struct {
	Page Optional `json:"page"`
}

func (pg Page) query() url.Values {
	p := params{}
	p.add("page", pg.Page)
	return p.values()
}
