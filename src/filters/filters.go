// Package filters implements the search filters a source exposes to the user,
// like the status, type and genre selects of the search page.
package filters

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Filter is a search filter rendered by the search UI
type Filter interface {
	// Type is the kind of the filter, like "header" or "select"
	Type() string
}

// Header is a text shown between the filters
type Header struct {
	Name string
}

func (Header) Type() string { return "header" }

// MarshalJSON implements json.Marshaler
func (h *Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{h.Type(), h.Name})
}

// Separator is a line shown between the filters
type Separator struct{}

func (Separator) Type() string { return "separator" }

// MarshalJSON implements json.Marshaler
func (s *Separator) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{s.Type()})
}

// Option is one option of a Select filter.
// Value is sent to the source, Name is shown to the user.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Select is a filter with one selected option
type Select struct {
	// Key is the query parameter the filter is set by
	Key     string
	Name    string
	Options []Option
	// State is the index of the selected option
	State int
}

func (Select) Type() string { return "select" }

// SelectedValue returns the value of the selected option or "" if the state is out of range
func (s *Select) SelectedValue() string {
	if s.State < 0 || s.State >= len(s.Options) {
		return ""
	}

	return s.Options[s.State].Value
}

// SetValue selects the option with the value
func (s *Select) SetValue(value string) error {
	for i, option := range s.Options {
		if option.Value == value {
			s.State = i
			return nil
		}
	}

	return fmt.Errorf("invalid value '%s' for filter '%s'", value, s.Key)
}

// MarshalJSON implements json.Marshaler
func (s *Select) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string   `json:"type"`
		Key     string   `json:"key"`
		Name    string   `json:"name"`
		Options []Option `json:"options"`
		State   int      `json:"state"`
	}{s.Type(), s.Key, s.Name, s.Options, s.State})
}

// TriStateValue is the state of a TriState filter
type TriStateValue int

const (
	StateIgnore TriStateValue = iota
	StateInclude
	StateExclude
)

// TriState is a filter that can be ignored, included or excluded, like a genre
type TriState struct {
	Name  string
	Value string
	State TriStateValue
}

func (TriState) Type() string { return "tristate" }

// MarshalJSON implements json.Marshaler
func (t *TriState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string        `json:"type"`
		Name  string        `json:"name"`
		Value string        `json:"value"`
		State TriStateValue `json:"state"`
	}{t.Type(), t.Name, t.Value, t.State})
}

// Group is a list of TriState filters shown together
type Group struct {
	// Key is the query parameter the group is set by.
	// Excluded values are prefixed with "-".
	Key     string
	Name    string
	Filters []*TriState
}

func (Group) Type() string { return "group" }

// SetValues sets the state of the group filters from values like "action" and "-romance".
// Filters not in values are ignored.
func (g *Group) SetValues(values []string) error {
	states := make(map[string]TriStateValue, len(values))
	for _, value := range values {
		state := StateInclude
		if strings.HasPrefix(value, "-") {
			state = StateExclude
			value = strings.TrimPrefix(value, "-")
		}
		states[value] = state
	}

	found := 0
	for _, filter := range g.Filters {
		state, ok := states[filter.Value]
		if !ok {
			filter.State = StateIgnore
			continue
		}
		filter.State = state
		found++
	}
	if found != len(states) {
		return fmt.Errorf("invalid values %v for filter '%s'", values, g.Key)
	}

	return nil
}

// MarshalJSON implements json.Marshaler
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string      `json:"type"`
		Key     string      `json:"key"`
		Name    string      `json:"name"`
		Filters []*TriState `json:"filters"`
	}{g.Type(), g.Key, g.Name, g.Filters})
}

// FilterList is the ordered list of filters of a source
type FilterList []Filter

// Select returns the Select filter with the key
func (l FilterList) Select(key string) (*Select, bool) {
	for _, filter := range l {
		if s, ok := filter.(*Select); ok && s.Key == key {
			return s, true
		}
	}

	return nil, false
}

// Group returns the Group filter with the key
func (l FilterList) Group(key string) (*Group, bool) {
	for _, filter := range l {
		if g, ok := filter.(*Group); ok && g.Key == key {
			return g, true
		}
	}

	return nil, false
}

// ApplyQuery sets the filters state from URL query values, like
// "status=ongoing&order=popular&genre[]=action&genre[]=-romance".
// Values of filters not in the list are ignored.
func (l FilterList) ApplyQuery(values url.Values) error {
	for _, filter := range l {
		switch f := filter.(type) {
		case *Select:
			if value := values.Get(f.Key); value != "" {
				if err := f.SetValue(value); err != nil {
					return err
				}
			}
		case *Group:
			groupValues := values[f.Key+"[]"]
			if len(groupValues) > 0 {
				if err := f.SetValues(groupValues); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
