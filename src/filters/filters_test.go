package filters

import (
	"encoding/json"
	"net/url"
	"testing"
)

func newTestFilterList() FilterList {
	return FilterList{
		&Header{Name: "Note: Can't be used with text search!"},
		&Separator{},
		&Select{Key: "status", Name: "Status", Options: []Option{{"All", ""}, {"Ongoing", "ongoing"}, {"Completed", "completed"}}},
		&Select{Key: "order", Name: "Sort by", Options: []Option{{"Default", ""}, {"Popular", "popular"}}},
		&Group{Key: "genre", Name: "Genre", Filters: []*TriState{
			{Name: "Action", Value: "action"},
			{Name: "Romance", Value: "romance"},
			{Name: "Isekai", Value: "isekai"},
		}},
	}
}

func TestApplyQuery(t *testing.T) {
	t.Run("Should set the filters state", func(t *testing.T) {
		list := newTestFilterList()
		values, _ := url.ParseQuery("status=completed&order=popular&genre[]=action&genre[]=-romance")

		err := list.ApplyQuery(values)
		if err != nil {
			t.Fatalf("error applying query: %v", err)
		}

		status, _ := list.Select("status")
		if status.SelectedValue() != "completed" {
			t.Fatalf("expected status 'completed', got %q", status.SelectedValue())
		}
		order, _ := list.Select("order")
		if order.SelectedValue() != "popular" {
			t.Fatalf("expected order 'popular', got %q", order.SelectedValue())
		}
		genre, _ := list.Group("genre")
		expected := []TriStateValue{StateInclude, StateExclude, StateIgnore}
		for i, filter := range genre.Filters {
			if filter.State != expected[i] {
				t.Fatalf("expected genre %s state %d, got %d", filter.Value, expected[i], filter.State)
			}
		}
	})
	t.Run("Should not accept unknown values", func(t *testing.T) {
		invalidQueries := []string{
			"status=paused",
			"genre[]=cooking",
			"genre[]=-cooking",
		}

		for _, query := range invalidQueries {
			values, _ := url.ParseQuery(query)
			err := newTestFilterList().ApplyQuery(values)
			if err == nil {
				t.Fatalf("expected error for query %q, got nil", query)
			}
		}
	})
	t.Run("Should ignore unknown keys", func(t *testing.T) {
		values, _ := url.ParseQuery("project=project-filter-on&page=3")

		err := newTestFilterList().ApplyQuery(values)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSelectedValue(t *testing.T) {
	s := &Select{Options: []Option{{"All", ""}, {"Popular", "popular"}}, State: 5}
	if s.SelectedValue() != "" {
		t.Fatalf("expected empty value for an out of range state, got %q", s.SelectedValue())
	}

	s.State = 1
	if s.SelectedValue() != "popular" {
		t.Fatalf("expected 'popular', got %q", s.SelectedValue())
	}
}

func TestMarshalJSON(t *testing.T) {
	body, err := json.Marshal(newTestFilterList())
	if err != nil {
		t.Fatalf("error marshaling filters: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("error unmarshaling filters: %v", err)
	}

	expectedTypes := []string{"header", "separator", "select", "select", "group"}
	if len(decoded) != len(expectedTypes) {
		t.Fatalf("expected %d filters, got %d", len(expectedTypes), len(decoded))
	}
	for i, filter := range decoded {
		if filter["type"] != expectedTypes[i] {
			t.Fatalf("expected filter %d to be %q, got %v", i, expectedTypes[i], filter["type"])
		}
	}
	if decoded[2]["key"] != "status" {
		t.Fatalf("expected select key 'status', got %v", decoded[2]["key"])
	}
	genres, ok := decoded[4]["filters"].([]any)
	if !ok || len(genres) != 3 {
		t.Fatalf("expected 3 genres, got %v", decoded[4]["filters"])
	}
}
