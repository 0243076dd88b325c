package manga

import (
	"reflect"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusUnknown:   "unknown",
		StatusOngoing:   "ongoing",
		StatusCompleted: "completed",
		StatusOnHiatus:  "on hiatus",
		Status(42):      "unknown",
	}

	for status, expected := range tests {
		if status.String() != expected {
			t.Fatalf("expected status %d to be %q, got %q", status, expected, status.String())
		}
	}
}

func TestGenres(t *testing.T) {
	m := &Manga{Genre: "Action, Fantasy,, Manhwa "}

	expected := []string{"Action", "Fantasy", "Manhwa"}
	if !reflect.DeepEqual(m.Genres(), expected) {
		t.Fatalf("expected genres %v, got %v", expected, m.Genres())
	}

	empty := &Manga{}
	if len(empty.Genres()) != 0 {
		t.Fatalf("expected no genres, got %v", empty.Genres())
	}
}
