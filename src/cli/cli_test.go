package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources"
	"github.com/diogovalentte/tukangkomik/src/sources/tukangkomik"
	"github.com/diogovalentte/tukangkomik/src/util"
)

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Document(_ context.Context, req *http.Request) (*goquery.Document, error) {
	html, ok := f.pages[req.URL.String()]
	if !ok {
		return nil, util.AddErrorContext("error while fetching document", errordefs.ErrPageNotFound)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	doc.Url = req.URL

	return doc, nil
}

const listing = `<div class="listupd"><div class="bs"><div class="bsx"><a href="https://tukangkomik.id/manga/solo-leveling/" title="Solo Leveling"><img src="https://tukangkomik.id/solo.jpg"></a></div></div></div>`

func setupTestSource(t *testing.T) preferences.Store {
	t.Helper()

	sources.SetFetcher(&fakeFetcher{pages: map[string]string{
		tukangkomik.DefaultBaseURL + "/manga/?title=&page=2&order=popular":                     listing,
		tukangkomik.DefaultBaseURL + "/?s=solo&page=1":                                         listing,
		tukangkomik.DefaultBaseURL + "/manga/?title=&page=1&status=ongoing&type=&order=update": listing,
		tukangkomik.DefaultBaseURL + "/solo-leveling-chapter-1/":                               `<script>ts_reader.run({"sources":[{"source":"1","images":["https://cdn.test/1.jpg","https://cdn.test/2.jpg"]}]});</script>`,
	}})

	store := preferences.NewMemoryStore()
	source := tukangkomik.New(store, nil)
	sources.RegisterSource(source)
	t.Cleanup(func() {
		sources.DeleteSource(sources.SourceID(source))
	})

	return store
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagOutput, flagSource, flagPage = "yaml", "", 1
	flagStatus, flagType, flagOrder, flagGenres, flagProject = "", "", "", nil, false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestListingCommands(t *testing.T) {
	setupTestSource(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "popular", args: []string{"popular", "--page", "2"}},
		{name: "text search", args: []string{"search", "solo"}},
		{name: "filter search", args: []string{"search", "--status", "ongoing", "--order", "update"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := executeCommand(t, test.args...)
			if err != nil {
				t.Fatalf("error executing %v: %v", test.args, err)
			}
			if !strings.Contains(out, "title: Solo Leveling") || !strings.Contains(out, "url: /manga/solo-leveling/") {
				t.Fatalf("expected the manga in the output, got:\n%s", out)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	setupTestSource(t)

	out, err := executeCommand(t, "pages", "/solo-leveling-chapter-1/", "--output", "json")
	if err != nil {
		t.Fatalf("error executing pages: %v", err)
	}

	var pages []struct {
		Index    int    `json:"index"`
		ImageURL string `json:"image_url"`
	}
	if err = json.Unmarshal([]byte(out), &pages); err != nil {
		t.Fatalf("error decoding output %q: %v", out, err)
	}
	if len(pages) != 2 || pages[1].Index != 1 || pages[1].ImageURL != "https://cdn.test/2.jpg" {
		t.Fatalf("unexpected pages: %+v", pages)
	}
}

func TestInvalidOutput(t *testing.T) {
	setupTestSource(t)

	_, err := executeCommand(t, "filters", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid output") {
		t.Fatalf("expected invalid output error, got %v", err)
	}
}

func TestNotFound(t *testing.T) {
	setupTestSource(t)

	_, err := executeCommand(t, "chapters", "/manga/missing/")
	if err == nil {
		t.Fatalf("expected error for a missing manga")
	}

	_, err = executeCommand(t, "filters", "--source", "123")
	if err == nil {
		t.Fatalf("expected error for an unknown source")
	}
}

func TestPrefsCommands(t *testing.T) {
	store := setupTestSource(t)

	out, err := executeCommand(t, "prefs", "get")
	if err != nil {
		t.Fatalf("error executing prefs get: %v", err)
	}
	if !strings.Contains(out, "key: overrideBaseUrl") || !strings.Contains(out, "value: https://tukangkomik.id") {
		t.Fatalf("expected the default base URL preference, got:\n%s", out)
	}

	_, err = executeCommand(t, "prefs", "set", tukangkomik.BaseURLPrefKey, "https://tukangkomik.com")
	if err != nil {
		t.Fatalf("error executing prefs set: %v", err)
	}
	all, _ := store.All(context.Background())
	if all["source_5808419379780108473/overrideBaseUrl"] != "https://tukangkomik.com" {
		t.Fatalf("expected the preference to be saved, got %v", all)
	}

	_, err = executeCommand(t, "prefs", "set", "unknown", "value")
	if err == nil {
		t.Fatalf("expected error for an unknown preference")
	}
}
