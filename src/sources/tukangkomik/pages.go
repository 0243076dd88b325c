package tukangkomik

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"

	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
	"github.com/diogovalentte/tukangkomik/src/util"
)

const (
	tsReaderScriptXPath = "//script[contains(., 'ts_reader')]"
	tsReaderPrefix      = "ts_reader.run("
	tsReaderSuffix      = ");"
)

// PageListParse parses the pages from the reader script, like
// ts_reader.run({"sources": [{"source": "Server 1", "images": [...]}]});
// Only the images of the first server are used.
// Pages without the script, or with a script that can't be decoded, are parsed by the base source.
func (s *Source) PageListParse(doc *goquery.Document) ([]*manga.Page, error) {
	location := mangathemesia.DocumentLocation(doc)

	script, err := tsReaderScript(doc)
	if err != nil {
		return nil, util.AddErrorContext("error while looking for the reader script", err)
	}
	if script == "" {
		return s.Source.PageListParse(doc)
	}

	payload := util.SubstringBefore(util.SubstringAfter(script, tsReaderPrefix), tsReaderSuffix)
	var session manga.ReaderSession
	if err = json.Unmarshal([]byte(payload), &session); err != nil {
		s.Logger().Warn().Err(err).Str("url", location).Msg("could not decode the reader script, parsing the page images instead")
		return s.Source.PageListParse(doc)
	}

	if len(session.Sources) == 0 {
		return []*manga.Page{}, nil
	}
	images := session.Sources[0].Images
	pages := make([]*manga.Page, 0, len(images))
	for i, imageURL := range images {
		pages = append(pages, &manga.Page{Index: i, URL: location, ImageURL: imageURL})
	}

	return pages, nil
}

// tsReaderScript returns the text of the first script containing "ts_reader", or "" if there is none
func tsReaderScript(doc *goquery.Document) (string, error) {
	for _, root := range doc.Nodes {
		node, err := htmlquery.Query(root, tsReaderScriptXPath)
		if err != nil {
			return "", err
		}
		if node != nil {
			return htmlquery.InnerText(node), nil
		}
	}

	return "", nil
}
