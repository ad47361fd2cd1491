// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/mickey-farmer/startingOutOK/internal/platform/respond"
	"github.com/mickey-farmer/startingOutOK/pkg/pointer"
)

// # RSS Feed

// rssDocument is the RSS 2.0 envelope for the casting-call feed.
type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// FeedHandler serves the public RSS feed of active casting calls.
type FeedHandler struct {
	castingService *Service
	baseURL        string
}

// NewFeedHandler constructs a [FeedHandler]. baseURL is the public site
// root used to build item links.
func NewFeedHandler(service *Service, baseURL string) *FeedHandler {
	return &FeedHandler{castingService: service, baseURL: baseURL}
}

/*
GET /feed.xml.

Description: Active casting calls newest-first as RSS 2.0, so readers can
subscribe instead of refreshing the listing.

Response:
  - 200: application/rss+xml
*/
func (handler *FeedHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.castingService.FeedEntries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Starting Out OK — Casting Calls",
			Link:        handler.baseURL,
			Description: "Casting calls for the Oklahoma acting community",
			Items:       make([]rssItem, 0, len(entries)),
		},
	}

	for i := range entries {
		entry := &entries[i]
		link := handler.baseURL + "/casting-call/" + entry.Slug
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:       entry.Title,
			Link:        link,
			GUID:        link,
			Description: entry.Description,
			PubDate:     rssDate(entry.Date),
		})
	}

	writer.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(xml.Header))
	_ = xml.NewEncoder(writer).Encode(doc)
}

// rssDate renders a posting date as RFC 1123; unparseable dates are
// omitted rather than guessed.
func rssDate(date *string) string {
	raw := pointer.Val(date)
	if raw == "" {
		return ""
	}
	t, err := time.Parse(deadlineDateLayout, raw)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC1123Z)
}
