package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/set-night/ucbot/internal/config"
)

// ChannelInfo scrapes the public t.me preview page for a channel title so
// task and channel listings can show a human name instead of a bare id.
type ChannelInfo struct {
	client *http.Client
}

func NewChannelInfo() *ChannelInfo {
	return &ChannelInfo{
		client: &http.Client{Timeout: config.ChannelTitleTimeout},
	}
}

// Title is best effort: any failure returns an empty string and the caller
// falls back to the channel URL.
func (c *ChannelInfo) Title(ctx context.Context, channelURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, channelURL, nil)
	if err != nil {
		return ""
	}

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("fetch channel preview page", "url", channelURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		slog.Debug("parse channel preview page", "url", channelURL, "error", err)
		return ""
	}

	return strings.TrimSpace(doc.Find(".tgme_page_title").First().Text())
}
