package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelInfoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<div class="tgme_page">
				<div class="tgme_page_title"><span>  PUBG News  </span></div>
			</div>
		</body></html>`))
	}))
	defer srv.Close()

	info := NewChannelInfo()
	require.Equal(t, "PUBG News", info.Title(context.Background(), srv.URL))
}

func TestChannelInfoTitleMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>nothing here</h1></body></html>`))
	}))
	defer srv.Close()

	info := NewChannelInfo()
	require.Empty(t, info.Title(context.Background(), srv.URL))
}

func TestChannelInfoTitleNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	info := NewChannelInfo()
	require.Empty(t, info.Title(context.Background(), srv.URL))
}

func TestChannelInfoTitleUnreachable(t *testing.T) {
	info := NewChannelInfo()
	require.Empty(t, info.Title(context.Background(), "http://127.0.0.1:1/nope"))
}
