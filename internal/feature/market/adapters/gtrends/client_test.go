package gtrends

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		BaseURL:   serverURL,
		Timeout:   5 * time.Second,
		HL:        "en-US",
		TZ:        360,
		Timeframe: "today 12-m",
	}, &http.Client{Timeout: 5 * time.Second})
}

// explore→multilineの2段プロトコルを再現するテストサーバーです。
// どちらのレスポンスにも ")]}'" JSONガードプレフィックスが付きます。
func newTrendsServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/explore", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ComparisonItem []struct {
				Keyword string `json:"keyword"`
				Geo     string `json:"geo"`
				Time    string `json:"time"`
			} `json:"comparisonItem"`
		}
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("req")), &payload))
		require.Len(t, payload.ComparisonItem, 1)
		assert.Equal(t, "Food Packaging", payload.ComparisonItem[0].Keyword)
		assert.Equal(t, "ID", payload.ComparisonItem[0].Geo)
		assert.Equal(t, "today 12-m", payload.ComparisonItem[0].Time)

		_, _ = w.Write([]byte(")]}'\n{\"widgets\":[" +
			`{"id":"RELATED_QUERIES","token":"other-token","request":{}},` +
			`{"id":"TIMESERIES","token":"series-token","request":{"restriction":{"geo":{"country":"ID"}}}}` +
			"]}"))
	})
	mux.HandleFunc("/widgetdata/multiline", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "series-token", r.URL.Query().Get("token"))
		// exploreが返したrequest本体がそのまま転送されること
		assert.JSONEq(t, `{"restriction":{"geo":{"country":"ID"}}}`, r.URL.Query().Get("req"))

		_, _ = w.Write([]byte(")]}'\n{\"default\":{\"timelineData\":[" +
			`{"time":"1756512000","value":[71]},` +
			`{"time":"1757116800","value":[64]}` +
			"]}}"))
	})
	return httptest.NewServer(mux)
}

func TestInterestOverTime_Success(t *testing.T) {
	srv := newTrendsServer(t)
	defer srv.Close()

	points, err := newTestClient(srv.URL).InterestOverTime(context.Background(), "Food Packaging", "ID")
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, "2025-08-30", points[0].Date)
	assert.Equal(t, 71, points[0].Value)
	assert.Equal(t, "2025-09-06", points[1].Date)
	assert.Equal(t, 64, points[1].Value)
}

func TestInterestOverTime_NoTimeseriesWidget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(")]}'\n{\"widgets\":[{\"id\":\"GEO_MAP\",\"token\":\"x\",\"request\":{}}]}"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).InterestOverTime(context.Background(), "Food Packaging", "ID")
	assert.ErrorContains(t, err, "timeseries widget not found")
}

func TestInterestOverTime_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).InterestOverTime(context.Background(), "Food Packaging", "ID")
	assert.ErrorContains(t, err, "trends http 429")
}

func TestStripJSONPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"guarded payload", ")]}'\n{\"a\":1}", `{"a":1}`, false},
		{"bare payload", `{"a":1}`, `{"a":1}`, false},
		{"no json object", ")]}'", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := stripJSONPrefix([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
