package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

type testRow struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func listServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return srv
}

func writeListPage(w http.ResponseWriter, rows []testRow, total int64) {
	json.NewEncoder(w).Encode(dto.ListResponse{Data: rows, Total: total})
}

func TestListControllerFetch(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/publications/", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeListPage(w, []testRow{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}, 2)
	})

	list := NewListController[testRow](NewClient(srv.URL), "/publications", nil)
	require.NoError(t, list.Fetch(context.Background()))

	assert.Len(t, list.Items(), 2)
	assert.Equal(t, int64(2), list.Total())
	assert.Equal(t, 1, list.TotalPages())
	assert.False(t, list.Loading())
	assert.False(t, list.Empty())
}

func TestListControllerSkipMath(t *testing.T) {
	var gotSkip, gotLimit string
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotSkip = r.URL.Query().Get("skip")
		gotLimit = r.URL.Query().Get("limit")
		writeListPage(w, nil, 23)
	})

	list := NewListController[testRow](NewClient(srv.URL), "/awards", nil)
	list.SetLimit(5)
	list.SetPage(2)
	require.NoError(t, list.Fetch(context.Background()))

	assert.Equal(t, "10", gotSkip)
	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, 5, list.TotalPages())
}

func TestListControllerFilterResetsPage(t *testing.T) {
	var gotQuery map[string]string
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		writeListPage(w, nil, 0)
	})

	list := NewListController[testRow](NewClient(srv.URL), "/publications", nil)
	list.SetPage(4)
	list.SetFilter("year", "2021")
	require.Equal(t, 0, list.Page())

	require.NoError(t, list.Fetch(context.Background()))
	assert.Equal(t, "0", gotQuery["skip"])
	assert.Equal(t, "2021", gotQuery["year"])

	// clearing the filter removes it from the query
	list.SetFilter("year", "")
	require.NoError(t, list.Fetch(context.Background()))
	_, present := gotQuery["year"]
	assert.False(t, present)
}

func TestListControllerStaleResponseDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("skip") == "0" {
			close(firstArrived)
			<-releaseFirst
			writeListPage(w, []testRow{{ID: 1, Title: "stale page"}}, 100)
			return
		}
		writeListPage(w, []testRow{{ID: 11, Title: "current page"}}, 100)
	})

	list := NewListController[testRow](NewClient(srv.URL), "/publications", nil)

	firstDone := make(chan error, 1)
	go func() { firstDone <- list.Fetch(context.Background()) }()
	<-firstArrived

	list.SetPage(1)
	require.NoError(t, list.Fetch(context.Background()))
	require.Len(t, list.Items(), 1)
	require.Equal(t, "current page", list.Items()[0].Title)

	close(releaseFirst)
	require.NoError(t, <-firstDone)

	// the slow first response must not overwrite the newer page
	assert.Equal(t, "current page", list.Items()[0].Title)
	assert.Equal(t, 1, list.Page())
}

func TestListControllerEmpty(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeListPage(w, []testRow{}, 0)
	})

	list := NewListController[testRow](NewClient(srv.URL), "/patents", nil)
	assert.False(t, list.Empty(), "no fetch yet")

	require.NoError(t, list.Fetch(context.Background()))
	assert.True(t, list.Empty())
	assert.Equal(t, 0, list.TotalPages())
}

func TestListControllerFirstFetchFailureNotifies(t *testing.T) {
	var calls int
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writeErrorEnvelope(w, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
			return
		}
		writeListPage(w, []testRow{{ID: 1, Title: "recovered"}}, 1)
	})

	notifier := NewNotifier(4)
	list := NewListController[testRow](NewClient(srv.URL), "/books", notifier)

	err := list.Fetch(context.Background())
	require.Error(t, err)

	select {
	case note := <-notifier.C():
		assert.Equal(t, SeverityRead, note.Severity)
	default:
		t.Fatal("expected a read notification for the first failed fetch")
	}

	// once data has rendered, a failed refresh keeps the old page quietly
	require.NoError(t, list.Fetch(context.Background()))
	require.Len(t, list.Items(), 1)
}

func TestListControllerKeepsDataOnRefreshFailure(t *testing.T) {
	var calls int
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writeListPage(w, []testRow{{ID: 1, Title: "kept"}}, 1)
			return
		}
		writeErrorEnvelope(w, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	})

	notifier := NewNotifier(4)
	list := NewListController[testRow](NewClient(srv.URL), "/books", notifier)

	require.NoError(t, list.Fetch(context.Background()))
	require.Error(t, list.Fetch(context.Background()))

	require.Len(t, list.Items(), 1)
	assert.Equal(t, "kept", list.Items()[0].Title)
	select {
	case note := <-notifier.C():
		t.Fatalf("refresh failure should be silent, got %q", note.Message)
	default:
	}
}

func TestListControllerPageClamping(t *testing.T) {
	list := NewListController[testRow](NewClient("http://localhost"), "/books", nil)
	list.SetPage(-3)
	assert.Equal(t, 0, list.Page())

	list.SetPage(7)
	list.SetLimit(25)
	assert.Equal(t, 0, list.Page(), "changing the page size restarts at the first page")
}
