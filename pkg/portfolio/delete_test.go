package portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

func TestDeleteActionConfirmDeclined(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"message": "deleted"}`))
	}))
	defer srv.Close()

	action := NewDeleteAction(NewClient(srv.URL), "/projects", nil,
		func(id int64) bool { return false }, nil)

	require.NoError(t, action.Delete(context.Background(), 5))
	assert.Equal(t, 0, requests)
}

func TestDeleteActionDeletesAndRefetches(t *testing.T) {
	var gotMethod, gotPath string
	refetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message": "deleted"}`))
	}))
	defer srv.Close()

	action := NewDeleteAction(NewClient(srv.URL), "/projects", nil,
		func(id int64) bool { return true },
		func(ctx context.Context) error {
			refetched = true
			return nil
		})

	require.NoError(t, action.Delete(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/projects/5", gotPath)
	assert.True(t, refetched)
	assert.False(t, action.Deleting(5), "marker cleared after completion")
}

func TestDeleteActionRefetchesEvenOnFailure(t *testing.T) {
	refetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "project not found")
	}))
	defer srv.Close()

	notifier := NewNotifier(4)
	action := NewDeleteAction(NewClient(srv.URL), "/projects", notifier,
		nil,
		func(ctx context.Context) error {
			refetched = true
			return nil
		})

	err := action.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, refetched, "page reloads even when the delete response was an error")
	assert.Equal(t, SeverityWrite, (<-notifier.C()).Severity)
}

func TestDeleteActionKeepsPageIndex(t *testing.T) {
	// 11 projects, page size 5: page 2 holds the single trailing row.
	total := int64(11)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			total--
			w.Write([]byte(`{"message": "deleted"}`))
			return
		}
		writeListPage(w, nil, total)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	list := NewListController[testRow](client, "/projects", nil)
	list.SetLimit(5)
	list.SetPage(2)
	require.NoError(t, list.Fetch(context.Background()))
	require.Equal(t, 3, list.TotalPages())

	action := NewDeleteAction(client, "/projects", nil,
		func(id int64) bool { return true },
		func(ctx context.Context) error { return list.Fetch(ctx) })

	require.NoError(t, action.Delete(context.Background(), 11))

	// the trailing page emptied out but the index stays where the user was
	assert.Equal(t, 2, list.Page())
	assert.Equal(t, int64(10), list.Total())
	assert.Equal(t, 2, list.TotalPages())
	assert.True(t, list.Empty(), "a past-the-end page shows the empty state despite the non-zero total")
}
