package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

type awardDraft struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Amount   float64 `json:"amount"`
	ImageURL string  `json:"image_url"`
}

func TestParseFloatField(t *testing.T) {
	v, err := ParseFloatField("amount", "1500000.50")
	require.NoError(t, err)
	assert.Equal(t, 1500000.50, v)

	v, err = ParseFloatField("amount", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	for _, input := range []string{"", "  ", "abc", "12,5"} {
		_, err := ParseFloatField("amount", input)
		require.Error(t, err, input)
		fieldErr, ok := err.(*FieldError)
		require.True(t, ok, input)
		assert.Equal(t, "amount", fieldErr.Field)
	}
}

func TestParseIntField(t *testing.T) {
	v, err := ParseIntField("year", "2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, v)

	for _, input := range []string{"", "20.5", "year"} {
		_, err := ParseIntField("year", input)
		require.Error(t, err, input)
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-06-01", NormalizeDate("2024-06-01T00:00:00Z"))
	assert.Equal(t, "2024-06-01", NormalizeDate("2024-06-01"))
}

func TestRecordFormCreate(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody awardDraft
	refetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	form := NewRecordForm[awardDraft](NewClient(srv.URL), "/awards", nil, func(ctx context.Context) error {
		refetched = true
		return nil
	})

	form.OpenCreate()
	require.True(t, form.Open())
	assert.False(t, form.Editing())

	form.SetDraft(awardDraft{Title: "Best Paper", Year: 2024})
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/awards/", gotPath)
	assert.Equal(t, "Best Paper", gotBody.Title)
	assert.True(t, refetched)
	assert.False(t, form.Open(), "form closes after a successful submit")
}

func TestRecordFormEditSendsFullDraft(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody awardDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	form := NewRecordForm[awardDraft](NewClient(srv.URL), "/awards", nil, nil)
	form.OpenEdit(7, awardDraft{Title: "Fellowship", Year: 2020, Amount: 50000})
	assert.True(t, form.Editing())

	// even untouched fields travel in the replacement payload
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/awards/7", gotPath)
	assert.Equal(t, awardDraft{Title: "Fellowship", Year: 2020, Amount: 50000}, gotBody)
}

func TestRecordFormSubmitFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "award_date must be a YYYY-MM-DD date")
	}))
	defer srv.Close()

	notifier := NewNotifier(4)
	form := NewRecordForm[awardDraft](NewClient(srv.URL), "/awards", notifier, nil)
	form.OpenCreate()
	form.SetDraft(awardDraft{Title: "Kept"})

	require.Error(t, form.Submit(context.Background()))
	assert.True(t, form.Open())
	assert.Equal(t, "Kept", form.Draft().Title)

	note := <-notifier.C()
	assert.Equal(t, SeverityWrite, note.Severity)
	assert.Contains(t, note.Message, "award_date")
}

func TestRecordFormStagedUploadHappyPath(t *testing.T) {
	var submitted awardDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/upload/image" {
			w.Write([]byte(`{"url": "http://cdn.test/uploads/medal.png"}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 3}`))
	}))
	defer srv.Close()

	form := NewRecordForm[awardDraft](NewClient(srv.URL), "/awards", nil, nil)
	form.SetImageField(func(draft *awardDraft, url string) { draft.ImageURL = url })
	form.OpenCreate()
	form.SetDraft(awardDraft{Title: "With Photo"})
	form.StageImage("medal.png", strings.NewReader("pngdata"))

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, "http://cdn.test/uploads/medal.png", submitted.ImageURL)
}

func TestRecordFormFailedUploadAbortsSubmit(t *testing.T) {
	recordWrites := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/upload/image" {
			writeErrorEnvelope(w, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "unsupported file type")
			return
		}
		recordWrites++
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	notifier := NewNotifier(4)
	form := NewRecordForm[awardDraft](NewClient(srv.URL), "/awards", notifier, nil)
	form.OpenCreate()
	form.SetDraft(awardDraft{Title: "No Photo Yet"})
	form.StageImage("virus.exe", strings.NewReader("mz"))

	require.Error(t, form.Submit(context.Background()))

	// the record write never happens when its image failed to land
	assert.Equal(t, 0, recordWrites)
	assert.True(t, form.Open())
	assert.Equal(t, "No Photo Yet", form.Draft().Title)
	assert.Equal(t, SeverityWrite, (<-notifier.C()).Severity)
}

func TestRecordFormNormalizesOnOpen(t *testing.T) {
	type phdDraft struct {
		Name      string `json:"name"`
		AwardDate string `json:"award_date"`
	}

	form := NewRecordForm[phdDraft](NewClient("http://localhost"), "/phd-students", nil, nil)
	form.SetNormalize(func(draft *phdDraft) {
		draft.AwardDate = NormalizeDate(draft.AwardDate)
	})

	form.OpenEdit(4, phdDraft{Name: "R. Sharma", AwardDate: "2022-07-14T00:00:00Z"})
	assert.Equal(t, "2022-07-14", form.Draft().AwardDate)
	assert.Equal(t, "R. Sharma", form.Draft().Name)
}
