package portfolio

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// FieldError is a client-side validation failure on one form field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseFloatField converts a text input into a float64. Empty and
// non-numeric values are field errors, never a silent zero.
func ParseFloatField(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &FieldError{Field: field, Message: "must not be empty"}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Message: "must be a number"}
	}
	return f, nil
}

// ParseIntField converts a text input into an int with the same rules as
// ParseFloatField.
func ParseIntField(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &FieldError{Field: field, Message: "must not be empty"}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FieldError{Field: field, Message: "must be a whole number"}
	}
	return n, nil
}

// NormalizeDate trims a timestamp pasted from another system down to its
// YYYY-MM-DD date part.
func NormalizeDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// stagedUpload is an image waiting to be sent when the form is submitted.
type stagedUpload struct {
	filename string
	content  io.Reader
}

// RecordForm drives one create-or-edit modal. D is the request payload type
// sent to the server.
//
// The draft is a copy: editing it never mutates the record the table row
// holds, so closing without submitting discards everything.
type RecordForm[D any] struct {
	client   *Client
	resource string
	notifier *Notifier

	// refetch is invoked after a successful submit, before the form closes.
	refetch func(ctx context.Context) error
	// applyImageURL writes an uploaded image URL into the draft payload.
	applyImageURL func(draft *D, url string)
	// normalize cleans a freshly opened draft, e.g. trimming timestamps to
	// their YYYY-MM-DD part.
	normalize func(draft *D)

	mu         sync.Mutex
	open       bool
	editingID  int64
	draft      D
	staged     *stagedUpload
	submitting bool
}

// NewRecordForm creates a form for the collection mounted at resource.
// refetch may be nil when no table needs reloading.
func NewRecordForm[D any](client *Client, resource string, notifier *Notifier, refetch func(ctx context.Context) error) *RecordForm[D] {
	return &RecordForm[D]{
		client:   client,
		resource: resource,
		notifier: notifier,
		refetch:  refetch,
	}
}

// SetImageField configures where an uploaded image URL lands in the draft.
func (f *RecordForm[D]) SetImageField(apply func(draft *D, url string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyImageURL = apply
}

// SetNormalize configures a cleanup applied to the draft whenever the form
// opens on an existing record.
func (f *RecordForm[D]) SetNormalize(normalize func(draft *D)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.normalize = normalize
}

// OpenCreate opens the form with a zero draft.
func (f *RecordForm[D]) OpenCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero D
	f.draft = zero
	f.editingID = 0
	f.staged = nil
	f.open = true
}

// OpenEdit opens the form with a copy of an existing record's payload.
func (f *RecordForm[D]) OpenEdit(id int64, payload D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = payload
	if f.normalize != nil {
		f.normalize(&f.draft)
	}
	f.editingID = id
	f.staged = nil
	f.open = true
}

// Close discards the draft.
func (f *RecordForm[D]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.staged = nil
}

// Open reports whether the modal is showing.
func (f *RecordForm[D]) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Submitting reports whether a submit is in flight.
func (f *RecordForm[D]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Editing reports whether the form targets an existing record.
func (f *RecordForm[D]) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID != 0
}

// Draft returns the current draft payload.
func (f *RecordForm[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft payload.
func (f *RecordForm[D]) SetDraft(draft D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// StageImage queues an image to be uploaded when the form is submitted.
func (f *RecordForm[D]) StageImage(filename string, content io.Reader) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged = &stagedUpload{filename: filename, content: content}
}

// Submit uploads any staged image, then creates or replaces the record. On
// any failure the form stays open with the draft intact and the error goes
// to the notifier; on success the configured refetch runs and the form
// closes.
func (f *RecordForm[D]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open || f.submitting {
		f.mu.Unlock()
		return nil
	}
	f.submitting = true
	staged := f.staged
	editingID := f.editingID
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if staged != nil {
		url, err := f.client.UploadImage(ctx, staged.filename, staged.content)
		if err != nil {
			f.notify(fmt.Sprintf("image upload failed: %v", err))
			return err
		}
		f.mu.Lock()
		if f.applyImageURL != nil {
			f.applyImageURL(&f.draft, url)
		}
		f.staged = nil
		f.mu.Unlock()
	}

	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()

	var err error
	if editingID != 0 {
		err = f.client.Put(ctx, fmt.Sprintf("%s/%d", f.resource, editingID), draft, nil)
	} else {
		err = f.client.Post(ctx, f.resource+"/", draft, nil)
	}
	if err != nil {
		f.notify(err.Error())
		return err
	}

	if f.refetch != nil {
		if err := f.refetch(ctx); err != nil {
			// The write landed; a refetch problem is a read problem.
			if f.notifier != nil {
				f.notifier.Publish(Notification{Severity: SeverityRead, Message: err.Error()})
			}
		}
	}

	f.Close()
	return nil
}

func (f *RecordForm[D]) notify(message string) {
	if f.notifier != nil {
		f.notifier.Publish(Notification{Severity: SeverityWrite, Message: message})
	}
}
