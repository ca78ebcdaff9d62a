package portfolio

import (
	"context"
	"fmt"
	"sync"
)

// DeleteAction removes records from one collection. Each row gets its own
// in-flight marker so only the clicked row shows a spinner.
type DeleteAction struct {
	client   *Client
	resource string
	notifier *Notifier

	// confirm must return true before any DELETE is issued.
	confirm func(id int64) bool
	// refetch reloads the visible page after the delete, whether or not a
	// row remains on it. The page index is left alone even when the last
	// row of the last page disappears.
	refetch func(ctx context.Context) error

	mu       sync.Mutex
	deleting map[int64]bool
}

// NewDeleteAction creates a delete action for the collection mounted at
// resource.
func NewDeleteAction(client *Client, resource string, notifier *Notifier, confirm func(id int64) bool, refetch func(ctx context.Context) error) *DeleteAction {
	return &DeleteAction{
		client:   client,
		resource: resource,
		notifier: notifier,
		confirm:  confirm,
		refetch:  refetch,
		deleting: map[int64]bool{},
	}
}

// Deleting reports whether a DELETE for id is in flight.
func (d *DeleteAction) Deleting(id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleting[id]
}

// Delete confirms, removes the record, then refetches the current page.
// A declined confirmation is not an error.
func (d *DeleteAction) Delete(ctx context.Context, id int64) error {
	if d.confirm != nil && !d.confirm(id) {
		return nil
	}

	d.mu.Lock()
	if d.deleting[id] {
		d.mu.Unlock()
		return nil
	}
	d.deleting[id] = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.deleting, id)
		d.mu.Unlock()
	}()

	err := d.client.Delete(ctx, fmt.Sprintf("%s/%d", d.resource, id))
	if err != nil {
		if d.notifier != nil {
			d.notifier.Publish(Notification{Severity: SeverityWrite, Message: err.Error()})
		}
		// The page still refetches; the row may be gone server side even
		// when the response was lost.
	}

	if d.refetch != nil {
		if ferr := d.refetch(ctx); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
