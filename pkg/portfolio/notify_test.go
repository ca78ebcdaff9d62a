package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierReadIsLossy(t *testing.T) {
	n := NewNotifier(2)

	n.Publish(Notification{Severity: SeverityRead, Message: "one"})
	n.Publish(Notification{Severity: SeverityRead, Message: "two"})
	// buffer full, nobody consuming: this one must be dropped, not block
	n.Publish(Notification{Severity: SeverityRead, Message: "three"})

	assert.Equal(t, "one", (<-n.C()).Message)
	assert.Equal(t, "two", (<-n.C()).Message)
	select {
	case note := <-n.C():
		t.Fatalf("expected dropped notification, got %q", note.Message)
	default:
	}
}

func TestNotifierWriteIsDelivered(t *testing.T) {
	n := NewNotifier(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		n.Publish(Notification{Severity: SeverityRead, Message: "fetch failed"})
		n.Publish(Notification{Severity: SeverityWrite, Message: "save failed"})
	}()

	first := <-n.C()
	second := <-n.C()
	<-done

	require.Equal(t, SeverityRead, first.Severity)
	require.Equal(t, SeverityWrite, second.Severity)
	assert.Equal(t, "save failed", second.Message)
}
