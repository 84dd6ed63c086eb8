package notification

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
)

type fakeSender struct {
	mu       sync.Mutex
	messages []*gomail.Message
	failTo   string
	delay    time.Duration
}

func (f *fakeSender) DialAndSend(msgs ...*gomail.Message) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		if to := m.GetHeader("To"); len(to) > 0 && to[0] == f.failTo {
			return errors.New("mailbox unavailable")
		}
		f.messages = append(f.messages, m)
	}
	return nil
}

func body(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func summary() domain.NotificationSummary {
	return domain.NotificationSummary{
		CustomerName:       "Jan Kowalski",
		CustomerEmail:      "jan@example.com",
		VehicleDescription: "BMW M3",
		Services:           "Ceramic Coating, Interior Detail",
		ScheduledDate:      "2025-06-12",
		ScheduledSlot:      "evening",
		Total:              1610,
		Deposit:            312,
		Balance:            1298,
	}
}

func TestDispatch(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcherWithSender(sender, "studio@detailing.example", "bookings@detailing.example", logger.Nop())

	require.NoError(t, d.Dispatch(context.Background(), summary()))
	require.Len(t, sender.messages, 2)

	studio := sender.messages[0]
	assert.Equal(t, []string{"bookings@detailing.example"}, studio.GetHeader("To"))
	assert.Equal(t, []string{"jan@example.com"}, studio.GetHeader("Reply-To"))
	studioBody := body(t, studio)
	assert.Contains(t, studioBody, "Services: Ceramic Coating, Interior Detail")
	assert.Contains(t, studioBody, "Total: 1610 PLN")
	assert.Contains(t, studioBody, "Deposit: 312 PLN")
	assert.Contains(t, studioBody, "Balance due: 1298 PLN")
	assert.Contains(t, studioBody, noNotes)

	customer := sender.messages[1]
	assert.Equal(t, []string{"jan@example.com"}, customer.GetHeader("To"))
	assert.Contains(t, body(t, customer), "Dear Jan Kowalski")
}

func TestDispatch_CustomerFailureStillNotifiesStudio(t *testing.T) {
	sender := &fakeSender{failTo: "jan@example.com"}
	d := NewDispatcherWithSender(sender, "studio@detailing.example", "bookings@detailing.example", logger.Nop())

	err := d.Dispatch(context.Background(), summary())

	assert.ErrorIs(t, err, ErrSend)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"bookings@detailing.example"}, sender.messages[0].GetHeader("To"))
}

func TestDispatch_NoCustomerEmail(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcherWithSender(sender, "studio@detailing.example", "bookings@detailing.example", logger.Nop())

	s := summary()
	s.CustomerEmail = ""
	require.NoError(t, d.Dispatch(context.Background(), s))
	assert.Len(t, sender.messages, 1)
}

func TestDispatch_Timeout(t *testing.T) {
	sender := &fakeSender{delay: 200 * time.Millisecond}
	d := NewDispatcherWithSender(sender, "studio@detailing.example", "bookings@detailing.example", logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Dispatch(ctx, summary()), context.DeadlineExceeded)
}

func TestDispatch_Disabled(t *testing.T) {
	d := NewDispatcher(Config{Enabled: false}, logger.Nop())
	assert.NoError(t, d.Dispatch(context.Background(), summary()))
}
