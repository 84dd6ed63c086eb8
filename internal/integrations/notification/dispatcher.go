package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// Config параметры SMTP
type Config struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	StudioEmail string
}

// Dispatcher отправляет письмо студии и подтверждение клиенту
type Dispatcher struct {
	sender      Sender
	from        string
	studioEmail string
	enabled     bool
	log         Logger
}

// NewDispatcher создает отправителя через SMTP
func NewDispatcher(cfg Config, log Logger) *Dispatcher {
	return &Dispatcher{
		sender:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:        cfg.From,
		studioEmail: cfg.StudioEmail,
		enabled:     cfg.Enabled,
		log:         log,
	}
}

// NewDispatcherWithSender создает включённого отправителя с произвольным Sender
func NewDispatcherWithSender(sender Sender, from, studioEmail string, log Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		from:        from,
		studioEmail: studioEmail,
		enabled:     true,
		log:         log,
	}
}

type messageData struct {
	domain.NotificationSummary
	Currency string
}

// Dispatch отправляет оба письма независимо друг от друга; ошибки объединяются.
// Возвращает ctx.Err(), если отправка не уложилась в контекст
func (d *Dispatcher) Dispatch(ctx context.Context, summary domain.NotificationSummary) error {
	if !d.enabled {
		d.log.Info("Notification: disabled, skipping reservation for %s on %s", summary.CustomerEmail, summary.ScheduledDate)
		return nil
	}

	data := messageData{NotificationSummary: summary, Currency: domain.Currency}
	if data.Notes == "" {
		data.Notes = noNotes
	}

	messages := make([]*gomail.Message, 0, 2)

	if d.studioEmail != "" {
		subject := fmt.Sprintf("New reservation: %s, %s %s", summary.CustomerName, summary.ScheduledDate, summary.ScheduledSlot)
		m, err := d.newMessage(d.studioEmail, subject, studioTemplate, data)
		if err != nil {
			return err
		}
		if summary.CustomerEmail != "" {
			m.SetHeader("Reply-To", summary.CustomerEmail)
		}
		messages = append(messages, m)
	}

	if summary.CustomerEmail != "" {
		subject := fmt.Sprintf("Reservation received: %s %s", summary.ScheduledDate, summary.ScheduledSlot)
		m, err := d.newMessage(summary.CustomerEmail, subject, customerTemplate, data)
		if err != nil {
			return err
		}
		messages = append(messages, m)
	}

	done := make(chan error, 1)
	go func() {
		var errs []error
		for _, m := range messages {
			if err := d.sender.DialAndSend(m); err != nil {
				errs = append(errs, fmt.Errorf("%w: to %v: %v", ErrSend, m.GetHeader("To"), err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
	}

	d.log.Info("Notification: sent %d message(s) for reservation of %s on %s",
		len(messages), summary.CustomerEmail, summary.ScheduledDate)
	return nil
}

func (d *Dispatcher) newMessage(to, subject string, tmpl *template.Template, data messageData) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, tmpl.Name(), err)
	}

	m := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	m.SetHeader("From", d.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body.String())

	return m, nil
}
