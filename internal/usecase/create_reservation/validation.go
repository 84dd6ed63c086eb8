package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// validateRequest валидирует входные данные онлайн-бронирования
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if err := validateEmail(req.CustomerEmail); err != nil {
		return err
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return validateSelection(req.Services, req.Date, req.SlotID)
}

// validateMemberRequest валидирует входные данные бронирования участника
func validateMemberRequest(req *MemberRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if strings.TrimSpace(req.VehicleDescription) == "" {
		return fmt.Errorf("%w: vehicle description is required", ErrInvalidInput)
	}

	return validateSelection(req.Services, req.Date, req.SlotID)
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateSelection(services []string, date time.Time, slotID string) error {
	if len(services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per reservation", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(slotID) == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	return nil
}

// validateDate запись возможна с завтрашнего дня и не дальше domain.BookingHorizonDays
func validateDate(date, now time.Time) error {
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if !day.After(today) {
		return ErrInvalidDate
	}

	if day.After(today.AddDate(0, 0, domain.BookingHorizonDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.BookingHorizonDays)
	}

	return nil
}

// validateEntitlements проверяет, что все услуги входят в подписку, и убирает повторы
func validateEntitlements(services []string, tier domain.MembershipTier) ([]string, error) {
	entitled := make(map[string]struct{})
	for _, name := range tier.Entitlements() {
		entitled[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(services))
	result := make([]string, 0, len(services))
	for _, name := range services {
		if _, ok := entitled[name]; !ok {
			return nil, fmt.Errorf("%w: %q for tier %s", ErrServiceNotEntitled, name, tier)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result, nil
}
