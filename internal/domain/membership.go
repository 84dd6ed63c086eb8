package domain

import (
	"fmt"
	"strings"
	"time"
)

// MembershipTier уровень клубной программы
type MembershipTier string

const (
	TierSilver   MembershipTier = "SILVER"
	TierGold     MembershipTier = "GOLD"
	TierPlatinum MembershipTier = "PLATINUM"
)

// ParseMembershipTier принимает как код ("PLATINUM"), так и отображаемое имя ("Platinum Membership")
func ParseMembershipTier(s string) (MembershipTier, error) {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, string(TierPlatinum)):
		return TierPlatinum, nil
	case strings.Contains(upper, string(TierGold)):
		return TierGold, nil
	case strings.Contains(upper, string(TierSilver)):
		return TierSilver, nil
	}
	return "", fmt.Errorf("unknown membership tier %q", s)
}

// DiscountEligible скидка на услуги положена только уровню Platinum
func (t MembershipTier) DiscountEligible() bool {
	return t == TierPlatinum
}

// Member участник клубной программы
type Member struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Tier      MembershipTier
	CreatedAt time.Time
}

const (
	EntitlementMaintenanceWash = "Maintenance Wash (Included)"
	EntitlementInteriorClean   = "Deep Interior Clean (Monthly Benefit)"
)

// Entitlements услуги, входящие в подписку уровня
func (t MembershipTier) Entitlements() []string {
	switch t {
	case TierGold, TierPlatinum:
		return []string{EntitlementMaintenanceWash, EntitlementInteriorClean}
	case TierSilver:
		return []string{EntitlementMaintenanceWash}
	}
	return nil
}

// MemberBookingNote пометка для бронирований из кабинета участника
func MemberBookingNote(t MembershipTier) string {
	return fmt.Sprintf("[MEMBER BOOKING] Tier: %s.", t)
}
