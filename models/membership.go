package models

import "time"

const (
	MembershipTypeGold   = "gold"
	MembershipTypeSilver = "silver"
)

// Membership is a VIP discount entitlement, looked up by number when a
// booking carries a vipNumber. The booking flow never mutates it.
type Membership struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	MembershipNumber string    `gorm:"uniqueIndex;not null" json:"membershipNumber"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Type             string    `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt        time.Time `json:"createdAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// Expired reports whether the membership is past its expiry at the given time.
func (m *Membership) Expired(now time.Time) bool {
	return !m.ExpiresAt.IsZero() && m.ExpiresAt.Before(now)
}
