package domain

import "time"

// BookingType represents a category of reservable service. Each booking type
// owns its weekly slot time patterns and defines the fixed slot length used
// by the generator.
type BookingType struct {
	ID                int64
	Title             string
	Slug              string
	SlotLengthMinutes int
	Intro             string

	// Notification settings for the claim flow
	NotificationEmailsEnable bool
	NotificationEmails       []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidSlotLength returns true if the configured slot length is usable
// by the generator.
func (bt *BookingType) HasValidSlotLength() bool {
	return bt.SlotLengthMinutes >= MinSlotLengthMinutes &&
		bt.SlotLengthMinutes <= MaxSlotLengthMinutes
}

// NotificationsEnabled returns true if operator notifications should be
// dispatched for this booking type.
func (bt *BookingType) NotificationsEnabled() bool {
	return bt.NotificationEmailsEnable && len(bt.NotificationEmails) > 0
}
