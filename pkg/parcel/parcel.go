package parcel

import "time"

// Status is the delivery state of a parcel.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusScheduled  Status = "SCHEDULED"
	StatusInDelivery Status = "IN_DELIVERY"
	StatusDelivered  Status = "DELIVERED"
)

// Valid reports whether the status is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusScheduled, StatusInDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

// Parcel represents a parcel record. ID never changes after creation.
// Sender and Receipient are set at creation and are not updatable through
// this service. The Receipient spelling is the backing store's field name
// and is kept so the wire format stays stable.
type Parcel struct {
	ID           int64      `json:"id"`
	Status       Status     `json:"status"`
	Sender       string     `json:"sender"`
	Receipient   string     `json:"receipient"`
	Schedule     *time.Time `json:"schedule"`
	DropoffPerms *string    `json:"dropoffPerms"`
}
