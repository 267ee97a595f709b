package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const daysInYear = 365

// Client is a patient of the clinic. Clients are archived rather than
// deleted, so a returning patient with a matching name is reactivated with
// their accumulated visit history intact.
type Client struct {
	ID         uuid.UUID      `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	BirthDate  string         `json:"birth_date"`
	RoomNumber int            `json:"room_number"`
	Record     *VisitRecord   `json:"record,omitempty"`
	History    []*VisitRecord `json:"history,omitempty"`
	Active     bool           `json:"active"`
}

func NewClient(roomNumber int, firstName, lastName, birthDate string) *Client {
	return &Client{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		BirthDate:  birthDate,
		RoomNumber: roomNumber,
		Active:     true,
	}
}

// FullName is the display name used in reports.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// MatchesName reports whether the client's names contain the given first and
// last name. Matching is case-sensitive substring containment; this is the
// identity check used for archive recognition and lookups.
func (c *Client) MatchesName(firstName, lastName string) bool {
	return strings.Contains(c.FirstName, firstName) && strings.Contains(c.LastName, lastName)
}

// AttachRecord sets the current visit record and appends it to the history.
func (c *Client) AttachRecord(record *VisitRecord) {
	c.Record = record
	c.History = append(c.History, record)
}

// HasReturnedWithinYear reports whether the client qualifies for the
// returned-within-a-year report. It needs at least two history entries and
// compares every record except the last against now, true on the first one
// less than 365 days away.
//
// TODO: confirm with product whether this should compare visits to each
// other rather than each visit to now; keep the current comparison until
// then, reports depend on it.
func (c *Client) HasReturnedWithinYear(now time.Time) bool {
	if len(c.History) < 2 {
		return false
	}
	for _, record := range c.History[:len(c.History)-1] {
		days, ok := daysFromNow(record, now)
		if ok && days < daysInYear {
			return true
		}
	}
	return false
}

// LapsedOverYear reports whether the client's last history entry is at least
// 365 days away from now. It needs at least two history entries.
//
// Only the most recent entry is inspected; earlier gaps in the history do
// not count as lapses.
func (c *Client) LapsedOverYear(now time.Time) bool {
	if len(c.History) < 2 {
		return false
	}
	days, ok := daysFromNow(c.History[len(c.History)-1], now)
	return ok && days >= daysInYear
}

// daysFromNow is the absolute whole-day distance between a record's timestamp
// and now. Records with unparseable timestamps are skipped.
func daysFromNow(record *VisitRecord, now time.Time) (int64, bool) {
	t, err := time.Parse(TimeLayout, record.RegisteredAt)
	if err != nil {
		return 0, false
	}
	days := int64(now.Sub(t) / (24 * time.Hour))
	if days < 0 {
		days = -days
	}
	return days, true
}

// DisplayInfo renders the client for room listings. Waiting-room occupants
// use the multi-line variant.
func (c *Client) DisplayInfo(inWaitingRoom bool) string {
	complaint := "No Current Record"
	if c.Record != nil {
		complaint = c.Record.ChiefComplaint
	}
	if inWaitingRoom {
		return fmt.Sprintf("First Name: %s\nLast Name: %s\n -Date Of Birth: %s\n -Room Number: %d\n -%s",
			c.FirstName, c.LastName, c.BirthDate, c.RoomNumber, complaint)
	}
	return fmt.Sprintf("First Name: %s, Last Name: %s, Date Of Birth: %s, Room Number: %d, %s",
		c.FirstName, c.LastName, c.BirthDate, c.RoomNumber, complaint)
}
