// internal/domain/models.go
package domain

import "time"

// Categories is the fixed report taxonomy, in output order.
var Categories = []string{"food", "education", "health", "housing", "sport"}

// MaritalStatuses lists the accepted values for User.MaritalStatus.
var MaritalStatuses = []string{"single", "married", "divorced", "widowed"}

type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Birthday      time.Time `json:"birthday"`
	MaritalStatus string    `json:"marital_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Age is the naive year difference, not calendar-accurate.
func (u User) Age() int {
	return time.Now().Year() - u.Birthday.Year()
}

type CostEntry struct {
	ID          string    `json:"-"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UserID      string    `json:"userid"`
	Sum         float64   `json:"sum"`
	Date        time.Time `json:"date"`
}

// MonthlyReport is the memoized per-user, per-month grouping of cost
// entries. Payload holds the canonical serialized report; two reports are
// the same report iff their payloads are byte-equal.
type MonthlyReport struct {
	ID        string    `json:"-"`
	UserID    string    `json:"userid"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Payload   []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
