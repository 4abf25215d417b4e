package reservation

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

// Spec carries the raw booking form.
type Spec struct {
	Date      schedule.Date
	Time      schedule.TimeOfDay
	Guests    int
	FirstName string
	LastName  string
	PhoneCode string
	Phone     string
	Email     string
	Message   string
}
