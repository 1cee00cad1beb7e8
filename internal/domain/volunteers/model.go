package volunteers

import "shelter-records/internal/platform/civil"

type Volunteer struct {
	ID          int64
	Name        string
	ContactInfo string
	JoinDate    civil.Date

	// AssignedTasks es texto libre.
	AssignedTasks string
}
