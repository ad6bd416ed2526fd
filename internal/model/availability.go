package model

// Availability is the canonical doctor-level shape: one row per slot with an
// ordered list of weekday names stored as a JSON text column.
type Availability struct {
	AvailabilityID int64    `db:"availability_id" json:"availabilityId"`
	DoctorID       int64    `db:"doctor_id" json:"doctorId"`
	StartTime      string   `db:"start_time" json:"startTime"`
	EndTime        string   `db:"end_time" json:"endTime"`
	Days           []string `db:"-" json:"days"`
}

type SetAvailabilityRequest struct {
	StartTime string   `json:"startTime" binding:"required,timehhmm"`
	EndTime   string   `json:"endTime" binding:"required,timehhmm"`
	Days      []string `json:"days" binding:"required,min=1"`
}
