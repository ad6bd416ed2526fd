package model

type AppointmentStatus string

const (
	AppointmentStatusBooked      AppointmentStatus = "Booked"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// Appointment dates travel as ISO-8601 strings end to end.
type Appointment struct {
	AppointmentID   int64             `db:"appointment_id" json:"appointmentId"`
	PatientID       int64             `db:"patient_id" json:"patientId"`
	DoctorID        int64             `db:"doctor_id" json:"doctorId"`
	AppointmentDate string            `db:"appointment_date" json:"appointmentDate"`
	Reason          string            `db:"reason" json:"reason"`
	Status          AppointmentStatus `db:"status" json:"status"`
}

type BookAppointmentRequest struct {
	PatientID       int64  `json:"patientId" binding:"required"`
	DoctorID        int64  `json:"doctorId" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointmentDate" binding:"required"`
}
