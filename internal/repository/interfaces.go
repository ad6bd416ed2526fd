package repository

import (
	"context"

	"github.com/medicore/clinic-api/internal/model"
)

// Lookups return (nil, nil) when no row matches; mutations with zero
// affected rows return a not-found error.

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	FindByID(ctx context.Context, id int64) (*model.Patient, error)
	FindByName(ctx context.Context, name string) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) (*model.Patient, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	FindByID(ctx context.Context, id int64) (*model.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*model.Doctor, error)
	FindByLicenseNumber(ctx context.Context, license string) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	UpdateSpecialty(ctx context.Context, doctorID, specialtyID int64) error
	Search(ctx context.Context, filters *model.DoctorSearchFilters) ([]*model.DoctorSearchResult, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	FindByID(ctx context.Context, id int64) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Update(ctx context.Context, id int64, name, email string) (*model.Admin, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	FindByID(ctx context.Context, id int64) (*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error)
	Reschedule(ctx context.Context, id int64, date string) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) (*model.MedicalRecord, error)
	FindByID(ctx context.Context, id int64) (*model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error)
	Update(ctx context.Context, record *model.MedicalRecord) (*model.MedicalRecord, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *model.Availability) (*model.Availability, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Availability, error)
}

type SpecialtyRepository interface {
	List(ctx context.Context) ([]*model.Specialty, error)
	FindByID(ctx context.Context, id int64) (*model.Specialty, error)
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]*model.Department, error)
}

type UserRepository interface {
	Search(ctx context.Context, filters *model.UserSearchFilters) ([]*model.UserSearchResult, error)
}
