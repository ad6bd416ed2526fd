package model

// Doctor holds one specialty via specialty_id; the association endpoint
// accepts a list for wire compatibility but enforces exactly one element.
type Doctor struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Password      string `db:"password" json:"-"`
	SpecialtyID   int64  `db:"specialty_id" json:"specialtyId"`
	LicenseNumber string `db:"license_number" json:"licenseNumber"`
	Location      string `db:"location" json:"location"`
}

type CreateDoctorRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Specialty     int64  `json:"specialty" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
}

type UpdateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Specialty int64  `json:"specialty" binding:"required"`
}

type AssociateSpecialtiesRequest struct {
	SpecialtyIDs []int64 `json:"specialtyIds" binding:"required"`
}

// DoctorSpecialties is the composite returned by the association endpoint.
type DoctorSpecialties struct {
	DoctorID    int64       `json:"doctorId"`
	Specialties []Specialty `json:"specialties"`
}

// DoctorSearchResult is one row of the doctor search listing, with the
// specialty joined in rather than fetched per doctor.
type DoctorSearchResult struct {
	DoctorID    int64              `json:"doctorId"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Location    string             `json:"location"`
	Specialties []SpecialtySummary `json:"specialties"`
}

// DoctorSearchFilters narrows the doctor search; zero values mean "any".
type DoctorSearchFilters struct {
	SpecialtyID int64
	Location    string
	Day         string
	StartTime   string
	EndTime     string
}
