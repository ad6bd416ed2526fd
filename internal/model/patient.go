package model

// Patient is a registered patient. The password column holds a bcrypt hash
// and is never serialized.
type Patient struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Password    string `db:"password" json:"-"`
	DateOfBirth string `db:"date_of_birth" json:"dateOfBirth"`
	Address     string `db:"address" json:"address"`
}

type CreatePatientRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

type UpdatePatientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
}
