package model

type Department struct {
	DepartmentID int64  `db:"department_id" json:"departmentId"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
}
