package model

// UserSearchResult is one row of the cross-table admin/doctor/patient search.
type UserSearchResult struct {
	UserID int64  `db:"user_id" json:"userId"`
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"`
	Role   string `db:"role" json:"role"`
}

// UserSearchFilters narrows the search; empty strings mean "any". Role, when
// set, restricts the search to a single user table.
type UserSearchFilters struct {
	Role  string
	Name  string
	Email string
}
