package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/medicore/clinic-api/internal/model"
	"github.com/medicore/clinic-api/internal/repository"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Search spans admins, doctors and patients in one statement; a role filter
// narrows it to a single table, otherwise the three are UNIONed.
func (r *userRepository) Search(ctx context.Context, filters *model.UserSearchFilters) ([]*model.UserSearchResult, error) {
	ctx, cancel := r.db.StatementContext(ctx)
	defer cancel()

	var query string
	var params []interface{}

	switch strings.ToLower(filters.Role) {
	case "admin":
		query, params = roleQuery("admins", "Admin", filters)
	case "doctor":
		query, params = roleQuery("doctors", "Doctor", filters)
	case "patient":
		query, params = roleQuery("patients", "Patient", filters)
	default:
		adminQ, adminP := roleQuery("admins", "Admin", filters)
		doctorQ, doctorP := roleQuery("doctors", "Doctor", filters)
		patientQ, patientP := roleQuery("patients", "Patient", filters)
		query = adminQ + " UNION " + doctorQ + " UNION " + patientQ
		params = append(params, adminP...)
		params = append(params, doctorP...)
		params = append(params, patientP...)
	}

	var users []*model.UserSearchResult
	if err := r.db.SelectContext(ctx, &users, query, params...); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if users == nil {
		users = []*model.UserSearchResult{}
	}
	return users, nil
}

func roleQuery(table, role string, filters *model.UserSearchFilters) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	params := make([]interface{}, 0, 2)

	if filters.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		params = append(params, "%"+filters.Name+"%")
	}
	if filters.Email != "" {
		conditions = append(conditions, "email LIKE ?")
		params = append(params, "%"+filters.Email+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT id AS user_id, name, email, '%s' AS role FROM %s%s", role, table, where)
	return query, params
}
