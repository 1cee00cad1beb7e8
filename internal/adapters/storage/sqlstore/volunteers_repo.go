package sqlstore

import (
	"context"

	"shelter-records/internal/domain/volunteers"
)

const entityVolunteer = "Volunteer"

type VolunteersRepo struct {
	db *DB
}

func NewVolunteersRepo(db *DB) *VolunteersRepo {
	return &VolunteersRepo{db: db}
}

const volunteerColumns = `volunteer_id, name, contact_info, join_date, assigned_tasks`

func (r *VolunteersRepo) Create(ctx context.Context, v volunteers.Volunteer) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO volunteers (name, contact_info, join_date, assigned_tasks)
		VALUES (?, ?, ?, ?)
		RETURNING volunteer_id
	`, v.Name, v.ContactInfo, v.JoinDate, v.AssignedTasks).Scan(&id)
	return id, err
}

func (r *VolunteersRepo) GetByID(ctx context.Context, id int64) (volunteers.Volunteer, error) {
	var v volunteers.Volunteer
	err := r.db.queryRow(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE volunteer_id = ?`, id).
		Scan(&v.ID, &v.Name, &v.ContactInfo, &v.JoinDate, &v.AssignedTasks)
	if err != nil {
		return volunteers.Volunteer{}, notFoundOr(err, entityVolunteer, id)
	}
	return v, nil
}

func (r *VolunteersRepo) List(ctx context.Context) ([]volunteers.Volunteer, error) {
	rows, err := r.db.query(ctx, `SELECT `+volunteerColumns+` FROM volunteers ORDER BY volunteer_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]volunteers.Volunteer, 0)
	for rows.Next() {
		var v volunteers.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactInfo, &v.JoinDate, &v.AssignedTasks); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VolunteersRepo) Update(ctx context.Context, v volunteers.Volunteer) error {
	res, err := r.db.exec(ctx, `
		UPDATE volunteers
		SET name = ?, contact_info = ?, join_date = ?, assigned_tasks = ?
		WHERE volunteer_id = ?
	`, v.Name, v.ContactInfo, v.JoinDate, v.AssignedTasks, v.ID)
	if err != nil {
		return err
	}
	return expectOne(res, entityVolunteer, v.ID)
}

func (r *VolunteersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, `DELETE FROM volunteers WHERE volunteer_id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res, entityVolunteer, id)
}
