package sqlstore

import (
	"context"

	"shelter-records/internal/domain/adoptions"
)

const entityAdoption = "Adoption application"

type AdoptionsRepo struct {
	db *DB
}

func NewAdoptionsRepo(db *DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `application_id, animal_id, animal_name, applicant_name,
	applicant_contact, applicant_address, application_date, status`

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Application) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO adoption_applications (
			animal_id, animal_name, applicant_name,
			applicant_contact, applicant_address,
			application_date, status
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING application_id
	`,
		a.AnimalID,
		a.AnimalName,
		a.ApplicantName,
		a.ApplicantContact,
		a.ApplicantAddress,
		a.ApplicationDate,
		a.Status,
	).Scan(&id)
	return id, err
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id int64) (adoptions.Application, error) {
	row := r.db.queryRow(ctx, `SELECT `+adoptionColumns+` FROM adoption_applications WHERE application_id = ?`, id)
	a, err := scanAdoption(row)
	if err != nil {
		return adoptions.Application{}, notFoundOr(err, entityAdoption, id)
	}
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Application, error) {
	rows, err := r.db.query(ctx, `SELECT `+adoptionColumns+` FROM adoption_applications ORDER BY application_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Application, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update no toca animal_name: es la foto tomada al crear la solicitud.
func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Application) error {
	res, err := r.db.exec(ctx, `
		UPDATE adoption_applications
		SET
			animal_id = ?,
			applicant_name = ?,
			applicant_contact = ?,
			applicant_address = ?,
			application_date = ?,
			status = ?
		WHERE application_id = ?
	`,
		a.AnimalID,
		a.ApplicantName,
		a.ApplicantContact,
		a.ApplicantAddress,
		a.ApplicationDate,
		a.Status,
		a.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res, entityAdoption, a.ID)
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, `DELETE FROM adoption_applications WHERE application_id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res, entityAdoption, id)
}

func scanAdoption(s scanner) (adoptions.Application, error) {
	var a adoptions.Application
	err := s.Scan(
		&a.ID,
		&a.AnimalID,
		&a.AnimalName,
		&a.ApplicantName,
		&a.ApplicantContact,
		&a.ApplicantAddress,
		&a.ApplicationDate,
		&a.Status,
	)
	return a, err
}
