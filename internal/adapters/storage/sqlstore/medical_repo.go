package sqlstore

import (
	"context"

	"shelter-records/internal/domain/medical"
)

const entityMedicalRecord = "Medical record"

type MedicalRepo struct {
	db *DB
}

func NewMedicalRepo(db *DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

const medicalColumns = `record_id, animal_id, record_date, description, vet_name`

func (r *MedicalRepo) Create(ctx context.Context, m medical.Record) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO medical_records (animal_id, record_date, description, vet_name)
		VALUES (?, ?, ?, ?)
		RETURNING record_id
	`, m.AnimalID, m.Date, m.Description, m.VetName).Scan(&id)
	return id, err
}

func (r *MedicalRepo) GetByID(ctx context.Context, id int64) (medical.Record, error) {
	row := r.db.queryRow(ctx, `SELECT `+medicalColumns+` FROM medical_records WHERE record_id = ?`, id)
	m, err := scanMedical(row)
	if err != nil {
		return medical.Record{}, notFoundOr(err, entityMedicalRecord, id)
	}
	return m, nil
}

func (r *MedicalRepo) List(ctx context.Context) ([]medical.Record, error) {
	rows, err := r.db.query(ctx, `SELECT `+medicalColumns+` FROM medical_records ORDER BY record_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Record, 0)
	for rows.Next() {
		m, err := scanMedical(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicalRepo) Update(ctx context.Context, m medical.Record) error {
	res, err := r.db.exec(ctx, `
		UPDATE medical_records
		SET animal_id = ?, record_date = ?, description = ?, vet_name = ?
		WHERE record_id = ?
	`, m.AnimalID, m.Date, m.Description, m.VetName, m.ID)
	if err != nil {
		return err
	}
	return expectOne(res, entityMedicalRecord, m.ID)
}

func (r *MedicalRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, `DELETE FROM medical_records WHERE record_id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res, entityMedicalRecord, id)
}

func scanMedical(s scanner) (medical.Record, error) {
	var m medical.Record
	err := s.Scan(&m.ID, &m.AnimalID, &m.Date, &m.Description, &m.VetName)
	return m, err
}
