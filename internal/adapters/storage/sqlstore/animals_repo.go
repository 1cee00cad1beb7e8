package sqlstore

import (
	"context"
	"database/sql"

	"shelter-records/internal/domain/animals"
)

const entityAnimal = "Animal"

type AnimalsRepo struct {
	db *DB
}

func NewAnimalsRepo(db *DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `animal_id, name, species, breed, age, gender, arrival_date, status`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO animals (name, species, breed, age, gender, arrival_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING animal_id
	`,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		a.Gender,
		a.ArrivalDate,
		a.Status,
	).Scan(&id)
	return id, err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.queryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE animal_id = ?`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, notFoundOr(err, entityAnimal, id)
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.query(ctx, `SELECT `+animalColumns+` FROM animals ORDER BY animal_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.exec(ctx, `
		UPDATE animals
		SET
			name = ?,
			species = ?,
			breed = ?,
			age = ?,
			gender = ?,
			arrival_date = ?,
			status = ?
		WHERE animal_id = ?
	`,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		a.Gender,
		a.ArrivalDate,
		a.Status,
		a.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res, entityAnimal, a.ID)
}

// Delete borra hijos explícitamente además del ON DELETE CASCADE:
// una base sqlite abierta sin foreign_keys no haría cascada.
func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := r.db.exec(ctx, `DELETE FROM medical_records WHERE animal_id = ?`, id); err != nil {
			return err
		}
		if _, err := r.db.exec(ctx, `DELETE FROM adoption_applications WHERE animal_id = ?`, id); err != nil {
			return err
		}
		res, err := r.db.exec(ctx, `DELETE FROM animals WHERE animal_id = ?`, id)
		if err != nil {
			return err
		}
		return expectOne(res, entityAnimal, id)
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var a animals.Animal
	var age sql.NullInt64
	if err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Breed,
		&age,
		&a.Gender,
		&a.ArrivalDate,
		&a.Status,
	); err != nil {
		return animals.Animal{}, err
	}
	if age.Valid {
		v := age.Int64
		a.Age = &v
	}
	return a, nil
}
