package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"shelter-records/internal/domain/donors"
)

const entityDonor = "Donor"

type DonorsRepo struct {
	db *DB
}

func NewDonorsRepo(db *DB) *DonorsRepo {
	return &DonorsRepo{db: db}
}

func (r *DonorsRepo) Create(ctx context.Context, d donors.Donor) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO donors (name, contact_info) VALUES (?, ?)
		RETURNING donor_id
	`, d.Name, d.ContactInfo).Scan(&id)
	return id, err
}

func (r *DonorsRepo) GetByID(ctx context.Context, id int64) (donors.Donor, error) {
	var d donors.Donor
	err := r.db.queryRow(ctx, `SELECT donor_id, name, contact_info FROM donors WHERE donor_id = ?`, id).
		Scan(&d.ID, &d.Name, &d.ContactInfo)
	if err != nil {
		return donors.Donor{}, notFoundOr(err, entityDonor, id)
	}
	return d, nil
}

func (r *DonorsRepo) FindByName(ctx context.Context, name string) (donors.Donor, bool, error) {
	var d donors.Donor
	err := r.db.queryRow(ctx, `
		SELECT donor_id, name, contact_info
		FROM donors
		WHERE name = ?
		ORDER BY donor_id ASC
		LIMIT 1
	`, name).Scan(&d.ID, &d.Name, &d.ContactInfo)
	if errors.Is(err, sql.ErrNoRows) {
		return donors.Donor{}, false, nil
	}
	if err != nil {
		return donors.Donor{}, false, err
	}
	return d, true, nil
}

func (r *DonorsRepo) LockName(ctx context.Context, name string) error {
	return r.db.lockKey(ctx, "donor", name)
}

func (r *DonorsRepo) List(ctx context.Context) ([]donors.Donor, error) {
	rows, err := r.db.query(ctx, `SELECT donor_id, name, contact_info FROM donors ORDER BY donor_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donors.Donor, 0)
	for rows.Next() {
		var d donors.Donor
		if err := rows.Scan(&d.ID, &d.Name, &d.ContactInfo); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DonorsRepo) Update(ctx context.Context, d donors.Donor) error {
	res, err := r.db.exec(ctx, `UPDATE donors SET name = ?, contact_info = ? WHERE donor_id = ?`,
		d.Name, d.ContactInfo, d.ID)
	if err != nil {
		return err
	}
	return expectOne(res, entityDonor, d.ID)
}

func (r *DonorsRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := r.db.exec(ctx, `DELETE FROM donations WHERE donor_id = ?`, id); err != nil {
			return err
		}
		res, err := r.db.exec(ctx, `DELETE FROM donors WHERE donor_id = ?`, id)
		if err != nil {
			return err
		}
		return expectOne(res, entityDonor, id)
	})
}
