package sqlstore

import (
	"context"

	"shelter-records/internal/domain/donations"
)

const entityDonation = "Donation"

type DonationsRepo struct {
	db *DB
}

func NewDonationsRepo(db *DB) *DonationsRepo {
	return &DonationsRepo{db: db}
}

const donationColumns = `donation_id, donor_id, amount, donation_date, method`

func (r *DonationsRepo) Create(ctx context.Context, d donations.Donation) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO donations (donor_id, amount, donation_date, method)
		VALUES (?, ?, ?, ?)
		RETURNING donation_id
	`, d.DonorID, d.Amount.StringFixed(2), d.Date, d.Method).Scan(&id)
	return id, err
}

func (r *DonationsRepo) GetByID(ctx context.Context, id int64) (donations.Donation, error) {
	row := r.db.queryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE donation_id = ?`, id)
	d, err := scanDonation(row)
	if err != nil {
		return donations.Donation{}, notFoundOr(err, entityDonation, id)
	}
	return d, nil
}

func (r *DonationsRepo) List(ctx context.Context) ([]donations.Donation, error) {
	rows, err := r.db.query(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY donation_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donations.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DonationsRepo) Update(ctx context.Context, d donations.Donation) error {
	res, err := r.db.exec(ctx, `
		UPDATE donations
		SET donor_id = ?, amount = ?, donation_date = ?, method = ?
		WHERE donation_id = ?
	`, d.DonorID, d.Amount.StringFixed(2), d.Date, d.Method, d.ID)
	if err != nil {
		return err
	}
	return expectOne(res, entityDonation, d.ID)
}

func (r *DonationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, `DELETE FROM donations WHERE donation_id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res, entityDonation, id)
}

func scanDonation(s scanner) (donations.Donation, error) {
	var d donations.Donation
	err := s.Scan(&d.ID, &d.DonorID, &d.Amount, &d.Date, &d.Method)
	return d, err
}
