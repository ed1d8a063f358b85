package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"incargo/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

// Save keeps a single configuracion row, replacing whatever was there.
func (r *PostgresCompanyRepo) Save(profile *models.CompanyProfile) error {
	phones, err := json.Marshal(profile.Phones)
	if err != nil {
		return err
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM configuracion`); err != nil {
		return err
	}
	err = tx.QueryRow(`
		INSERT INTO configuracion(nombre_empresa, nit, direccion, ciudad, email, pie_pagina, telefonos, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, profile.Name, profile.NIT, profile.Address, profile.City, profile.Email,
		profile.Footnote, phones, profile.CreatedAt).Scan(&profile.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresCompanyRepo) Get() (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	var phones []byte
	err := r.DB.QueryRow(`
		SELECT id, nombre_empresa, nit, direccion, ciudad, email, pie_pagina, telefonos, created_at
		FROM configuracion ORDER BY id DESC LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.NIT, &p.Address, &p.City, &p.Email, &p.Footnote, &phones, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(phones, &p.Phones); err != nil {
		return nil, err
	}
	return &p, nil
}
