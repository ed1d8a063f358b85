package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type PostgresVehicleRepo struct {
	DB *sql.DB
}

func NewPostgresVehicleRepo(db *sql.DB) *PostgresVehicleRepo {
	return &PostgresVehicleRepo{DB: db}
}

const vehicleColumns = `
	id, placa, tipo, modelo, marca, anio, conductor, estado,
	soat_vence, tecno_vence, ubicacion_actual, kilometraje,
	capacidad_toneladas, created_at, updated_at
`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID, &v.Plate, &v.Type, &v.Model, &v.Make, &v.Year, &v.Driver, &v.Status,
		&v.SoatExpiry, &v.TechExpiry, &v.Location, &v.Kilometers,
		&v.CapacityTons, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresVehicleRepo) queryVehicles(query string, args ...interface{}) ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *PostgresVehicleRepo) GetAll() ([]*models.Vehicle, error) {
	return r.queryVehicles(`SELECT ` + vehicleColumns + ` FROM vehiculos ORDER BY created_at DESC`)
}

func (r *PostgresVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	v, err := scanVehicle(r.DB.QueryRow(`SELECT `+vehicleColumns+` FROM vehiculos WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return v, err
}

func (r *PostgresVehicleRepo) Create(data *models.CreateVehicle) (*models.Vehicle, error) {
	now := time.Now().UTC()
	status := data.Status
	if status == "" {
		status = models.VehicleAvailable
	}
	v := &models.Vehicle{
		ID:           uuid.NewString(),
		Plate:        data.Plate,
		Type:         data.Type,
		Model:        data.Model,
		Make:         data.Make,
		Year:         data.Year,
		Driver:       data.Driver,
		Status:       status,
		SoatExpiry:   data.SoatExpiry,
		TechExpiry:   data.TechExpiry,
		Location:     data.Location,
		Kilometers:   data.Kilometers,
		CapacityTons: data.CapacityTons,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.DB.Exec(`
		INSERT INTO vehiculos(`+vehicleColumns+`)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`, v.ID, v.Plate, v.Type, v.Model, v.Make, v.Year, v.Driver, v.Status,
		v.SoatExpiry, v.TechExpiry, v.Location, v.Kilometers, v.CapacityTons,
		v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PostgresVehicleRepo) Update(data *models.UpdateVehicle) (*models.Vehicle, error) {
	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}

	if data.Plate != nil {
		add("placa", *data.Plate)
	}
	if data.Type != nil {
		add("tipo", *data.Type)
	}
	if data.Model != nil {
		add("modelo", *data.Model)
	}
	if data.Make != nil {
		add("marca", *data.Make)
	}
	if data.Year != nil {
		add("anio", *data.Year)
	}
	if data.Driver != nil {
		add("conductor", *data.Driver)
	}
	if data.Status != nil {
		add("estado", *data.Status)
	}
	if data.SoatExpiry != nil {
		add("soat_vence", *data.SoatExpiry)
	}
	if data.TechExpiry != nil {
		add("tecno_vence", *data.TechExpiry)
	}
	if data.Location != nil {
		add("ubicacion_actual", *data.Location)
	}
	if data.Kilometers != nil {
		add("kilometraje", *data.Kilometers)
	}
	if data.CapacityTons != nil {
		add("capacidad_toneladas", *data.CapacityTons)
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, data.ID)

	query := fmt.Sprintf(`
		UPDATE vehiculos SET %s WHERE id = $%d
		RETURNING `+vehicleColumns,
		strings.Join(set, ", "), i)
	v, err := scanVehicle(r.DB.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return v, err
}

func (r *PostgresVehicleRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresVehicleRepo) GetByStatus(status string) ([]*models.Vehicle, error) {
	return r.queryVehicles(`
		SELECT `+vehicleColumns+` FROM vehiculos
		WHERE estado = $1 ORDER BY created_at DESC
	`, status)
}

func (r *PostgresVehicleRepo) GetNearExpiry(days int) ([]*models.Vehicle, error) {
	cutoff := dateIn(days)
	return r.queryVehicles(`
		SELECT `+vehicleColumns+` FROM vehiculos
		WHERE soat_vence <= $1 OR tecno_vence <= $1
		ORDER BY soat_vence ASC
	`, cutoff)
}

func (r *PostgresVehicleRepo) UpdateLocation(id, location string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE vehiculos SET ubicacion_actual = $1, updated_at = $2 WHERE id = $3
	`, location, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresVehicleRepo) UpdateKilometers(id string, km int) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE vehiculos SET kilometraje = $1, updated_at = $2 WHERE id = $3
	`, km, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
