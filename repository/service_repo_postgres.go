package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type PostgresServiceRepo struct {
	DB *sql.DB
}

func NewPostgresServiceRepo(db *sql.DB) *PostgresServiceRepo {
	return &PostgresServiceRepo{DB: db}
}

// The joins pull the denormalized client and vehicle slices the frontend
// renders on every row.
const serviceSelect = `
	SELECT
		s.id, s.cliente_id, s.tipo_servicio, s.descripcion, s.origen, s.destino,
		s.fecha_inicio, s.fecha_estimada, s.fecha_completado, s.estado,
		s.vehiculo_id, s.conductor, s.carga_tipo, s.peso_kg, s.valor_total,
		s.observaciones, s.created_at, s.updated_at,
		c.nombre_empresa, c.contacto_principal,
		v.placa, v.tipo
	FROM servicios s
	LEFT JOIN clientes c ON s.cliente_id = c.id
	LEFT JOIN vehiculos v ON s.vehiculo_id = v.id
`

func scanService(row interface{ Scan(...interface{}) error }) (*models.Service, error) {
	var s models.Service
	var companyName, contact sql.NullString
	var plate, vehicleType sql.NullString
	err := row.Scan(
		&s.ID, &s.ClientID, &s.Type, &s.Description, &s.Origin, &s.Destination,
		&s.StartDate, &s.DueDate, &s.CompletedAt, &s.Status,
		&s.VehicleID, &s.Driver, &s.CargoType, &s.WeightKG, &s.TotalValue,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&companyName, &contact,
		&plate, &vehicleType,
	)
	if err != nil {
		return nil, err
	}
	if companyName.Valid {
		s.Client = &models.ClientRef{CompanyName: companyName.String, Contact: contact.String}
	}
	if plate.Valid {
		s.Vehicle = &models.VehicleRef{Plate: plate.String, Type: vehicleType.String}
	}
	return &s, nil
}

func (r *PostgresServiceRepo) queryServices(query string, args ...interface{}) ([]*models.Service, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *PostgresServiceRepo) GetAll() ([]*models.Service, error) {
	return r.queryServices(serviceSelect + ` ORDER BY s.created_at DESC`)
}

func (r *PostgresServiceRepo) GetByID(id string) (*models.Service, error) {
	s, err := scanService(r.DB.QueryRow(serviceSelect+` WHERE s.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *PostgresServiceRepo) Create(data *models.CreateService) (*models.Service, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := r.DB.Exec(`
		INSERT INTO servicios(
			id, cliente_id, tipo_servicio, descripcion, origen, destino,
			fecha_inicio, fecha_estimada, estado, vehiculo_id, conductor,
			carga_tipo, peso_kg, valor_total, observaciones, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`, id, data.ClientID, data.Type, data.Description, data.Origin, data.Destination,
		data.StartDate, data.DueDate, models.ServicePending, data.VehicleID, data.Driver,
		data.CargoType, data.WeightKG, data.TotalValue, data.Notes, now, now)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *PostgresServiceRepo) Update(data *models.UpdateService) (*models.Service, error) {
	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}

	if data.ClientID != nil {
		add("cliente_id", *data.ClientID)
	}
	if data.Type != nil {
		add("tipo_servicio", *data.Type)
	}
	if data.Description != nil {
		add("descripcion", *data.Description)
	}
	if data.Origin != nil {
		add("origen", *data.Origin)
	}
	if data.Destination != nil {
		add("destino", *data.Destination)
	}
	if data.StartDate != nil {
		add("fecha_inicio", *data.StartDate)
	}
	if data.DueDate != nil {
		add("fecha_estimada", *data.DueDate)
	}
	if data.CompletedAt != nil {
		add("fecha_completado", *data.CompletedAt)
	}
	if data.Status != nil {
		add("estado", *data.Status)
	}
	if data.VehicleID != nil {
		add("vehiculo_id", *data.VehicleID)
	}
	if data.Driver != nil {
		add("conductor", *data.Driver)
	}
	if data.CargoType != nil {
		add("carga_tipo", *data.CargoType)
	}
	if data.WeightKG != nil {
		add("peso_kg", *data.WeightKG)
	}
	if data.TotalValue != nil {
		add("valor_total", *data.TotalValue)
	}
	if data.Notes != nil {
		add("observaciones", *data.Notes)
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, data.ID)

	query := fmt.Sprintf(`UPDATE servicios SET %s WHERE id = $%d`, strings.Join(set, ", "), i)
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *PostgresServiceRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM servicios WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresServiceRepo) GetByStatus(status string) ([]*models.Service, error) {
	return r.queryServices(serviceSelect+` WHERE s.estado = $1 ORDER BY s.created_at DESC`, status)
}

func (r *PostgresServiceRepo) GetByClient(clientID string) ([]*models.Service, error) {
	return r.queryServices(serviceSelect+` WHERE s.cliente_id = $1 ORDER BY s.created_at DESC`, clientID)
}

func (r *PostgresServiceRepo) GetByVehicle(vehicleID string) ([]*models.Service, error) {
	return r.queryServices(serviceSelect+` WHERE s.vehiculo_id = $1 ORDER BY s.created_at DESC`, vehicleID)
}

func (r *PostgresServiceRepo) GetByDateRange(startDate, endDate string) ([]*models.Service, error) {
	return r.queryServices(serviceSelect+`
		WHERE s.fecha_inicio >= $1 AND s.fecha_inicio <= $2
		ORDER BY s.fecha_inicio DESC
	`, startDate, endDate)
}

func (r *PostgresServiceRepo) GetActive() ([]*models.Service, error) {
	return r.queryServices(serviceSelect + `
		WHERE s.estado IN ('pendiente','en_proceso')
		ORDER BY s.created_at DESC
	`)
}

func (r *PostgresServiceRepo) GetOverdue() ([]*models.Service, error) {
	return r.queryServices(serviceSelect+`
		WHERE s.estado IN ('pendiente','en_proceso') AND s.fecha_estimada < $1
		ORDER BY s.fecha_estimada ASC
	`, today())
}

func (r *PostgresServiceRepo) UpdateStatus(id, status string) (bool, error) {
	now := time.Now().UTC()
	var res sql.Result
	var err error
	if status == models.ServiceCompleted {
		res, err = r.DB.Exec(`
			UPDATE servicios SET estado = $1, fecha_completado = $2, updated_at = $3 WHERE id = $4
		`, status, now.Format(time.RFC3339), now, id)
	} else {
		res, err = r.DB.Exec(`
			UPDATE servicios SET estado = $1, updated_at = $2 WHERE id = $3
		`, status, now, id)
	}
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresServiceRepo) Cancel(id, reason string) (bool, error) {
	now := time.Now().UTC()
	var res sql.Result
	var err error
	if reason != "" {
		res, err = r.DB.Exec(`
			UPDATE servicios SET estado = 'cancelado', observaciones = $1, updated_at = $2 WHERE id = $3
		`, reason, now, id)
	} else {
		res, err = r.DB.Exec(`
			UPDATE servicios SET estado = 'cancelado', updated_at = $1 WHERE id = $2
		`, now, id)
	}
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresServiceRepo) AssignVehicle(serviceID, vehicleID string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE servicios SET vehiculo_id = $1, updated_at = $2 WHERE id = $3
	`, vehicleID, time.Now().UTC(), serviceID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresServiceRepo) RevenueByPeriod(startDate, endDate string) (float64, error) {
	var total float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(valor_total), 0) FROM servicios
		WHERE estado = 'completado' AND fecha_inicio >= $1 AND fecha_inicio <= $2
	`, startDate, endDate).Scan(&total)
	return total, err
}
