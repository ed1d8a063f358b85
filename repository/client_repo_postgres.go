package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"incargo/models"
)

type PostgresClientRepo struct {
	DB *sql.DB
}

func NewPostgresClientRepo(db *sql.DB) *PostgresClientRepo {
	return &PostgresClientRepo{DB: db}
}

const clientColumns = `
	id, nombre_empresa, nit, contacto_principal, telefono, email,
	direccion, ciudad, tipo_cliente, estado, fecha_registro,
	servicios_contratados, limite_credito, saldo_pendiente,
	created_at, updated_at
`

func scanClient(row interface{ Scan(...interface{}) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.NIT, &c.Contact, &c.Phone, &c.Email,
		&c.Address, &c.City, &c.Type, &c.Status, &c.RegisteredAt,
		pq.Array(&c.ContractedServices), &c.CreditLimit, &c.PendingBalance,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresClientRepo) queryClients(query string, args ...interface{}) ([]*models.Client, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresClientRepo) GetAll() ([]*models.Client, error) {
	return r.queryClients(`SELECT ` + clientColumns + ` FROM clientes ORDER BY created_at DESC`)
}

func (r *PostgresClientRepo) GetByID(id string) (*models.Client, error) {
	c, err := scanClient(r.DB.QueryRow(`SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *PostgresClientRepo) Create(data *models.CreateClient) (*models.Client, error) {
	now := time.Now().UTC()
	status := data.Status
	if status == "" {
		status = models.ClientActive
	}
	c := &models.Client{
		ID:                 uuid.NewString(),
		CompanyName:        data.CompanyName,
		NIT:                data.NIT,
		Contact:            data.Contact,
		Phone:              data.Phone,
		Email:              data.Email,
		Address:            data.Address,
		City:               data.City,
		Type:               data.Type,
		Status:             status,
		RegisteredAt:       now.Format(dateLayout),
		ContractedServices: append([]string{}, data.ContractedServices...),
		CreditLimit:        data.CreditLimit,
		PendingBalance:     data.PendingBalance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	_, err := r.DB.Exec(`
		INSERT INTO clientes(`+clientColumns+`)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`, c.ID, c.CompanyName, c.NIT, c.Contact, c.Phone, c.Email,
		c.Address, c.City, c.Type, c.Status, c.RegisteredAt,
		pq.Array(c.ContractedServices), c.CreditLimit, c.PendingBalance,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresClientRepo) Update(data *models.UpdateClient) (*models.Client, error) {
	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}

	if data.CompanyName != nil {
		add("nombre_empresa", *data.CompanyName)
	}
	if data.NIT != nil {
		add("nit", *data.NIT)
	}
	if data.Contact != nil {
		add("contacto_principal", *data.Contact)
	}
	if data.Phone != nil {
		add("telefono", *data.Phone)
	}
	if data.Email != nil {
		add("email", *data.Email)
	}
	if data.Address != nil {
		add("direccion", *data.Address)
	}
	if data.City != nil {
		add("ciudad", *data.City)
	}
	if data.Type != nil {
		add("tipo_cliente", *data.Type)
	}
	if data.Status != nil {
		add("estado", *data.Status)
	}
	if data.ContractedServices != nil {
		add("servicios_contratados", pq.Array(*data.ContractedServices))
	}
	if data.CreditLimit != nil {
		add("limite_credito", *data.CreditLimit)
	}
	if data.PendingBalance != nil {
		add("saldo_pendiente", *data.PendingBalance)
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, data.ID)

	query := fmt.Sprintf(`
		UPDATE clientes SET %s WHERE id = $%d
		RETURNING `+clientColumns,
		strings.Join(set, ", "), i)
	c, err := scanClient(r.DB.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *PostgresClientRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresClientRepo) GetByType(clientType string) ([]*models.Client, error) {
	return r.queryClients(`
		SELECT `+clientColumns+` FROM clientes
		WHERE tipo_cliente = $1 ORDER BY created_at DESC
	`, clientType)
}

func (r *PostgresClientRepo) GetActive() ([]*models.Client, error) {
	return r.queryClients(`
		SELECT ` + clientColumns + ` FROM clientes
		WHERE estado = 'activo' ORDER BY nombre_empresa ASC
	`)
}

func (r *PostgresClientRepo) Search(term string) ([]*models.Client, error) {
	pattern := "%" + term + "%"
	return r.queryClients(`
		SELECT `+clientColumns+` FROM clientes
		WHERE nombre_empresa ILIKE $1 OR nit LIKE $1 OR contacto_principal ILIKE $1
		ORDER BY created_at DESC
	`, pattern)
}

func (r *PostgresClientRepo) UpdateBalance(id string, balance float64) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE clientes SET saldo_pendiente = $1, updated_at = $2 WHERE id = $3
	`, balance, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresClientRepo) AddContractedService(id, serviceType string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE clientes
		SET servicios_contratados = array_append(servicios_contratados, $1),
		    updated_at = $2
		WHERE id = $3 AND NOT ($1 = ANY(servicios_contratados))
	`, serviceType, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresClientRepo) GetWithPendingBalance() ([]*models.Client, error) {
	return r.queryClients(`
		SELECT ` + clientColumns + ` FROM clientes
		WHERE saldo_pendiente > 0 ORDER BY saldo_pendiente DESC
	`)
}
