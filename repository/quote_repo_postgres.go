package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type PostgresQuoteRepo struct {
	DB *sql.DB
}

func NewPostgresQuoteRepo(db *sql.DB) *PostgresQuoteRepo {
	return &PostgresQuoteRepo{DB: db}
}

const quoteSelect = `
	SELECT
		q.id, q.cliente_id, q.numero_cotizacion, q.tipo_servicio, q.descripcion,
		q.origen, q.destino, q.fecha_solicitud, q.fecha_vencimiento, q.estado,
		q.tipo_carga, q.peso_estimado, q.volumen_estimado, q.valor_estimado,
		q.descuento_porcentaje, q.valor_final, q.observaciones,
		q.terminos_condiciones, q.pdf_path, q.pdf_created_at,
		q.created_at, q.updated_at,
		c.nombre_empresa, c.contacto_principal, c.email
	FROM cotizaciones q
	LEFT JOIN clientes c ON q.cliente_id = c.id
`

func scanQuote(row interface{ Scan(...interface{}) error }) (*models.Quote, error) {
	var q models.Quote
	var companyName, contact, email sql.NullString
	err := row.Scan(
		&q.ID, &q.ClientID, &q.Number, &q.ServiceType, &q.Description,
		&q.Origin, &q.Destination, &q.RequestedAt, &q.ValidUntil, &q.Status,
		&q.CargoType, &q.EstWeight, &q.EstVolume, &q.EstValue,
		&q.DiscountPct, &q.FinalValue, &q.Notes,
		&q.Terms, &q.PDFPath, &q.PDFCreatedAt,
		&q.CreatedAt, &q.UpdatedAt,
		&companyName, &contact, &email,
	)
	if err != nil {
		return nil, err
	}
	if companyName.Valid {
		q.Client = &models.ClientRef{
			CompanyName: companyName.String,
			Contact:     contact.String,
			Email:       email.String,
		}
	}
	return &q, nil
}

func (r *PostgresQuoteRepo) queryQuotes(query string, args ...interface{}) ([]*models.Quote, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	return result, rows.Err()
}

func (r *PostgresQuoteRepo) GetAll() ([]*models.Quote, error) {
	return r.queryQuotes(quoteSelect + ` ORDER BY q.created_at DESC`)
}

func (r *PostgresQuoteRepo) GetByID(id string) (*models.Quote, error) {
	q, err := scanQuote(r.DB.QueryRow(quoteSelect+` WHERE q.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return q, err
}

func (r *PostgresQuoteRepo) Create(data *models.CreateQuote, number string) (*models.Quote, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := r.DB.Exec(`
		INSERT INTO cotizaciones(
			id, cliente_id, numero_cotizacion, tipo_servicio, descripcion,
			origen, destino, fecha_solicitud, fecha_vencimiento, estado,
			tipo_carga, peso_estimado, volumen_estimado, valor_estimado,
			descuento_porcentaje, valor_final, observaciones,
			terminos_condiciones, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`, id, data.ClientID, number, data.ServiceType, data.Description,
		data.Origin, data.Destination, now.Format(dateLayout), data.ValidUntil, models.QuoteDraft,
		data.CargoType, data.EstWeight, data.EstVolume, data.EstValue,
		data.DiscountPct, models.FinalValueFor(data.EstValue, data.DiscountPct),
		data.Notes, data.Terms, now, now)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *PostgresQuoteRepo) Update(data *models.UpdateQuote) (*models.Quote, error) {
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
	if data.ServiceType != nil {
		add("tipo_servicio", *data.ServiceType)
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
	if data.ValidUntil != nil {
		add("fecha_vencimiento", *data.ValidUntil)
	}
	if data.Status != nil {
		add("estado", *data.Status)
	}
	if data.CargoType != nil {
		add("tipo_carga", *data.CargoType)
	}
	if data.EstWeight != nil {
		add("peso_estimado", *data.EstWeight)
	}
	if data.EstVolume != nil {
		add("volumen_estimado", *data.EstVolume)
	}
	if data.Notes != nil {
		add("observaciones", *data.Notes)
	}
	if data.Terms != nil {
		add("terminos_condiciones", *data.Terms)
	}

	// Recompute the derived price when either input moves. The current row
	// supplies whichever of the two the patch leaves untouched.
	if data.EstValue != nil || data.DiscountPct != nil {
		current, err := r.GetByID(data.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		estValue := current.EstValue
		discount := current.DiscountPct
		if data.EstValue != nil {
			estValue = *data.EstValue
			add("valor_estimado", estValue)
		}
		if data.DiscountPct != nil {
			discount = *data.DiscountPct
			add("descuento_porcentaje", discount)
		}
		add("valor_final", models.FinalValueFor(estValue, discount))
	}

	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, data.ID)

	query := fmt.Sprintf(`UPDATE cotizaciones SET %s WHERE id = $%d`, strings.Join(set, ", "), i)
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *PostgresQuoteRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM cotizaciones WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresQuoteRepo) GetByStatus(status string) ([]*models.Quote, error) {
	return r.queryQuotes(quoteSelect+` WHERE q.estado = $1 ORDER BY q.created_at DESC`, status)
}

func (r *PostgresQuoteRepo) GetByClient(clientID string) ([]*models.Quote, error) {
	return r.queryQuotes(quoteSelect+` WHERE q.cliente_id = $1 ORDER BY q.created_at DESC`, clientID)
}

func (r *PostgresQuoteRepo) GetByDateRange(startDate, endDate string) ([]*models.Quote, error) {
	return r.queryQuotes(quoteSelect+`
		WHERE q.fecha_solicitud >= $1 AND q.fecha_solicitud <= $2
		ORDER BY q.fecha_solicitud DESC
	`, startDate, endDate)
}

func (r *PostgresQuoteRepo) GetExpired(todayDate string) ([]*models.Quote, error) {
	return r.queryQuotes(quoteSelect+`
		WHERE q.fecha_vencimiento < $1 AND q.estado IN ('borrador','enviada')
		ORDER BY q.fecha_vencimiento ASC
	`, todayDate)
}

func (r *PostgresQuoteRepo) MarkExpired(todayDate string) (int, error) {
	res, err := r.DB.Exec(`
		UPDATE cotizaciones SET estado = 'vencida', updated_at = $1
		WHERE fecha_vencimiento < $2 AND estado IN ('borrador','enviada')
	`, time.Now().UTC(), todayDate)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *PostgresQuoteRepo) UpdateStatus(id, status string, from ...string) (bool, error) {
	args := []interface{}{status, time.Now().UTC(), id}
	query := `UPDATE cotizaciones SET estado = $1, updated_at = $2 WHERE id = $3`
	if len(from) > 0 {
		ph := make([]string, len(from))
		for i, f := range from {
			ph[i] = fmt.Sprintf("$%d", i+4)
			args = append(args, f)
		}
		query += ` AND estado IN (` + strings.Join(ph, ",") + `)`
	}
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresQuoteRepo) LatestNumber(prefix string) (string, error) {
	var number string
	err := r.DB.QueryRow(`
		SELECT numero_cotizacion FROM cotizaciones
		WHERE numero_cotizacion LIKE $1
		ORDER BY numero_cotizacion DESC LIMIT 1
	`, prefix+"%").Scan(&number)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return number, err
}

func (r *PostgresQuoteRepo) UpdatePDFInfo(id, path string, createdAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE cotizaciones SET pdf_path = $1, pdf_created_at = $2 WHERE id = $3
	`, path, createdAt, id)
	return err
}
