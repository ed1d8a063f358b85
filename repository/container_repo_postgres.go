package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"incargo/models"
)

type PostgresContainerRepo struct {
	DB *sql.DB
}

func NewPostgresContainerRepo(db *sql.DB) *PostgresContainerRepo {
	return &PostgresContainerRepo{DB: db}
}

const containerSelect = `
	SELECT
		ct.id, ct.numero_contenedor, ct.tipo, ct.tamano, ct.cliente_id,
		ct.origen, ct.destino, ct.fecha_llegada, ct.fecha_entrega_estimada,
		ct.fecha_entrega_real, ct.estado, ct.ubicacion_actual,
		ct.temperatura_actual, ct.temperatura_objetivo, ct.peso_bruto,
		ct.peso_neto, ct.mercancia, ct.observaciones, ct.numero_bl,
		ct.naviera, ct.buque, ct.viaje, ct.created_at, ct.updated_at,
		c.nombre_empresa, c.contacto_principal
	FROM contenedores ct
	LEFT JOIN clientes c ON ct.cliente_id = c.id
`

func scanContainer(row interface{ Scan(...interface{}) error }) (*models.Container, error) {
	var c models.Container
	var companyName, contact sql.NullString
	err := row.Scan(
		&c.ID, &c.Number, &c.Type, &c.Size, &c.ClientID,
		&c.Origin, &c.Destination, &c.ArrivalDate, &c.EstDelivery,
		&c.ActDelivery, &c.Status, &c.Location,
		&c.CurrentTemp, &c.TargetTemp, &c.GrossWeight,
		&c.NetWeight, &c.Goods, &c.Notes, &c.BillOfLading,
		&c.Carrier, &c.Vessel, &c.Voyage, &c.CreatedAt, &c.UpdatedAt,
		&companyName, &contact,
	)
	if err != nil {
		return nil, err
	}
	if companyName.Valid {
		c.Client = &models.ClientRef{CompanyName: companyName.String, Contact: contact.String}
	}
	return &c, nil
}

func (r *PostgresContainerRepo) queryContainers(query string, args ...interface{}) ([]*models.Container, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Container
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresContainerRepo) GetAll() ([]*models.Container, error) {
	return r.queryContainers(containerSelect + ` ORDER BY ct.created_at DESC`)
}

func (r *PostgresContainerRepo) GetByID(id string) (*models.Container, error) {
	c, err := scanContainer(r.DB.QueryRow(containerSelect+` WHERE ct.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *PostgresContainerRepo) GetByNumber(number string) (*models.Container, error) {
	c, err := scanContainer(r.DB.QueryRow(containerSelect+` WHERE ct.numero_contenedor = $1`, number))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *PostgresContainerRepo) Create(data *models.CreateContainer) (*models.Container, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := r.DB.Exec(`
		INSERT INTO contenedores(
			id, numero_contenedor, tipo, tamano, cliente_id, origen, destino,
			fecha_llegada, fecha_entrega_estimada, estado, ubicacion_actual,
			temperatura_objetivo, peso_bruto, peso_neto, mercancia,
			observaciones, numero_bl, naviera, buque, viaje, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	`, id, data.Number, data.Type, data.Size, data.ClientID, data.Origin, data.Destination,
		data.ArrivalDate, data.EstDelivery, models.ContainerInTransit, data.Location,
		data.TargetTemp, data.GrossWeight, data.NetWeight, data.Goods,
		data.Notes, data.BillOfLading, data.Carrier, data.Vessel, data.Voyage, now, now)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *PostgresContainerRepo) Update(data *models.UpdateContainer) (*models.Container, error) {
	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}

	if data.Number != nil {
		add("numero_contenedor", *data.Number)
	}
	if data.Type != nil {
		add("tipo", *data.Type)
	}
	if data.Size != nil {
		add("tamano", *data.Size)
	}
	if data.ClientID != nil {
		add("cliente_id", *data.ClientID)
	}
	if data.Origin != nil {
		add("origen", *data.Origin)
	}
	if data.Destination != nil {
		add("destino", *data.Destination)
	}
	if data.ArrivalDate != nil {
		add("fecha_llegada", *data.ArrivalDate)
	}
	if data.EstDelivery != nil {
		add("fecha_entrega_estimada", *data.EstDelivery)
	}
	if data.ActDelivery != nil {
		add("fecha_entrega_real", *data.ActDelivery)
	}
	if data.Status != nil {
		add("estado", *data.Status)
	}
	if data.Location != nil {
		add("ubicacion_actual", *data.Location)
	}
	if data.CurrentTemp != nil {
		add("temperatura_actual", *data.CurrentTemp)
	}
	if data.TargetTemp != nil {
		add("temperatura_objetivo", *data.TargetTemp)
	}
	if data.GrossWeight != nil {
		add("peso_bruto", *data.GrossWeight)
	}
	if data.NetWeight != nil {
		add("peso_neto", *data.NetWeight)
	}
	if data.Goods != nil {
		add("mercancia", *data.Goods)
	}
	if data.Notes != nil {
		add("observaciones", *data.Notes)
	}
	if data.BillOfLading != nil {
		add("numero_bl", *data.BillOfLading)
	}
	if data.Carrier != nil {
		add("naviera", *data.Carrier)
	}
	if data.Vessel != nil {
		add("buque", *data.Vessel)
	}
	if data.Voyage != nil {
		add("viaje", *data.Voyage)
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, data.ID)

	query := fmt.Sprintf(`UPDATE contenedores SET %s WHERE id = $%d`, strings.Join(set, ", "), i)
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *PostgresContainerRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM contenedores WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresContainerRepo) GetByStatus(status string) ([]*models.Container, error) {
	return r.queryContainers(containerSelect+` WHERE ct.estado = $1 ORDER BY ct.created_at DESC`, status)
}

func (r *PostgresContainerRepo) GetByClient(clientID string) ([]*models.Container, error) {
	return r.queryContainers(containerSelect+` WHERE ct.cliente_id = $1 ORDER BY ct.created_at DESC`, clientID)
}

func (r *PostgresContainerRepo) GetByType(containerType string) ([]*models.Container, error) {
	return r.queryContainers(containerSelect+` WHERE ct.tipo = $1 ORDER BY ct.created_at DESC`, containerType)
}

func (r *PostgresContainerRepo) GetReefer() ([]*models.Container, error) {
	return r.GetByType(models.ContainerReefer)
}

func (r *PostgresContainerRepo) GetNearDelivery(days int) ([]*models.Container, error) {
	return r.queryContainers(containerSelect+`
		WHERE ct.estado NOT IN ('entregado','devuelto')
		  AND ct.fecha_entrega_estimada <= $1
		ORDER BY ct.fecha_entrega_estimada ASC
	`, dateIn(days))
}

func (r *PostgresContainerRepo) GetOverdue() ([]*models.Container, error) {
	return r.queryContainers(containerSelect+`
		WHERE ct.estado NOT IN ('entregado','devuelto')
		  AND ct.fecha_entrega_estimada < $1
		ORDER BY ct.fecha_entrega_estimada ASC
	`, today())
}

func (r *PostgresContainerRepo) Search(term string) ([]*models.Container, error) {
	pattern := "%" + term + "%"
	return r.queryContainers(containerSelect+`
		WHERE ct.numero_contenedor ILIKE $1 OR ct.numero_bl ILIKE $1
		   OR ct.naviera ILIKE $1 OR ct.mercancia ILIKE $1
		ORDER BY ct.created_at DESC
	`, pattern)
}

// UpdateLocation moves the container and inserts the tracking event in the
// same transaction so the history never disagrees with the current position.
func (r *PostgresContainerRepo) UpdateLocation(id, location, description, user string) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.Exec(`
		UPDATE contenedores SET ubicacion_actual = $1, updated_at = $2 WHERE id = $3
	`, location, now, id)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	if description == "" {
		description = "Ubicación actualizada: " + location
	}
	_, err = tx.Exec(`
		INSERT INTO contenedor_tracking(id, contenedor_id, fecha_evento, ubicacion, descripcion, usuario, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
	`, uuid.NewString(), id, now.Format(time.RFC3339), location, description, user, now)
	if err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *PostgresContainerRepo) UpdateTemperature(id string, temperature float64) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE contenedores SET temperatura_actual = $1, updated_at = $2 WHERE id = $3
	`, temperature, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresContainerRepo) Deliver(id, deliveryDate string) (bool, error) {
	if deliveryDate == "" {
		deliveryDate = today()
	}
	res, err := r.DB.Exec(`
		UPDATE contenedores SET estado = 'entregado', fecha_entrega_real = $1, updated_at = $2
		WHERE id = $3
	`, deliveryDate, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresContainerRepo) AddTrackingEvent(event *models.ContainerTracking) (*models.ContainerTracking, error) {
	ev := *event
	ev.ID = uuid.NewString()
	ev.CreatedAt = time.Now().UTC()
	if ev.EventDate == "" {
		ev.EventDate = ev.CreatedAt.Format(time.RFC3339)
	}
	_, err := r.DB.Exec(`
		INSERT INTO contenedor_tracking(id, contenedor_id, fecha_evento, ubicacion, descripcion, temperatura, usuario, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, ev.ID, ev.ContainerID, ev.EventDate, ev.Location, ev.Description, ev.Temperature, ev.User, ev.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *PostgresContainerRepo) GetTracking(containerID string) ([]*models.ContainerTracking, error) {
	rows, err := r.DB.Query(`
		SELECT id, contenedor_id, fecha_evento, ubicacion, descripcion, temperatura, usuario, created_at
		FROM contenedor_tracking
		WHERE contenedor_id = $1
		ORDER BY created_at DESC
	`, containerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.ContainerTracking
	for rows.Next() {
		var ev models.ContainerTracking
		err := rows.Scan(&ev.ID, &ev.ContainerID, &ev.EventDate, &ev.Location,
			&ev.Description, &ev.Temperature, &ev.User, &ev.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &ev)
	}
	return result, rows.Err()
}
