package auditrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// Recorder recebe as decisões do gate que valem registro.
type Recorder interface {
	Record(ctx context.Context, event domain.GateEvent) error
}

// AuditRepository grava eventos do gate na tabela gate_events.
type AuditRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAuditRepository cria uma nova instância do AuditRepository, injetando o DB.
func NewAuditRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *AuditRepository {
	return &AuditRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

const insertEventSQL = `INSERT INTO gate_events (id, user_id, path, outcome, reason, created_at)
                        VALUES ($1, $2, $3, $4, $5, $6)`

// Record insere um evento. ID e CreatedAt são preenchidos quando vazios.
func (r *AuditRepository) Record(ctx context.Context, event domain.GateEvent) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctxTimeout, insertEventSQL,
		event.ID,
		event.UserID,
		event.Path,
		string(event.Outcome),
		event.Reason,
		event.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao gravar evento de auditoria no DB.", err)
		return apperror.NewDBError("failed to insert gate event", err)
	}
	return nil
}

// ListByUser retorna os eventos mais recentes de um usuário.
func (r *AuditRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.GateEvent, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const query = `SELECT id, user_id, path, outcome, reason, created_at FROM gate_events
	               WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.DB.QueryContext(ctxTimeout, query, userID, limit)
	if err != nil {
		return nil, apperror.NewDBError("failed to list gate events", err)
	}
	defer rows.Close()

	events := []domain.GateEvent{}
	for rows.Next() {
		var e domain.GateEvent
		var outcome string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Path, &outcome, &e.Reason, &e.CreatedAt); err != nil {
			return nil, apperror.NewDBError("failed to scan gate event", err)
		}
		e.Outcome = domain.GateOutcome(outcome)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate gate events", err)
	}
	return events, nil
}

// NopRecorder descarta os eventos (auditoria desativada, sem DATABASE_URL).
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, domain.GateEvent) error { return nil }
