package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	appctx "github.com/Nethupa05/NS-Stores-Backend/internal/core/context"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// CompressionAlgo specifies how the changes payload is stored.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry is a single audit log row.
type AuditEntry struct {
	ID                id.ID           `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          id.ID           `db:"entity_id"`
	Action            audit.Action    `db:"action"`
	UserID            string          `db:"user_id"`
	UserEmail         string          `db:"user_email"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditService persists audit entries, compressing large change sets.
// It implements audit.Recorder: writes are best-effort and never fail
// the calling mutation.
type AuditService struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

var (
	_ audit.Recorder  = (*AuditService)(nil)
	_ audit.Historian = (*AuditService)(nil)
)

// NewAuditService creates an audit service.
func NewAuditService(txManager *TxManager) (*AuditService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditService{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record implements audit.Recorder.
func (s *AuditService) Record(ctx context.Context, entityType string, entityID id.ID, action audit.Action, changes map[string]any) {
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		logger.Warn(ctx, "audit: marshal changes failed", "entity_type", entityType, "error", err)
		return
	}

	entry := AuditEntry{
		ID:              id.New(),
		EntityType:      entityType,
		EntityID:        entityID,
		Action:          action,
		Changes:         changesJSON,
		CompressionAlgo: CompressionNone,
		CreatedAt:       time.Now().UTC(),
	}
	if user := appctx.GetUser(ctx); user != nil {
		entry.UserID = user.UserID
		entry.UserEmail = user.Email
	}

	if len(entry.Changes) > s.compressThreshold {
		entry.ChangesCompressed = s.encoder.EncodeAll(entry.Changes, nil)
		entry.Changes = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_audit (
			id, entity_type, entity_id, action, user_id, user_email,
			changes, changes_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.txManager.Querier(ctx).Exec(ctx, sql,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action,
		entry.UserID, entry.UserEmail,
		entry.Changes, entry.ChangesCompressed, entry.CompressionAlgo,
		entry.CreatedAt,
	)
	if err != nil {
		logger.Warn(ctx, "audit: insert failed", "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

// EntityHistory implements audit.Historian. The read runs in a
// read-only transaction and decompresses stored change sets on the
// way out.
func (s *AuditService) EntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]audit.Entry, error) {
	sql := `
		SELECT id, entity_type, entity_id, action, user_id, user_email,
			   changes, changes_compressed, compression_algo, created_at
		FROM sys_audit
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	var entries []audit.Entry
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		rows, err := s.txManager.Querier(ctx).Query(ctx, sql, entityType, entityID, limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var e AuditEntry
			err := rows.Scan(
				&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.UserID, &e.UserEmail,
				&e.Changes, &e.ChangesCompressed, &e.CompressionAlgo, &e.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("scan entry: %w", err)
			}

			if e.CompressionAlgo == CompressionZstd && len(e.ChangesCompressed) > 0 {
				decompressed, err := s.decoder.DecodeAll(e.ChangesCompressed, nil)
				if err != nil {
					return fmt.Errorf("decompress changes: %w", err)
				}
				e.Changes = decompressed
			}

			entries = append(entries, audit.Entry{
				ID:         e.ID,
				EntityType: e.EntityType,
				EntityID:   e.EntityID,
				Action:     e.Action,
				UserID:     e.UserID,
				UserEmail:  e.UserEmail,
				Changes:    e.Changes,
				CreatedAt:  e.CreatedAt,
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
