package queries

import (
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanIDs collects a single uuid column from an executed raw query.
func scanIDs(tx *gorm.DB) ([]kernel.UUID, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var rawID uuid.UUID
		if err = rows.Scan(&rawID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
