package tracker

import (
	"context"
	"encoding/json"

	"github.com/weekly-savings/backend/internal/models"
	"gorm.io/gorm"
)

// Export returns all resources of the dataset, keyed by resource type.
func (t *Tracker) Export(ctx context.Context, dataset string) (map[string]json.RawMessage, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return nil, err
	}

	return models.ExportDataset(db, dataset)
}

// DeleteDataset deletes every resource of the dataset.
func (t *Tracker) DeleteDataset(ctx context.Context, dataset string) error {
	return t.write(ctx, dataset, func(tx *gorm.DB) error {
		return models.DeleteDataset(tx, dataset)
	})
}
