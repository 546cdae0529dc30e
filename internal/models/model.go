package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Model is implemented by every resource that is stored per dataset.
type Model interface {
	// Export returns all resources of this type for the dataset
	Export(tx *gorm.DB, dataset string) (json.RawMessage, error)
}

// Registry contains every stored resource type, in the order that resources
// are exported.
var Registry = []Model{Card{}, Income{}, Expense{}, SavingsGoal{}}

// DatasetModel is embedded by all stored resources.
//
// The dataset name and the ID of the resource form the primary key, so every
// dataset holds its own independent collections.
type DatasetModel struct {
	Dataset   string    `json:"-" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (m *DatasetModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// export returns all resources of type T in the dataset as JSON.
func export[T any](tx *gorm.DB, dataset string) (json.RawMessage, error) {
	resources := make([]T, 0)
	err := tx.Where("dataset = ?", dataset).Order("rowid").Find(&resources).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(resources)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// validDay reports whether day is nil or in [lo, hi].
func validDay(day *int, lo, hi int) bool {
	return day == nil || (*day >= lo && *day <= hi)
}
