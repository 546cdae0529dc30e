package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var datasetName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidateDatasetName checks that name can be used as a dataset name.
func ValidateDatasetName(name string) error {
	if !datasetName.MatchString(name) {
		return fmt.Errorf("%w, got '%s'", ErrDatasetNameInvalid, name)
	}

	return nil
}

// Snapshot contains all collections of a dataset.
type Snapshot struct {
	Expenses []Expense
	Incomes  []Income
	Cards    []Card
	Goals    []SavingsGoal
}

// LoadSnapshot loads all collections of the dataset, each in the order
// the resources were created in.
func LoadSnapshot(tx *gorm.DB, dataset string) (Snapshot, error) {
	var s Snapshot

	for _, dest := range []any{&s.Expenses, &s.Incomes, &s.Cards, &s.Goals} {
		err := tx.Where("dataset = ?", dataset).Order("rowid").Find(dest).Error
		if err != nil {
			return Snapshot{}, err
		}
	}

	return s, nil
}

// ReplaceGoals replaces the stored savings goals of the dataset with goals.
// Timestamps that are set on the goals are kept.
//
// It must be called with a transaction so that readers never see a
// partially written goal set.
func ReplaceGoals(tx *gorm.DB, dataset string, goals []SavingsGoal) error {
	err := tx.Where("dataset = ?", dataset).Delete(&SavingsGoal{}).Error
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	rows := slices.Clone(goals)
	for i := range rows {
		rows[i].Dataset = dataset
	}

	return tx.CreateInBatches(&rows, 100).Error
}

// DeleteDataset deletes all resources of the dataset.
func DeleteDataset(tx *gorm.DB, dataset string) error {
	for _, model := range []any{&SavingsGoal{}, &Expense{}, &Income{}, &Card{}} {
		err := tx.Where("dataset = ?", dataset).Delete(model).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// ExportDataset returns all resources of the dataset, keyed by resource type.
func ExportDataset(tx *gorm.DB, dataset string) (map[string]json.RawMessage, error) {
	resources := make(map[string]json.RawMessage, len(Registry))

	for _, model := range Registry {
		b, err := model.Export(tx, dataset)
		if err != nil {
			return nil, err
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	return resources, nil
}
