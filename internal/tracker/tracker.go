// Package tracker implements the operations of the savings tracker on top
// of the stored datasets.
//
// Every mutation of a dataset is serialized and runs in a single database
// transaction together with the regeneration of the savings goals it causes.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/savings"
	"github.com/weekly-savings/backend/internal/types"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

type Tracker struct {
	now      func() time.Time
	location *time.Location
	currency currency.Unit

	// dataset name to *sync.Mutex
	locks sync.Map
}

type Option func(*Tracker)

// WithClock sets the function used to get the current time.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLocation sets the time zone that defines the current day.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		t.location = loc
	}
}

// WithCurrency sets the currency reported in summaries.
func WithCurrency(unit currency.Unit) Option {
	return func(t *Tracker) {
		t.currency = unit
	}
}

func New(opts ...Option) *Tracker {
	t := &Tracker{
		now:      time.Now,
		location: time.Local,
		currency: currency.MXN,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Today returns the current day in the time zone of the tracker.
func (t *Tracker) Today() types.Date {
	return types.DateOf(t.now().In(t.location))
}

func (t *Tracker) lock(dataset string) *sync.Mutex {
	m, _ := t.locks.LoadOrStore(dataset, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// read returns a database handle for reads from the dataset.
func (t *Tracker) read(ctx context.Context, dataset string) (*gorm.DB, error) {
	if err := models.ValidateDatasetName(dataset); err != nil {
		return nil, err
	}

	return models.DB.WithContext(ctx), nil
}

// write runs fn in a transaction while holding the lock of the dataset.
func (t *Tracker) write(ctx context.Context, dataset string, fn func(tx *gorm.DB) error) error {
	if err := models.ValidateDatasetName(dataset); err != nil {
		return err
	}

	mu := t.lock(dataset)
	mu.Lock()
	defer mu.Unlock()

	return models.GeneralError(models.DB.WithContext(ctx).Transaction(fn))
}

// snapshot loads all collections of the dataset consistently.
func (t *Tracker) snapshot(ctx context.Context, dataset string) (models.Snapshot, error) {
	var s models.Snapshot

	if err := models.ValidateDatasetName(dataset); err != nil {
		return s, err
	}

	err := models.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		s, err = models.LoadSnapshot(tx, dataset)
		return
	})

	return s, models.GeneralError(err)
}

// regenerate computes the goals of the dataset and replaces the stored ones.
func (t *Tracker) regenerate(tx *gorm.DB, dataset string) ([]models.SavingsGoal, error) {
	start := time.Now()

	goals, err := t.generate(tx, dataset)
	observeRegeneration(dataset, len(goals), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("dataset", dataset).Int("goals", len(goals)).Dur("duration", time.Since(start)).Msg("regenerated savings goals")
	return goals, nil
}

func (t *Tracker) generate(tx *gorm.DB, dataset string) ([]models.SavingsGoal, error) {
	s, err := models.LoadSnapshot(tx, dataset)
	if err != nil {
		return nil, err
	}

	goals := savings.Generate(s.Expenses, s.Incomes, s.Goals, t.Today())

	err = models.ReplaceGoals(tx, dataset, goals)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// Regenerate recomputes the savings goals of the dataset.
func (t *Tracker) Regenerate(ctx context.Context, dataset string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal

	err := t.write(ctx, dataset, func(tx *gorm.DB) (err error) {
		goals, err = t.regenerate(tx, dataset)
		return
	})

	return goals, err
}
