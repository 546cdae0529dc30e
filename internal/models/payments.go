package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Payment is a single payment of an installment plan.
type Payment struct {
	Amount decimal.Decimal `json:"amount" example:"1250"`
	Paid   bool            `json:"paid" example:"false"`
}

// Payments are the payments of an installment plan, stored as JSON
// in a single column.
type Payments []Payment

// EvenPayments returns count unpaid payments of total / count each.
func EvenPayments(total decimal.Decimal, count int) Payments {
	if count <= 0 {
		return Payments{}
	}

	amount := total.Div(decimal.NewFromInt(int64(count)))
	payments := make(Payments, count)
	for i := range payments {
		payments[i] = Payment{Amount: amount}
	}

	return payments
}

// NextUnpaid returns the index of the first payment that is not paid.
// It is -1 if all payments are paid.
func (p Payments) NextUnpaid() int {
	for i, payment := range p {
		if !payment.Paid {
			return i
		}
	}

	return -1
}

// Scan writes the value from the database.
func (p *Payments) Scan(value any) error {
	var data []byte

	switch v := value.(type) {
	case nil:
		*p = Payments{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into payments", value)
	}

	if len(data) == 0 {
		*p = Payments{}
		return nil
	}

	return json.Unmarshal(data, p)
}

// Value returns the value for the SQL driver to write to the database.
func (p Payments) Value() (driver.Value, error) {
	if p == nil {
		p = Payments{}
	}

	j, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return string(j), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Payments) GormDataType() string {
	return "text"
}
