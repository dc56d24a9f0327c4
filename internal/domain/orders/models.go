package orders

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the format of Order.Date.
const DateLayout = "2006-01-02"

var ErrInvalidOrder = errors.New("invalid order")

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes,omitempty"`
}

// LineItem is the frozen copy of one cart line at submission time.
type LineItem struct {
	ProductID     uint    `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	UnitPrice     float64 `json:"unitPrice"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
	Quantity      int     `json:"quantity"`
}

// LineItems is stored as one jsonb column.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LineItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("line items: unsupported scan type %T", src)
	}
}

type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Customer Customer  `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items    LineItems `gorm:"type:jsonb;not null" json:"items"`
	Total    float64   `gorm:"not null" json:"total"`
	Status   Status    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	Date     string    `gorm:"type:varchar(10);not null" json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields a submitted order must carry.
func (o *Order) Validate() error {
	switch {
	case strings.TrimSpace(o.Customer.Name) == "":
		return fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	case strings.TrimSpace(o.Customer.Phone) == "" && strings.TrimSpace(o.Customer.Email) == "":
		return fmt.Errorf("%w: a phone number or email is required", ErrInvalidOrder)
	case strings.TrimSpace(o.Customer.Address) == "":
		return fmt.Errorf("%w: shipping address is required", ErrInvalidOrder)
	case len(o.Items) == 0:
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	case o.Total < 0:
		return fmt.Errorf("%w: total must not be negative", ErrInvalidOrder)
	}
	for _, it := range o.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d has quantity %d", ErrInvalidOrder, it.ProductID, it.Quantity)
		}
	}
	return nil
}
