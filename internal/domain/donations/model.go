package donations

import (
	"github.com/shopspring/decimal"

	"shelter-records/internal/platform/civil"
)

// MethodOnline es el método fijo de las donaciones que entran por el formulario público.
const MethodOnline = "Online"

type Donation struct {
	ID      int64
	DonorID int64

	Amount decimal.Decimal // 2 decimales
	Date   civil.Date
	Method string
}
