package paystack

// Currency is an ISO 4217 code supported by the API
type Currency string

// Supported currencies
const (
	NGN Currency = "NGN"
	GHS Currency = "GHS"
	USD Currency = "USD"
	ZAR Currency = "ZAR"
	KES Currency = "KES"
	XOF Currency = "XOF"
)

// Pagination holds the page-based list filters shared by most list endpoints
type Pagination struct {
	PerPage int   `json:"perPage,omitempty" url:"perPage,omitempty" validate:"omitempty,gt=0"`
	Page    int   `json:"page,omitempty" url:"page,omitempty" validate:"omitempty,gt=0"`
	From    *Date `json:"from,omitempty" url:"from,omitempty"`
	To      *Date `json:"to,omitempty" url:"to,omitempty"`
}

// CursorPagination holds the cursor-based list filters
type CursorPagination struct {
	UseCursor bool   `json:"use_cursor,omitempty" url:"use_cursor,omitempty"`
	PerPage   int    `json:"perPage,omitempty" url:"perPage,omitempty" validate:"omitempty,gt=0"`
	Next      string `json:"next,omitempty" url:"next,omitempty"`
	Previous  string `json:"previous,omitempty" url:"previous,omitempty"`
}

// Metadata is free-form data the API stores and echoes back
type Metadata map[string]any

type idParam struct {
	ID int64 `json:"-" url:"-" path:"id" validate:"required"`
}

type codeParam struct {
	Code string `json:"-" url:"-" path:"code" validate:"required"`
}

type idOrCodeParam struct {
	IDOrCode string `json:"-" url:"-" path:"id_or_code" validate:"required"`
}

type referenceParam struct {
	Reference string `json:"-" url:"-" path:"reference" validate:"required"`
}
