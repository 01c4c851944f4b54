package paystack

import (
	"context"
	"encoding/json"
	"net/http"
)

// BulkChargesService charges many saved authorizations in one batch
type BulkChargesService service

// BulkChargeItem is one authorization to charge
type BulkChargeItem struct {
	Authorization string `json:"authorization" validate:"required,startswith=AUTH_"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Reference     string `json:"reference,omitempty"`
}

// InitiateBulkChargeParams is sent as a bare JSON array of charges
type InitiateBulkChargeParams struct {
	Charges []BulkChargeItem `json:"charges" validate:"required,min=1,dive"`
}

// MarshalJSON encodes the charges without a wrapping object
func (p InitiateBulkChargeParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Charges)
}

// BulkChargeBatch is a queued batch of charges
type BulkChargeBatch struct {
	ID             int64  `json:"id"`
	Domain         string `json:"domain"`
	BatchCode      string `json:"batch_code"`
	Status         string `json:"status"`
	Integration    int64  `json:"integration,omitempty"`
	Reference      string `json:"reference,omitempty"`
	TotalCharges   int    `json:"total_charges,omitempty"`
	PendingCharges int    `json:"pending_charges,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// BulkCharge is the outcome of one charge in a batch
type BulkCharge struct {
	Integration   int64          `json:"integration"`
	BulkCharge    int64          `json:"bulkcharge"`
	Customer      *Customer      `json:"customer,omitempty"`
	Authorization *Authorization `json:"authorization,omitempty"`
	Transaction   *Transaction   `json:"transaction,omitempty"`
	Domain        string         `json:"domain"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	ID            int64          `json:"id"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
}

// ListBulkChargeBatchesParams filters ListBatches
type ListBulkChargeBatchesParams struct {
	Pagination
}

// FetchBulkChargesParams filters the charges of the batch identified by IDOrCode
type FetchBulkChargesParams struct {
	IDOrCode string `json:"-" url:"-" path:"id_or_code" validate:"required"`
	Status   string `json:"status" url:"status" validate:"required,oneof=pending success failed"`
	Pagination
}

type batchCodeParam struct {
	BatchCode string `json:"-" url:"-" path:"batch_code" validate:"required"`
}

// Initiate queues a batch of charges
func (s *BulkChargesService) Initiate(ctx context.Context, params *InitiateBulkChargeParams) (*Response[BulkChargeBatch], error) {
	return do[BulkChargeBatch](ctx, s.client, http.MethodPost, "bulkcharge", params)
}

// ListBatches returns bulk charge batches
func (s *BulkChargesService) ListBatches(ctx context.Context, params *ListBulkChargeBatchesParams) (*Response[[]BulkChargeBatch], error) {
	return do[[]BulkChargeBatch](ctx, s.client, http.MethodGet, "bulkcharge", params)
}

// Fetch returns a batch by ID or code
func (s *BulkChargesService) Fetch(ctx context.Context, idOrCode string) (*Response[BulkChargeBatch], error) {
	return do[BulkChargeBatch](ctx, s.client, http.MethodGet, "bulkcharge/{id_or_code}", &idOrCodeParam{IDOrCode: idOrCode})
}

// FetchCharges returns the charges in a batch
func (s *BulkChargesService) FetchCharges(ctx context.Context, params *FetchBulkChargesParams) (*Response[[]BulkCharge], error) {
	return do[[]BulkCharge](ctx, s.client, http.MethodGet, "bulkcharge/{id_or_code}/charges", params)
}

// Pause stops processing a batch
func (s *BulkChargesService) Pause(ctx context.Context, batchCode string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodGet, "bulkcharge/pause/{batch_code}", &batchCodeParam{BatchCode: batchCode})
}

// Resume continues a paused batch
func (s *BulkChargesService) Resume(ctx context.Context, batchCode string) (*Message, error) {
	return doMessage(ctx, s.client, http.MethodGet, "bulkcharge/resume/{batch_code}", &batchCodeParam{BatchCode: batchCode})
}
