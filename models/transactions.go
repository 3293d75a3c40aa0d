package models

// TransactionFilters narrows a transaction listing request.
// Dates are formatted as YYYY-MM-DD, the format the provider expects.
type TransactionFilters struct {
	Limit     int
	StartDate string
	EndDate   string
}

// TransactionUpdate represents a partial update of a single transaction.
// Only non-nil fields will be applied (partial update support); an entirely
// empty update is a valid no-op request.
type TransactionUpdate struct {
	// Notes replaces the free-form note attached to the transaction.
	// If nil, the field will not be updated.
	Notes *string `json:"notes,omitempty"`

	// CategoryID moves the transaction to another category.
	// If nil, the field will not be updated.
	CategoryID *string `json:"category_id,omitempty"`

	// NeedsReview flags or unflags the transaction for review.
	// If nil, the field will not be updated.
	NeedsReview *bool `json:"needs_review,omitempty"`

	// MerchantName overrides the displayed merchant name.
	// If nil, the field will not be updated.
	MerchantName *string `json:"merchant_name,omitempty"`

	// Amount replaces the transaction amount.
	// If nil, the field will not be updated.
	Amount *float64 `json:"amount,omitempty"`

	// Date moves the transaction to another date (YYYY-MM-DD).
	// If nil, the field will not be updated.
	Date *string `json:"date,omitempty"`
}

// Fields flattens the update into the field set sent to the provider,
// keeping only the fields that were actually supplied. An empty map means
// there is nothing to update and no remote call should be made.
func (u TransactionUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	if u.CategoryID != nil {
		fields["category_id"] = *u.CategoryID
	}
	if u.NeedsReview != nil {
		fields["needs_review"] = *u.NeedsReview
	}
	if u.MerchantName != nil {
		fields["merchant_name"] = *u.MerchantName
	}
	if u.Amount != nil {
		fields["amount"] = *u.Amount
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	return fields
}
