package dto

// SyncStatusResponse acknowledges a manual push or pull.
type SyncStatusResponse struct {
	Status string `json:"status"`
}

// MetaResponse lists the fixed reference data the entry forms offer.
type MetaResponse struct {
	Banks          []string `json:"banks"`
	PaymentMethods []string `json:"paymentMethods"`
	ThemeModes     []string `json:"themeModes"`
}
