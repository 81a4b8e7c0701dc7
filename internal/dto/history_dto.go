package dto

type HistoryFilter struct {
	AssetID     string
	Action      string
	PerformedBy string
	From        string // YYYY-MM-DD inclusive
	To          string // YYYY-MM-DD inclusive
	Page        int
	Limit       int
}

type HistoryEntryResponse struct {
	ID            string  `json:"id"`
	AssetID       string  `json:"asset_id"`
	Action        string  `json:"action"`
	Timestamp     string  `json:"timestamp"`
	PerformedByID *string `json:"performed_by_id"`

	OldValue *string `json:"old_value"`
	NewValue *string `json:"new_value"`

	FromLocationID *string `json:"from_location_id"`
	ToLocationID   *string `json:"to_location_id"`
	FromUserID     *string `json:"from_user_id"`
	ToUserID       *string `json:"to_user_id"`

	Remarks *string `json:"remarks"`
}

type HistoryListResponse struct {
	Data  []HistoryEntryResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
