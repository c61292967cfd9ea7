package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent and easy to filter.
const (
	FieldFile     = "file_path"
	FieldItemID   = "item_id"
	FieldItemName = "item_name"
	FieldCategory = "category"
	FieldMonths   = "months"
	FieldAmount   = "amount"
	FieldCurrency = "currency"
	FieldCount    = "count"
	FieldReason   = "reason"
)
