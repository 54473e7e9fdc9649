package dto

// ExcelImportResponse returns parsed rows for client-side review; nothing
// is persisted by the import endpoint itself. SchoolID is the resolved
// target school, also attached to every row.
type ExcelImportResponse struct {
	SchoolID int64               `json:"schoolId"`
	Count    int                 `json:"count"`
	Rows     []map[string]string `json:"rows"`
}
