package store

type Repository interface {
	// Credential Operations
	SetCredentials(slots map[string]string) error
	GetCredential(slot string) (string, error)
	ClearCredentials() error
	AccessToken() (string, error)

	// Report History Operations
	RecordReport(r ReportRecord) (int64, error)
	ListReports(limit int) ([]*ReportRecord, error)

	Close() error
}
