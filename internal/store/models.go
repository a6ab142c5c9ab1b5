package store

type ReportRecord struct {
	ID        int64
	Kind      string
	Path      string
	Size      int64
	CreatedAt int64
}
