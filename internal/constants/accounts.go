package constants

const (
	AccountTypeSavings  = "savings"
	AccountTypeChecking = "checking"
)

var AccountTypes = []string{AccountTypeSavings, AccountTypeChecking}

const (
	MaxNameLen    = 100
	DefaultLimit  = 20
	DefaultTarget = "report.pdf"
)
