package constants

const (
	// Transaction types as reported by the ledger
	TxDeposit     = "deposit"
	TxWithdraw    = "withdraw"
	TxTransferOut = "transfer-out"
	TxTransferIn  = "transfer-in"

	// Movement kinds requested by the console
	MoveDeposit  = "deposit"
	MoveWithdraw = "withdraw"
	MoveTransfer = "transfer"

	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

const (
	ReportDaily    = "daily"
	ReportDispatch = "daily-send"
)

// Credential slots in the local store
const (
	SlotAccessToken  = "access_token"
	SlotRefreshToken = "refresh_token"
)
