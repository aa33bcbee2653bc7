package constants

const (
	AmountPlaces = 2

	MaxNameLen      = 100
	MaxAccountIDLen = 20
	MinPINLen       = 4
)

const (
	// Descriptions the console records when the user leaves the field blank.
	ManualDepositMemo    = "Manual Deposit"
	ManualWithdrawalMemo = "Manual Withdrawal"
	TransferMemo         = "Inter-account Transfer"

	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

const (
	DefaultCurrency     = "USD"
	DefaultHistoryLimit = 10
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"

	AppDirName     = "mybank"
	ConfigName     = "config"
	StatementsFile = "statements.db"
	EnvPrefix      = "MYBANK"
)
