package pnplog

const (
	emptyString = ""

	// AnnounceMessage is logged at info level once a Logger is constructed
	// unless SkipAnnounce is set.
	AnnounceMessage = "Plug & Play Logger enabled"

	// EnvLevel names the variable holding the console minimum severity.
	EnvLevel = "LEVEL"
	// EnvSilent names the variable that, when exactly "true", reduces
	// logging to errors on the console.
	EnvSilent = "SILENT"

	defaultLevel = "info"
	silentLevel  = "error"
	sillyLabel   = "silly"

	datePlaceholder = "%DATE%"
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	plainFileName   = "log_" + datePlaceholder + "_plain.log"
	jsonFileName    = "log_" + datePlaceholder + "_json.log"
	rotationDaily   = "daily"
)

const (
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgDuplicate     = "do not create multiple pnplog Logger instances; use pnplog.Instance() or pass the configuration to the first New call"
)
