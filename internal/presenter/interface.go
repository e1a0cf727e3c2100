package presenter

// Presenter shows stage status and errors to the user.
type Presenter interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one message shown to the user.
type Notice struct {
	Level   Level
	Message string
}
