package presenter

// Recorder collects notices so a page can render them after the run.
type Recorder struct {
	Notices []Notice
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(level Level, msg string) {
	r.Notices = append(r.Notices, Notice{Level: level, Message: msg})
}

func (r *Recorder) Info(msg string) { r.add(LevelInfo, msg) }
func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Warning(msg string) { r.add(LevelWarning, msg) }
func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }
