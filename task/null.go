package task

// NullTaskHandle is the inert Handle variant used when tracking and
// cancellation are not wanted.  Every operation is a no-op or returns a
// neutral value; it can never be stopped.
type NullTaskHandle struct{}

// Null returns a NullTaskHandle typed as Handle, for call sites that pass
// handles around by interface.
func Null() Handle {
	return NullTaskHandle{}
}

func (NullTaskHandle) Stop() {}

func (NullTaskHandle) IsStopped() bool {
	return false
}

func (NullTaskHandle) CreateJobSet(string, ...JobSetOption) JobSet {
	return NullJobSet{}
}

func (NullTaskHandle) CurrentJobSet() JobSet {
	return nil
}

func (NullTaskHandle) JobSets() []JobSet {
	return nil
}

func (NullTaskHandle) AddObserver(Observer) {}

func (NullTaskHandle) Name() string {
	return ""
}

// NullJobSet is the inert JobSet variant.  It never returns ErrInterrupted:
// a null handle represents "tracking disabled", not "cancellation disabled".
type NullJobSet struct{}

func (NullJobSet) StartedJob(string) error {
	return nil
}

func (NullJobSet) FinishedJob() error {
	return nil
}

func (NullJobSet) CheckStatus() error {
	return nil
}

func (NullJobSet) PercentDone() (int, bool) {
	return 0, false
}

func (NullJobSet) Increment() {}

func (NullJobSet) Name() string {
	return ""
}

func (NullJobSet) JobName() string {
	return ""
}

func (NullJobSet) Done() int {
	return 0
}

func (NullJobSet) Count() (int, bool) {
	return 0, false
}

var _ Handle = NullTaskHandle{}
var _ JobSet = NullJobSet{}
