package constpool

// LoadStatus is the state of one file in LoadAllProgress.
type LoadStatus uint8

const (
	LoadQueued LoadStatus = iota
	LoadReading
	LoadDone
	LoadFailed
	LoadCanceled
)

func (s LoadStatus) String() string {
	switch s {
	case LoadQueued:
		return "queued"
	case LoadReading:
		return "reading"
	case LoadDone:
		return "done"
	case LoadFailed:
		return "error"
	case LoadCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Finished reports whether no further event will follow for the file.
func (s LoadStatus) Finished() bool {
	return s == LoadDone || s == LoadFailed || s == LoadCanceled
}

// LoadEvent reports a status change of one file.
type LoadEvent struct {
	Path   string
	Status LoadStatus
}
