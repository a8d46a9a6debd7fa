package execution

// Progress receives per-case progress from a Runner
type Progress interface {
	Update(passed, failed int)
	Finish()
}
