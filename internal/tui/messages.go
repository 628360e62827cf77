package tui

// clearErrorMsg removes the status line error once its timeout passes. The
// sequence number prevents an old timer from clearing a newer error.
type clearErrorMsg struct {
	seq int
}
