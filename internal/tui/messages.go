package tui

// feedChangedMsg means the controller state moved; re-read the snapshot.
type feedChangedMsg struct{}

// feedClosedMsg is sent once the controller stops signalling.
type feedClosedMsg struct{}

type openErrMsg struct {
	err error
}
