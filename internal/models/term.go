package models

// Term represents one key/translation pair from the local translation file.
// The same shape describes a baseline record: the local file content as it
// existed at a reference revision.
type Term struct {
	Key  string `json:"key"`  // Key dot-path term identifier, unique within a snapshot
	Text string `json:"text"` // Text translation text; empty means "not translated yet"
}

// RemoteTerm represents the current server state of one term.
type RemoteTerm struct {
	ID   string `json:"id"`   // ID opaque handle assigned by the remote store
	Key  string `json:"key"`  // Key term identifier
	Text string `json:"text"` // Text current remote translation, may be empty
}

// Baseline is an optional snapshot of the translation file at a reference
// revision. A nil *Baseline means no baseline is available and the refinement
// stage is bypassed; a non-nil Baseline with zero terms is a real (empty)
// snapshot and goes through the full decision table.
type Baseline struct {
	Terms []Term
}
