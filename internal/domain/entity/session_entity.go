package entity

// Session is the server-issued credential returned by session creation.
// It is opaque to the client and owned by whoever started the workflow.
type Session struct {
	Token string `json:"token"`
}
