package domain

// RequiredChannel is a channel every user must be a member of before any
// bot feature besides the greeting works.
type RequiredChannel struct {
	ChannelID  string
	ChannelURL string
	Title      string
}
