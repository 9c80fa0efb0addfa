package types

// StatCard is one quick-stat tile on the dashboard
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Conversation is a question and answer pair shown under recent chats
type Conversation struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Dashboard is the home page view model
type Dashboard struct {
	Greeting    string         `json:"greeting"`
	Subtitle    string         `json:"subtitle"`
	Stats       []StatCard     `json:"stats"`
	RecentChats []Conversation `json:"recent_chats"`
}

// SendMessageResponse returns the chat input state after a send
type SendMessageResponse struct {
	Message string `json:"message"`
}
