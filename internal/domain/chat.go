package domain

// ChatKeySeparator joins the two participant ids of a direct chat.
const ChatKeySeparator = "-"

// Chat is a one-on-one conversation stored under chats/<ChatKey(from, to)>.
type Chat struct {
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"createdAt"`
}

// ChatKey derives the storage key of the chat between a and b. The smaller id
// (byte-wise) goes first, so ChatKey(a, b) == ChatKey(b, a).
func ChatKey(a, b string) string {
	if a < b {
		return a + ChatKeySeparator + b
	}
	return b + ChatKeySeparator + a
}
