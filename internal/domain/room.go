package domain

// Room is a named group of members. Members are written once, at creation.
type Room struct {
	Name      string   `json:"name"`
	CreatedBy string   `json:"createdBy"`
	Members   []string `json:"members"`
}
