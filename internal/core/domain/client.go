package domain

import "time"

// Client is a registered store customer. No uniqueness is enforced beyond
// the store's default identifier; the same email may appear more than once.
type Client struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	Email    string    `json:"email" bson:"email"`
	Name     string    `json:"name" bson:"name"`
	Contact  string    `json:"contact" bson:"contact"`
	JoinedAt time.Time `json:"joined_at" bson:"joined_at"`
	Address  string    `json:"address" bson:"address"`
}
