package entity

import "time"

// FAQ is a document in the faq collection. Read-only from the
// application; the seed command writes them.
type FAQ struct {
	ID        string    `bson:"_id,omitempty"`
	Category  string    `bson:"category"`
	Question  string    `bson:"question"`
	Answer    string    `bson:"answer"`
	UserID    string    `bson:"user_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

// ContactMessage is an append-only document in the messages
// collection, written when a visitor submits the contact form.
type ContactMessage struct {
	ID        string    `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Subject   string    `bson:"subject,omitempty"`
	Body      string    `bson:"body"`
	CreatedAt time.Time `bson:"createdAt"`
}
