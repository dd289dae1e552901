package entity

// ContactMessage is immutable once created; there is no update or delete
// operation, and no asset reference.
type ContactMessage struct {
	Record
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Message string `json:"message" firestore:"message"`
}
