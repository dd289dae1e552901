package entity

// User mirrors a Firebase Auth account; ID is the Firebase UID. Only users
// with role "admin" may reach the dashboard endpoints.
type User struct {
	Record
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Role     string `json:"role" firestore:"role"`
}
