package models

// User mirrors a user resource of the remote REST API. Users are read-only in
// this application: they are fetched once and never mutated.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}
