package models

// Profile is the session owner's editable profile card.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	JoinDate string `json:"join_date"`
}
