package request_models

// Field checks run in the account service so failures come back keyed by
// field; binding tags stay off these structs for that reason.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	TravelStyle     string `json:"travelStyle"`
}
