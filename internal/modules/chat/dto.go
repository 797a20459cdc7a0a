package chat

type PostMessageRequest struct {
	Message    string `json:"message" binding:"required,max=2000"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
}
