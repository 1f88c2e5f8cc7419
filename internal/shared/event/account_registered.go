package event

const AccountRegisteredDestination string = "account_registered"

type AccountRegisteredMessage struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Kind      string `json:"kind"` // "user" or "seller"
}
