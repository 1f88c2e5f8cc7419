package event

const AccountPasswordResetDestination string = "account_password_reset"

type AccountPasswordResetMessage struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
}
