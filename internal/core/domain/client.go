package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Client is an API consumer authenticated with client credentials.
type Client struct {
	ID         string `json:"client_id"`
	SecretHash string `json:"-"`
	Role       string `json:"role"`
}
