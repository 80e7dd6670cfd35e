package domain

// Principal is the authenticated user as yielded by the external
// authentication subsystem's token: the `users` table itself is not
// managed here, only referenced as owner.
type Principal struct {
	Id       string
	Username string
}
