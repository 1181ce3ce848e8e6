package auth

// Claims es la identidad extraída de un bearer token válido.
type Claims struct {
	UserID int64
	Email  string
}
