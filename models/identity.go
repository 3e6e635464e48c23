package models

// Identity is the authenticated requester attached to a request by the
// identity resolver. A value of this type always corresponds to exactly
// one row of the "users" table at the moment it was resolved.
type Identity struct {
	UserID int64  `json:"-"`
	Email  string `json:"email"`
}

// UserInfo is the response body of GET /userinfo.
type UserInfo struct {
	Email string `json:"email"`
}
