package services

// Identity is the authenticated caller. Controllers pass it into every
// service call; services never read it from ambient state.
type Identity struct {
	AccountID   uint            `json:"account_id"`
	Username    string          `json:"username"`
	IsStaff     bool            `json:"is_staff"`
	IsSuperuser bool            `json:"is_superuser"`
	Permissions map[string]bool `json:"-"`
}

// Anonymous is the zero Identity, used for requests without a valid token.
var Anonymous = Identity{}

func (id Identity) Authenticated() bool {
	return id.AccountID != 0
}

// Has reports whether the caller holds perm. Superusers hold everything.
func (id Identity) Has(perm string) bool {
	if !id.Authenticated() {
		return false
	}
	if id.IsSuperuser {
		return true
	}
	return id.Permissions[perm]
}

// LandingPath is where a client should go after login.
func (id Identity) LandingPath() string {
	if id.IsStaff {
		return "/"
	}
	return "/user_dashboard"
}

func authorize(id Identity, perm string) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if !id.Has(perm) {
		return ErrForbidden
	}
	return nil
}

func requireLogin(id Identity) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}
