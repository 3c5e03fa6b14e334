// Package auth authenticates admin panel accounts.
//
// Only local accounts exist. Passwords are stored as Argon2id hashes and
// verified in constant time by models.User.
//
// The first account is seeded from the [Admin] config section when the user
// table is empty:
//
//	p := auth.NewLocalProvider(db)
//	if _, err := p.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
//		return err
//	}
//
//	user, err := p.Authenticate(username, password)
package auth
