package user

import "errors"

// ErrUserNotFound is returned by repositories when no row matches.
var ErrUserNotFound = errors.New("user not found")

// Wire-facing failure texts. Login failures use one message for both
// unknown usernames and wrong passwords so the endpoint does not leak
// which usernames exist.
const (
	NotFoundMessage           = "User not found."
	UsernameTakenMessage      = "Username is already taken."
	InvalidCredentialsMessage = "Invalid username or password."
	RehashFailedMessage       = "Could not rehash the password."
)
