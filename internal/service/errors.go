package service

import "errors"

var (
	// ErrWrongCredentials is returned by Login for both an unknown username
	// and a wrong password. The two cases are deliberately indistinguishable
	// so that the endpoint cannot be used to enumerate usernames.
	ErrWrongCredentials = errors.New("username or password is wrong")
)
