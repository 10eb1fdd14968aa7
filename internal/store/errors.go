package store

import "errors"

// ErrConnectionRejected is returned by [DB.Ping] when the server refused the
// connection for a reason retrying cannot fix, such as a wrong password or
// an unknown database.
var ErrConnectionRejected = errors.New("database rejected connection")
