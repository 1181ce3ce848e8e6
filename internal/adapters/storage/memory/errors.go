package memory

import "errors"

var errOrderMissing = errors.New("memory: order does not exist")
