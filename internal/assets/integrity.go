package assets

import "regexp"

// integrityPattern accepts one or more space separated "<alg>-<base64>"
// tokens with an optional "?options" suffix.
var integrityPattern = regexp.MustCompile(`^(sha(256|384|512)-[A-Za-z0-9+/]+={0,2}(\?\S*)?)( sha(256|384|512)-[A-Za-z0-9+/]+={0,2}(\?\S*)?)*$`)
