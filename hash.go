package rinth

// HashAlgorithm names the hashing algorithm behind a file hash. HashAuto
// is a client-side value resolved before the request is sent; it never
// reaches the wire.
type HashAlgorithm string

const (
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA512 HashAlgorithm = "sha512"
	HashAuto   HashAlgorithm = "auto"

	// HashUnspecified leaves the algorithm parameter off the request,
	// letting the server use its own default.
	HashUnspecified HashAlgorithm = ""
)

// resolveHashAlgorithm maps the requested algorithm to the one sent on
// the wire. HashAuto picks sha512 when the hash is 128 hex characters,
// otherwise the endpoint's fallback. Explicit algorithms pass through.
func resolveHashAlgorithm(hash string, requested, fallback HashAlgorithm) (HashAlgorithm, error) {
	switch requested {
	case HashSHA1, HashSHA512, HashUnspecified:
		return requested, nil
	case HashAuto:
		if len(hash) == 128 {
			return HashSHA512, nil
		}
		return fallback, nil
	}
	return "", &UnsupportedAlgorithmError{Algorithm: requested}
}

// resolveBulkHashAlgorithm resolves the algorithm for the bulk hash
// endpoints, whose request body carries a mandatory algorithm field.
// HashAuto resolves against the first hash, falling back to sha1;
// HashUnspecified cannot be sent and is rejected.
func resolveBulkHashAlgorithm(hashes []string, requested HashAlgorithm) (HashAlgorithm, error) {
	var first string
	if len(hashes) > 0 {
		first = hashes[0]
	}
	resolved, err := resolveHashAlgorithm(first, requested, HashSHA1)
	if err != nil {
		return "", err
	}
	if resolved == HashUnspecified {
		return "", &UnsupportedAlgorithmError{Algorithm: requested}
	}
	return resolved, nil
}
