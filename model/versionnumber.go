package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VersionNumber is a three-part semantic version: major.minor.patch.
// It is an immutable value; build one with ParseVersionNumber or directly
// from its components.
type VersionNumber struct {
	Major int
	Minor int
	Patch int
}

// MalformedVersionNumberError reports a version string that does not split
// into exactly three non-negative integer components.
type MalformedVersionNumberError struct {
	Input  string
	Reason string
}

func (e *MalformedVersionNumberError) Error() string {
	return fmt.Sprintf("malformed version number %q: %s", e.Input, e.Reason)
}

// ParseVersionNumber parses a dotted "major.minor.patch" string.
func ParseVersionNumber(s string) (VersionNumber, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return VersionNumber{}, &MalformedVersionNumberError{
			Input:  s,
			Reason: fmt.Sprintf("expected 3 dot-separated components, got %d", len(parts)),
		}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return VersionNumber{}, &MalformedVersionNumberError{
				Input:  s,
				Reason: fmt.Sprintf("component %q is not an integer", p),
			}
		}
		if n < 0 {
			return VersionNumber{}, &MalformedVersionNumberError{
				Input:  s,
				Reason: fmt.Sprintf("component %q is negative", p),
			}
		}
		nums[i] = n
	}
	return VersionNumber{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as "major.minor.patch" with no zero padding.
func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalJSON encodes the version as its canonical JSON string.
func (v VersionNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string into the version.
func (v *VersionNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVersionNumber(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
