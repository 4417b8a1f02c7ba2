// Package facet builds search filter expressions: typed predicates
// combined into an AND-of-ORs tree that serializes to the search
// endpoint's nested array format.
package facet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rinthdev/rinth/model"
)

// Op is a predicate operation. Equality-only fields accept OpHas, OpEq
// and OpNotEq; sortable fields additionally accept the comparisons.
type Op string

const (
	OpHas   Op = ":"
	OpEq    Op = "="
	OpNotEq Op = "!="
	OpGte   Op = ">="
	OpGt    Op = ">"
	OpLte   Op = "<="
	OpLt    Op = "<"
)

// IsValid checks whether the operation is a known value.
func (o Op) IsValid() bool {
	switch o {
	case OpHas, OpEq, OpNotEq, OpGte, OpGt, OpLte, OpLt:
		return true
	}
	return false
}

// InvalidOperationError reports a predicate built with an operation the
// field does not support.
type InvalidOperationError struct {
	Field string
	Op    Op
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("operation %q is not valid for facet field %q", string(e.Op), e.Field)
}

// Facet is a single predicate over one indexed field. Build one with the
// per-field constructors; a Facet that exists is always well formed.
type Facet struct {
	field string
	op    Op
	value string
}

// String renders the predicate in the search engine's compact form:
// field, operation and value concatenated without separators.
func (f Facet) String() string {
	return f.field + string(f.op) + f.value
}

func newFacet(field string, op Op, value string, equalityOnly bool) (Facet, error) {
	if !op.IsValid() {
		return Facet{}, &InvalidOperationError{Field: field, Op: op}
	}
	if equalityOnly {
		switch op {
		case OpHas, OpEq, OpNotEq:
		default:
			return Facet{}, &InvalidOperationError{Field: field, Op: op}
		}
	}
	return Facet{field: field, op: op, value: value}, nil
}

// ProjectType filters on the project type. Equality only.
func ProjectType(op Op, value model.ProjectType) (Facet, error) {
	return newFacet("project_type", op, value.String(), true)
}

// Category filters on a project category. Equality only.
func Category(op Op, value string) (Facet, error) {
	return newFacet("categories", op, value, true)
}

// Version filters on a supported game version.
func Version(op Op, value string) (Facet, error) {
	return newFacet("versions", op, value, false)
}

// ClientSide filters on client-side support. Equality only.
func ClientSide(op Op, value model.Support) (Facet, error) {
	return newFacet("client_side", op, value.String(), true)
}

// ServerSide filters on server-side support. Equality only.
func ServerSide(op Op, value model.Support) (Facet, error) {
	return newFacet("server_side", op, value.String(), true)
}

// OpenSource filters on whether the project is open source. Equality
// only.
func OpenSource(op Op, value bool) (Facet, error) {
	return newFacet("open_source", op, strconv.FormatBool(value), true)
}

// Title filters on the project title. Equality only.
func Title(op Op, value string) (Facet, error) {
	return newFacet("title", op, value, true)
}

// Author filters on the project author. Equality only.
func Author(op Op, value string) (Facet, error) {
	return newFacet("author", op, value, true)
}

// Follows filters on the follower count.
func Follows(op Op, value int) (Facet, error) {
	return newFacet("follows", op, strconv.Itoa(value), false)
}

// ProjectID filters on the project id. Equality only.
func ProjectID(op Op, value string) (Facet, error) {
	return newFacet("project_id", op, value, true)
}

// License filters on the license id. Equality only.
func License(op Op, value string) (Facet, error) {
	return newFacet("license", op, value, true)
}

// Downloads filters on the download count.
func Downloads(op Op, value int) (Facet, error) {
	return newFacet("downloads", op, strconv.Itoa(value), false)
}

// Color filters on the project color, compared as its packed RGB
// integer.
func Color(op Op, value model.Color) (Facet, error) {
	return newFacet("color", op, strconv.Itoa(value.RGBInt()), false)
}

// CreatedTimestamp filters on the project creation time.
func CreatedTimestamp(op Op, value time.Time) (Facet, error) {
	return newFacet("created_timestamp", op, value.UTC().Format(time.RFC3339), false)
}

// ModifiedTimestamp filters on the project modification time.
func ModifiedTimestamp(op Op, value time.Time) (Facet, error) {
	return newFacet("modified_timestamp", op, value.UTC().Format(time.RFC3339), false)
}

// Member is either a Facet or an AnyFacets group, the two things an
// AND-group may contain.
type Member interface {
	member()
}

func (Facet) member()     {}
func (AnyFacets) member() {}

// AllFacets is an ordered group of members that must all match. Order is
// preserved through serialization.
type AllFacets struct {
	members []Member
}

// All combines members by logical AND.
func All(members ...Member) AllFacets {
	return AllFacets{members: members}
}

// AnyFacets is an ordered group of AND-groups of which at least one must
// match.
type AnyFacets struct {
	groups []AllFacets
}

// Any combines AND-groups by logical OR.
func Any(groups ...AllFacets) AnyFacets {
	return AnyFacets{groups: groups}
}

// MarshalJSON renders the tree in the search endpoint's wire format: a
// top-level array where each slot is a one-element array holding a facet
// string, or an OR-group array of AND-groups.
func (a AllFacets) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(a.members))
	for _, m := range a.members {
		switch v := m.(type) {
		case Facet:
			out = append(out, []string{v.String()})
		case AnyFacets:
			out = append(out, v.encode())
		}
	}
	return json.Marshal(out)
}

func (o AnyFacets) encode() []any {
	out := make([]any, 0, len(o.groups))
	for _, g := range o.groups {
		out = append(out, g.encodeGroup())
	}
	return out
}

// encodeGroup renders an AND-group nested inside an OR-group. A group of
// exactly one facet collapses to the bare facet string.
func (a AllFacets) encodeGroup() any {
	if len(a.members) == 1 {
		if f, ok := a.members[0].(Facet); ok {
			return f.String()
		}
	}
	out := make([]any, 0, len(a.members))
	for _, m := range a.members {
		switch v := m.(type) {
		case Facet:
			out = append(out, v.String())
		case AnyFacets:
			out = append(out, v.encode())
		}
	}
	return out
}

// Param renders the tree as the JSON string carried in the "facets"
// query parameter.
func (a AllFacets) Param() (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
