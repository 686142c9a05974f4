package billing

import (
	"fmt"

	"github.com/jordanlanch/squadscore/pkg/models"
)

// OwnerKind discriminates subscription owners.
type OwnerKind string

const (
	OwnerOrganization OwnerKind = "organization"
	OwnerTeam         OwnerKind = "team"
)

// Owner identifies the purchasing entity for a subscription: an
// organization or a team, never both. Constructing one through
// OwnerFromRequest guarantees exactly one target was supplied.
type Owner struct {
	kind OwnerKind
	id   int
}

// OrgOwner returns an organization-owned target
func OrgOwner(id int) Owner {
	return Owner{kind: OwnerOrganization, id: id}
}

// TeamOwner returns a team-owned target
func TeamOwner(id int) Owner {
	return Owner{kind: OwnerTeam, id: id}
}

// OwnerFromRequest resolves the target from a checkout request.
// Supplying both or neither target is an error.
func OwnerFromRequest(req *models.CheckoutRequest) (Owner, error) {
	switch {
	case req.TeamID != nil && req.OrganizationID != nil:
		return Owner{}, ErrAmbiguousTarget
	case req.TeamID != nil:
		return TeamOwner(*req.TeamID), nil
	case req.OrganizationID != nil:
		return OrgOwner(*req.OrganizationID), nil
	default:
		return Owner{}, ErrAmbiguousTarget
	}
}

// Kind returns the owner kind
func (o Owner) Kind() OwnerKind {
	return o.kind
}

// ID returns the owner's entity id
func (o Owner) ID() int {
	return o.id
}

// IsTeam reports whether the owner is a team
func (o Owner) IsTeam() bool {
	return o.kind == OwnerTeam
}

// MetadataKey returns the metadata key used to carry the target id
// through the payment provider ("organizationId" or "teamId").
func (o Owner) MetadataKey() string {
	if o.IsTeam() {
		return "teamId"
	}
	return "organizationId"
}

// String implements fmt.Stringer
func (o Owner) String() string {
	return fmt.Sprintf("%s/%d", o.kind, o.id)
}
