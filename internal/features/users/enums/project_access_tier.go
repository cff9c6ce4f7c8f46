package users_enums

// ProjectAccessTier is the best relation a user has to a project.
// Tiers are ordered: admin > accepted > pending > none.
type ProjectAccessTier string

const (
	ProjectAccessTierAdmin    ProjectAccessTier = "ADMIN"
	ProjectAccessTierAccepted ProjectAccessTier = "ACCEPTED"
	ProjectAccessTierPending  ProjectAccessTier = "PENDING"
	ProjectAccessTierNone     ProjectAccessTier = "NONE"
)

func (t ProjectAccessTier) CanAccess() bool {
	return t != ProjectAccessTierNone
}
