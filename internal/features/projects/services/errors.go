package projects_services

import "errors"

var (
	// ErrProjectNotFound also covers projects the user may not see or manage
	ErrProjectNotFound      = errors.New("project not found")
	ErrNoProjectAccess      = errors.New("you do not have access to this project")
	ErrMembershipNotFound   = errors.New("you are not a member of this project")
	ErrInvitedUserNotFound  = errors.New("user with this email not found")
	ErrCannotInviteYourself = errors.New("you cannot invite yourself")
	ErrAlreadyMember        = errors.New("user is already a member of this project")
	ErrNoPendingInvitation  = errors.New("there is no pending invitation for this project")
)
