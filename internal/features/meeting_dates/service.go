package meeting_dates

import (
	"errors"
	"fmt"
	"log/slog"

	"meetplan/internal/features/audit_logs"
	projects_services "meetplan/internal/features/projects/services"
	users_models "meetplan/internal/features/users/models"
	time_parser "meetplan/internal/util/time"

	"github.com/google/uuid"
)

type MeetingDateService struct {
	meetingDateRepository *MeetingDateRepository
	projectService        *projects_services.ProjectService
	auditLogService       *audit_logs.AuditLogService
	logger                *slog.Logger
}

// AddDatesToProject validates every element before anything is stored, a
// single bad date rejects the whole batch. An empty batch stores nothing.
func (s *MeetingDateService) AddDatesToProject(
	projectID uuid.UUID,
	requests []DateRequestDTO,
	owner *users_models.User,
) ([]*MeetingDate, error) {
	if err := s.ensureOwner(projectID, owner); err != nil {
		return nil, err
	}

	meetingDates := make([]*MeetingDate, 0, len(requests))
	for i, request := range requests {
		date, err := time_parser.ParseTimestamp(request.Date)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidDate, i, err)
		}

		meetingDates = append(meetingDates, &MeetingDate{
			ProjectID: projectID,
			Date:      date,
		})
	}

	if len(meetingDates) == 0 {
		return meetingDates, nil
	}

	if err := s.meetingDateRepository.CreateMeetingDates(meetingDates); err != nil {
		return nil, fmt.Errorf("failed to create meeting dates: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Added %d meeting dates", len(meetingDates)),
		&owner.ID,
		&projectID,
	)

	return meetingDates, nil
}

func (s *MeetingDateService) AddDateToProject(
	projectID uuid.UUID,
	request *DateRequestDTO,
	owner *users_models.User,
) (*MeetingDate, error) {
	if err := s.ensureOwner(projectID, owner); err != nil {
		return nil, err
	}

	date, err := time_parser.ParseTimestamp(request.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	meetingDate := &MeetingDate{
		ProjectID: projectID,
		Date:      date,
	}

	if err := s.meetingDateRepository.CreateMeetingDates([]*MeetingDate{meetingDate}); err != nil {
		return nil, fmt.Errorf("failed to create meeting date: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Added meeting date %s", meetingDate.Date.Format("2006-01-02 15:04")),
		&owner.ID,
		&projectID,
	)

	return meetingDate, nil
}

// PickDate finalizes the project on one of its own dates. Picking the same
// date again leaves a single attending membership for the owner.
func (s *MeetingDateService) PickDate(projectID, meetingDateID uuid.UUID, owner *users_models.User) error {
	if err := s.ensureOwner(projectID, owner); err != nil {
		return err
	}

	meetingDate, err := s.meetingDateRepository.GetMeetingDateByID(meetingDateID)
	if err != nil {
		return fmt.Errorf("failed to get meeting date: %w", err)
	}
	if meetingDate == nil || meetingDate.ProjectID != projectID {
		return ErrMeetingDateNotFound
	}

	return s.projectService.FinalizeMeetingDate(projectID, meetingDateID, owner)
}

// Vote moves the user's single vote in the date's project to meetingDateID
func (s *MeetingDateService) Vote(meetingDateID uuid.UUID, user *users_models.User) (*VoteResponseDTO, error) {
	meetingDate, err := s.meetingDateRepository.GetMeetingDateByID(meetingDateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting date: %w", err)
	}
	if meetingDate == nil {
		return nil, ErrMeetingDateNotFound
	}

	if _, err := s.projectService.GetProjectWithCache(meetingDate.ProjectID); err != nil {
		if errors.Is(err, projects_services.ErrProjectNotFound) {
			return nil, ErrDateProjectMissing
		}

		return nil, err
	}

	canAccess, err := s.projectService.CanUserAccessProject(meetingDate.ProjectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, projects_services.ErrProjectNotFound
	}

	if err := s.meetingDateRepository.ReplaceVote(user.ID, meetingDate.ProjectID, meetingDateID); err != nil {
		return nil, fmt.Errorf("failed to store vote: %w", err)
	}

	votes, err := s.meetingDateRepository.CountVotes(meetingDateID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	s.logger.Debug("vote stored", "user_id", user.ID, "meeting_date_id", meetingDateID, "votes", votes)

	return &VoteResponseDTO{
		MeetingDateID: meetingDateID,
		Votes:         votes,
	}, nil
}

func (s *MeetingDateService) GetProjectDates(projectID uuid.UUID, user *users_models.User) ([]*ProjectDateDTO, error) {
	canAccess, err := s.projectService.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, projects_services.ErrProjectNotFound
	}

	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return nil, err
	}

	dates, err := s.meetingDateRepository.GetProjectDates(projectID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting dates: %w", err)
	}

	for _, date := range dates {
		date.IsPicked = project.MeetingDateID != nil && *project.MeetingDateID == date.ID
	}

	return dates, nil
}

func (s *MeetingDateService) ensureOwner(projectID uuid.UUID, user *users_models.User) error {
	isOwner, err := s.projectService.IsProjectOwner(projectID, user)
	if err != nil {
		return err
	}
	if !isOwner {
		return projects_services.ErrProjectNotFound
	}

	return nil
}
