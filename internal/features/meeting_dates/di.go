package meeting_dates

import (
	"meetplan/internal/features/audit_logs"
	projects_services "meetplan/internal/features/projects/services"
	"meetplan/internal/util/logger"
)

var meetingDateRepository = &MeetingDateRepository{}
var meetingDateService = &MeetingDateService{
	meetingDateRepository,
	projects_services.GetProjectService(),
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
}
var meetingDateController = &MeetingDateController{
	meetingDateService,
}

func GetMeetingDateService() *MeetingDateService {
	return meetingDateService
}

func GetMeetingDateController() *MeetingDateController {
	return meetingDateController
}
