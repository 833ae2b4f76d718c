package dto

type DashboardStatsDTO struct {
	TotalPatients       int64 `json:"totalPatients"`
	ActiveStaff         int64 `json:"activeStaff"`
	AppointmentsToday   int64 `json:"appointmentsToday"`
	AppointmentsPending int64 `json:"appointmentsPending"`
}
