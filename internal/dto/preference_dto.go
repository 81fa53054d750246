package dto

// PreferencesResponse is the fixed-default payload returned by the
// preferences stub. Nothing is persisted; PUT echoes the posted document
// with the userId overwritten from the path.
type PreferencesResponse struct {
	UserID               uint   `json:"userId"`
	Theme                string `json:"theme"`
	TwoFactorEnabled     bool   `json:"twoFactorEnabled"`
	EmailNotifications   bool   `json:"emailNotifications"`
	SMSNotifications     bool   `json:"smsNotifications"`
	AppointmentReminders bool   `json:"appointmentReminders"`
	IncidentAlerts       bool   `json:"incidentAlerts"`
	SessionTimeout       bool   `json:"sessionTimeout"`
	BackupPath           string `json:"backupPath"`
	RetentionType        string `json:"retentionType"`
	RetentionValue       string `json:"retentionValue"`
}

// DefaultPreferences returns the stub defaults for a user.
func DefaultPreferences(userID uint) PreferencesResponse {
	return PreferencesResponse{
		UserID:               userID,
		Theme:                "default",
		TwoFactorEnabled:     false,
		EmailNotifications:   true,
		SMSNotifications:     false,
		AppointmentReminders: true,
		IncidentAlerts:       true,
		SessionTimeout:       true,
		BackupPath:           "",
		RetentionType:        "years",
		RetentionValue:       "7",
	}
}
