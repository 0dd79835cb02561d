package dto

type PreferencesOutput struct {
	Course         string
	SemesterNumber string
	FullSemester   string
	Theme          string
	HasToken       bool
}
