package domain

import "fmt"

const (
	DefaultCourse         = "FY"
	DefaultSemesterNumber = "1"
	DefaultTheme          = "default"
)

// Courses the backend indexes material for. FY is the common first
// year; the rest are branch codes.
var Courses = []string{"FY", "COMPS", "IT", "AIDS", "RAI", "EXTC", "CCE", "MECH", "VLSI", "EXCP"}

var SemesterNumbers = []string{"1", "2", "3", "4", "5", "6", "7", "8"}

// Preferences is everything that survives across runs: the study
// context, the UI theme, and the auth token.
type Preferences struct {
	Course         string `yaml:"course"`
	SemesterNumber string `yaml:"semester_number"`
	Theme          string `yaml:"theme"`
	Token          string `yaml:"token,omitempty"`
}

func Defaults() Preferences {
	return Preferences{
		Course:         DefaultCourse,
		SemesterNumber: DefaultSemesterNumber,
		Theme:          DefaultTheme,
	}
}

// FullSemester renders the course context the answer backend expects,
// e.g. "COMPS-Sem-3".
func (p Preferences) FullSemester() string {
	return fmt.Sprintf("%s-Sem-%s", p.Course, p.SemesterNumber)
}

func ValidCourse(course string) bool {
	for _, c := range Courses {
		if c == course {
			return true
		}
	}
	return false
}

func ValidSemesterNumber(n string) bool {
	for _, s := range SemesterNumbers {
		if s == n {
			return true
		}
	}
	return false
}
