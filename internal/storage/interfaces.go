package storage

// CoachRepositoryInterface defines the coach data operations the services
// consume; tests substitute in-memory fakes.
type CoachRepositoryInterface interface {
	Create(coach *Coach) error
	GetByID(id uint) (*Coach, error)
	ListAll() ([]Coach, error)
	ListBySchool(schoolID uint) ([]Coach, error)
	UpdateFields(id uint, fields map[string]any) error
	Delete(id uint) error
	FindByName(schoolID uint, first, last string) (*Coach, error)
}

// AttendanceRepositoryInterface defines the attendance data operations.
type AttendanceRepositoryInterface interface {
	Create(att *Attendance) error
	ListByCoach(coachID uint) ([]Attendance, error)
	CountByCoach() (map[uint]int, error)
	Repoint(id, coachID uint) error
	Delete(id uint) error
}

// SchoolRepositoryInterface defines the registry data operations.
type SchoolRepositoryInterface interface {
	Create(school *School) error
	GetByID(id uint) (*School, error)
	ListAll() ([]School, error)
}

// KVRepositoryInterface is the key-value surface backing the suppression list.
type KVRepositoryInterface interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
