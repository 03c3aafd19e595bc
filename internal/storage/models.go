package storage

// School is the canonical registry entry an imported organization name is
// resolved against.
type School struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"column:school;not null" json:"school"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Division   string `json:"division,omitempty"`
	Conference string `json:"conference,omitempty"`
}

func (School) TableName() string { return "schools" }

// Coach is a tracked college staff member. First/last name are non-empty after
// trimming; that is checked before insert.
type Coach struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Title     string `json:"title,omitempty"`
	SchoolID  uint   `gorm:"index;not null" json:"school_id"`
}

func (Coach) TableName() string { return "coaches" }

// Attendance links a coach to one event game. The composite unique index keeps
// one row per (game, coach).
type Attendance struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GameID  string `gorm:"index:idx_game_coach,unique;not null" json:"game_id"`
	CoachID uint   `gorm:"index:idx_game_coach,unique;not null" json:"coach_id"`
}

func (Attendance) TableName() string { return "attendance" }

// KVEntry is a small key-value surface; the dismissed-pair list lives here as a
// serialized JSON array under a per-operator key.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (KVEntry) TableName() string { return "kv_entries" }
