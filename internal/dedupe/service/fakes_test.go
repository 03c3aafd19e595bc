package service

import (
	"coachtrack/internal/storage"
)

// in-memory repository fakes used across the service tests

type fakeCoachRepo struct {
	coaches map[uint]*storage.Coach
	nextID  uint
}

func newFakeCoachRepo(coaches ...storage.Coach) *fakeCoachRepo {
	r := &fakeCoachRepo{coaches: map[uint]*storage.Coach{}, nextID: 1}
	for i := range coaches {
		c := coaches[i]
		if c.ID == 0 {
			c.ID = r.nextID
		}
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.coaches[c.ID] = &c
	}
	return r
}

func (r *fakeCoachRepo) Create(coach *storage.Coach) error {
	coach.ID = r.nextID
	r.nextID++
	cp := *coach
	r.coaches[coach.ID] = &cp
	return nil
}

func (r *fakeCoachRepo) GetByID(id uint) (*storage.Coach, error) {
	c, ok := r.coaches[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCoachRepo) ListAll() ([]storage.Coach, error) {
	out := make([]storage.Coach, 0, len(r.coaches))
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.coaches[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCoachRepo) ListBySchool(schoolID uint) ([]storage.Coach, error) {
	all, _ := r.ListAll()
	out := all[:0]
	for _, c := range all {
		if c.SchoolID == schoolID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCoachRepo) UpdateFields(id uint, fields map[string]any) error {
	c, ok := r.coaches[id]
	if !ok {
		return storage.ErrNotFound
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "first_name":
			c.FirstName = s
		case "last_name":
			c.LastName = s
		case "email":
			c.Email = s
		case "phone":
			c.Phone = s
		case "title":
			c.Title = s
		}
	}
	return nil
}

func (r *fakeCoachRepo) Delete(id uint) error {
	if _, ok := r.coaches[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.coaches, id)
	return nil
}

func (r *fakeCoachRepo) FindByName(schoolID uint, first, last string) (*storage.Coach, error) {
	return nil, storage.ErrNotFound
}

type fakeAttendanceRepo struct {
	rows   map[uint]*storage.Attendance
	nextID uint
}

func newFakeAttendanceRepo(rows ...storage.Attendance) *fakeAttendanceRepo {
	r := &fakeAttendanceRepo{rows: map[uint]*storage.Attendance{}, nextID: 1}
	for i := range rows {
		a := rows[i]
		if a.ID == 0 {
			a.ID = r.nextID
		}
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.rows[a.ID] = &a
	}
	return r
}

func (r *fakeAttendanceRepo) Create(att *storage.Attendance) error {
	for _, row := range r.rows {
		if row.GameID == att.GameID && row.CoachID == att.CoachID {
			return storage.ErrConflict
		}
	}
	att.ID = r.nextID
	r.nextID++
	cp := *att
	r.rows[att.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) ListByCoach(coachID uint) ([]storage.Attendance, error) {
	var out []storage.Attendance
	for id := uint(1); id < r.nextID; id++ {
		if a, ok := r.rows[id]; ok && a.CoachID == coachID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) CountByCoach() (map[uint]int, error) {
	out := map[uint]int{}
	for _, a := range r.rows {
		out[a.CoachID]++
	}
	return out, nil
}

func (r *fakeAttendanceRepo) Repoint(id, coachID uint) error {
	a, ok := r.rows[id]
	if !ok {
		return storage.ErrNotFound
	}
	for _, other := range r.rows {
		if other.ID != id && other.GameID == a.GameID && other.CoachID == coachID {
			return storage.ErrConflict
		}
	}
	a.CoachID = coachID
	return nil
}

func (r *fakeAttendanceRepo) Delete(id uint) error {
	if _, ok := r.rows[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (kv *fakeKV) Get(key string) (string, bool, error) {
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *fakeKV) Set(key, value string) error {
	kv.data[key] = value
	return nil
}

func (kv *fakeKV) Delete(key string) error {
	delete(kv.data, key)
	return nil
}
