// Package memstore keeps students and grades in process memory. It backs the
// "memory" database driver and the service and controller tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

type state struct {
	students      map[int64]models.Student
	grades        map[int64]models.Grade
	nextStudentID int64
	nextGradeID   int64
}

func (s *state) clone() *state {
	cp := &state{
		students:      make(map[int64]models.Student, len(s.students)),
		grades:        make(map[int64]models.Grade, len(s.grades)),
		nextStudentID: s.nextStudentID,
		nextGradeID:   s.nextGradeID,
	}
	for k, v := range s.students {
		cp.students[k] = v
	}
	for k, v := range s.grades {
		cp.grades[k] = v
	}
	return cp
}

// Store is an in-memory Transactor. Units of work run one at a time and
// their changes are discarded when they return an error.
type Store struct {
	mu    sync.Mutex
	state *state
}

// New creates an empty store
func New() *Store {
	return &Store{state: &state{
		students: map[int64]models.Student{},
		grades:   map[int64]models.Grade{},
	}}
}

// WithinTransaction implements repositories.Transactor
func (s *Store) WithinTransaction(ctx context.Context, fn repositories.TxFn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := s.state.clone()
	repos := &repositories.Repositories{
		Students: &studentRepo{st: working},
		Grades:   &gradeRepo{st: working},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	s.state = working
	return nil
}

type studentRepo struct {
	st *state
}

func (r *studentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, existing := range r.st.students {
		if existing.EmailAddress == student.EmailAddress {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.st.nextStudentID++
	student.ID = r.st.nextStudentID
	r.st.students[student.ID] = *student
	return student.ID, nil
}

func (r *studentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := r.st.students[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *studentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.st.students {
		if s.EmailAddress == email {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *studentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(r.st.students))
	for _, s := range r.st.students {
		s := s
		students = append(students, &s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

// Delete removes the student and, like the foreign key in the SQL schema, its grades
func (r *studentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.st.students[id]; !ok {
		return false, nil
	}
	delete(r.st.students, id)
	for gid, g := range r.st.grades {
		if g.StudentID == id {
			delete(r.st.grades, gid)
		}
	}
	return true, nil
}

type gradeRepo struct {
	st *state
}

func (r *gradeRepo) Create(_ context.Context, grade *models.Grade) (int64, error) {
	if !grade.Subject.IsValid() {
		return 0, apperrors.ErrInvalidSubject
	}
	if _, ok := r.st.students[grade.StudentID]; !ok {
		return 0, apperrors.ErrStudentNotFound
	}
	r.st.nextGradeID++
	grade.ID = r.st.nextGradeID
	r.st.grades[grade.ID] = *grade
	return grade.ID, nil
}

func (r *gradeRepo) GetByID(_ context.Context, subject models.Subject, id int64) (*models.Grade, error) {
	g, ok := r.st.grades[id]
	if !ok || g.Subject != subject {
		return nil, nil
	}
	return &g, nil
}

func (r *gradeRepo) GetByStudentID(_ context.Context, subject models.Subject, studentID int64) ([]models.Grade, error) {
	grades := []models.Grade{}
	for _, g := range r.st.grades {
		if g.StudentID == studentID && g.Subject == subject {
			grades = append(grades, g)
		}
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades, nil
}

func (r *gradeRepo) Delete(_ context.Context, subject models.Subject, id int64) (bool, error) {
	g, ok := r.st.grades[id]
	if !ok || g.Subject != subject {
		return false, nil
	}
	delete(r.st.grades, id)
	return true, nil
}

func (r *gradeRepo) DeleteByStudentID(_ context.Context, studentID int64) (int64, error) {
	var n int64
	for id, g := range r.st.grades {
		if g.StudentID == studentID {
			delete(r.st.grades, id)
			n++
		}
	}
	return n, nil
}
