package inmemdb

import (
	"context"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core/classroom"
)

type classroomRepository struct {
	db *DB
}

var _ classroom.Repository = (*classroomRepository)(nil)

func NewClassroomRepository(db *DB) *classroomRepository {
	return &classroomRepository{db: db}
}

func (repo classroomRepository) CreateAssignment(_ context.Context, a classroom.Assignment) (classroom.Assignment, error) {
	return repo.db.assignments.Create(a)
}

func (repo classroomRepository) GetAssignment(_ context.Context, id string) (classroom.Assignment, error) {
	return repo.db.assignments.Get(id)
}

func (repo classroomRepository) QueryAssignments(context.Context) ([]classroom.Assignment, error) {
	return repo.db.assignments.List(), nil
}

func (repo classroomRepository) DeleteAssignment(_ context.Context, id string) error {
	return repo.db.assignments.Delete(id)
}

func (repo classroomRepository) CreateRequest(_ context.Context, r classroom.StudentRequest) (classroom.StudentRequest, error) {
	return repo.db.requests.Create(r)
}

func (repo classroomRepository) QueryRequests(context.Context) ([]classroom.StudentRequest, error) {
	return repo.db.requests.List(), nil
}

func (repo classroomRepository) UpdateRequest(_ context.Context, id string, fn func(*classroom.StudentRequest) error) (classroom.StudentRequest, error) {
	return repo.db.requests.Update(id, fn)
}
