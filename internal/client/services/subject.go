package services

import (
	"context"
	"fmt"

	"github.com/xshsama/learntrack/internal/client/models"
)

// SubjectService manages study subjects.
type SubjectService struct {
	caller Caller
}

func NewSubjectService(caller Caller) *SubjectService {
	return &SubjectService{caller: caller}
}

func (s *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.caller.Get(ctx, "/api/subjects", &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *SubjectService) Get(ctx context.Context, id int64) (*models.Subject, error) {
	var subject models.Subject
	if err := s.caller.Get(ctx, fmt.Sprintf("/api/subjects/%d", id), &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Create(ctx context.Context, title, description string) (*models.Subject, error) {
	req := map[string]string{"title": title, "description": description}
	var subject models.Subject
	if err := s.caller.Post(ctx, "/api/subjects", req, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Update(ctx context.Context, subject *models.Subject) error {
	return s.caller.Put(ctx, fmt.Sprintf("/api/subjects/%d", subject.ID), subject, nil)
}

func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	return s.caller.Delete(ctx, fmt.Sprintf("/api/subjects/%d", id))
}
