// Package interviews is the shared interview experience vault.
package interviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("company and role are required")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Share stores a new experience. An empty contributor name is recorded as
// Anonymous.
func (s *Service) Share(ctx context.Context, exp Experience) (Experience, error) {
	exp.Company = strings.TrimSpace(exp.Company)
	exp.Role = strings.TrimSpace(exp.Role)
	if exp.Company == "" || exp.Role == "" {
		return Experience{}, ErrMissingFields
	}
	if strings.TrimSpace(exp.User) == "" {
		exp.User = "Anonymous"
	}

	now := time.Now().UTC()
	exp.ID = uuid.NewString()
	exp.CreatedAt = now
	exp.Date = now.Format("2006-01-02")

	if err := s.Repo.Add(ctx, exp); err != nil {
		return Experience{}, err
	}
	return exp, nil
}

// List returns all experiences, newest first.
func (s *Service) List(ctx context.Context) ([]Experience, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Experience{}
	}
	return list, nil
}
