package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// SubjectService handles the shared subject catalog. Subjects are global,
// so reads are open to every authenticated user while writes are admin-only
// at the route level.
type SubjectService struct {
	subjectRepo SubjectRepository
	logger      zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo SubjectRepository, logger zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		logger:      logger,
	}
}

// CreateSubject adds a subject to the catalog.
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if req.TheoryFull+req.PracticalFull != req.FullMarks {
		return nil, apperrors.NewBadRequestError("theoryFull and practicalFull must sum to fullMarks")
	}

	subject := &models.Subject{
		Name:          req.Name,
		Grade:         req.Grade,
		TheoryCode:    req.TheoryCode,
		InternalCode:  req.InternalCode,
		Credits:       req.Credits,
		FullMarks:     req.FullMarks,
		PassMarks:     req.PassMarks,
		TheoryFull:    req.TheoryFull,
		PracticalFull: req.PracticalFull,
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("subjectID", subject.ID).Str("name", subject.Name).Msg("Subject created")
	return subject, nil
}

// GetSubject retrieves a subject by ID.
func (s *SubjectService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// GetAllSubjects retrieves the catalog, optionally filtered by grade.
func (s *SubjectService) GetAllSubjects(ctx context.Context, grade int) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx, grade)
}

// UpdateSubject mutates a subject.
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	if req.TheoryFull+req.PracticalFull != req.FullMarks {
		return nil, apperrors.NewBadRequestError("theoryFull and practicalFull must sum to fullMarks")
	}

	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	subject.Grade = req.Grade
	subject.TheoryCode = req.TheoryCode
	subject.InternalCode = req.InternalCode
	subject.Credits = req.Credits
	subject.FullMarks = req.FullMarks
	subject.PassMarks = req.PassMarks
	subject.TheoryFull = req.TheoryFull
	subject.PracticalFull = req.PracticalFull

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// DeleteSubject removes a subject from the catalog. Subjects with
// recorded marks cannot be deleted.
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("subjectID", id).Msg("Subject deleted")
	return nil
}
