package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acarvalho/pausas/internal/db"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/acarvalho/pausas/internal/repository"
	"github.com/google/uuid"
)

type workspaceService struct {
	workspaces repository.WorkspaceRepo
	meta       repository.MetaRepo
	uow        db.UnitOfWork
}

func NewWorkspaceService(workspaces repository.WorkspaceRepo, meta repository.MetaRepo, uow db.UnitOfWork) WorkspaceService {
	return &workspaceService{workspaces: workspaces, meta: meta, uow: uow}
}

func (s *workspaceService) Open(ctx context.Context, name string) (*domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("workspace name is required")
	}

	key := domain.WorkspaceKey(name)
	ws, err := s.workspaces.GetByKey(ctx, key)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ws = &domain.Workspace{ID: uuid.New().String(), Name: name, Key: key}
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := repository.NewSQLiteWorkspaceRepo(tx).Create(ctx, ws); err != nil {
				return err
			}
			settings := domain.DefaultSettings()
			return repository.NewSQLiteSettingsRepo(tx).Save(ctx, ws.ID, &settings)
		})
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if err := s.meta.Set(ctx, repository.MetaCurrentWorkspace, ws.ID); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *workspaceService) Current(ctx context.Context) (*domain.Workspace, error) {
	id, err := s.meta.Get(ctx, repository.MetaCurrentWorkspace)
	if err != nil {
		return nil, err
	}
	return s.workspaces.GetByID(ctx, id)
}

func (s *workspaceService) List(ctx context.Context) ([]*domain.Workspace, error) {
	return s.workspaces.List(ctx)
}

func (s *workspaceService) ClearData(ctx context.Context, workspaceID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEmployeeRepo(tx).DeleteByWorkspace(ctx, workspaceID); err != nil {
			return err
		}
		return repository.NewSQLiteRecordRepo(tx).DeleteByWorkspace(ctx, workspaceID)
	})
}
