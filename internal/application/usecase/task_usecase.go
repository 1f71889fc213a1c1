package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/rbac"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/idgen"
)

// TaskUseCase gestiona tareas operativas (picking, packing, conteos...).
type TaskUseCase struct {
	repo     repository.TaskRepository
	userRepo repository.UserRepository
	codes    ports.CodeGenerator
	now      func() time.Time
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, userRepo repository.UserRepository, codes ports.CodeGenerator) *TaskUseCase {
	return &TaskUseCase{repo: repo, userRepo: userRepo, codes: codes, now: time.Now}
}

// Create crea una tarea pendiente; si trae asignado, el usuario debe existir y estar activo.
func (uc *TaskUseCase) Create(ctx context.Context, creatorID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.AssignedTo != nil {
		if err := uc.checkAssignee(ctx, *in.AssignedTo); err != nil {
			return nil, err
		}
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityNormal
	}
	now := uc.now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Code:        uc.codes.Code(idgen.PrefixTask),
		Type:        in.Type,
		Status:      entity.TaskStatusPending,
		Priority:    priority,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   creatorID,
		DueAt:       in.DueAt.Ptr(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update edita prioridad, descripción o fecha límite de una tarea abierta.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTaskClosed(task) {
		return nil, domain.ErrConflict
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueAt != nil {
		task.DueAt = in.DueAt.Ptr()
	}
	task.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Assign asigna una tarea abierta a un usuario activo.
func (uc *TaskUseCase) Assign(ctx context.Context, id string, in dto.AssignTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTaskClosed(task) {
		return nil, domain.ErrConflict
	}
	if err := uc.checkAssignee(ctx, in.UserID); err != nil {
		return nil, err
	}
	userID := in.UserID
	task.AssignedTo = &userID
	task.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateStatus cambia el estado. Solo el asignado o un supervisor pueden hacerlo;
// las tareas completadas o canceladas no cambian más.
func (uc *TaskUseCase) UpdateStatus(ctx context.Context, actorID string, caps rbac.Capabilities, id string, in dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	isAssignee := task.AssignedTo != nil && *task.AssignedTo == actorID
	if !isAssignee && !caps.Has(rbac.CapSupervisor) {
		return nil, domain.ErrForbidden
	}
	if isTaskClosed(task) {
		return nil, domain.ErrConflict
	}
	now := uc.now()
	task.Status = in.Status
	if in.Status == entity.TaskStatusCompleted {
		task.CompletedAt = &now
	}
	task.UpdatedAt = now
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List lista tareas con filtros de estado, tipo y asignado.
func (uc *TaskUseCase) List(ctx context.Context, status, taskType, assignedTo string, page dto.PageRequest) (*dto.ListResponse[dto.TaskResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, repository.TaskFilter{
		Status:     status,
		Type:       taskType,
		AssignedTo: assignedTo,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewList(mapList(list, toTaskResponse), page), nil
}

// Mine lista las tareas asignadas al usuario.
func (uc *TaskUseCase) Mine(ctx context.Context, userID, status string, page dto.PageRequest) (*dto.ListResponse[dto.TaskResponse], error) {
	return uc.List(ctx, status, "", userID, page)
}

// Delete elimina una tarea.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TaskUseCase) get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (uc *TaskUseCase) checkAssignee(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.IsActive() {
		return domain.ErrConflict
	}
	return nil
}

func isTaskClosed(t *entity.Task) bool {
	return t.Status == entity.TaskStatusCompleted || t.Status == entity.TaskStatusCancelled
}
