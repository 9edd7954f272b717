package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
)

const deploymentsKey = "deployments"

// DeploymentRepository хранит развертывания и назначенные на них
// подразделения в Redis-хэшах
type DeploymentRepository struct {
	rdb *redis.Client
}

func NewDeploymentRepository(rdb *redis.Client) service.DeploymentRepository {
	return &DeploymentRepository{rdb: rdb}
}

func deploymentUnitsKey(deploymentID string) string {
	return "deployment:units:" + deploymentID
}

// Create записывает новое развертывание
func (r *DeploymentRepository) Create(ctx context.Context, deployment *models.Deployment) error {
	return r.write(ctx, deployment)
}

// Update перезаписывает существующее развертывание
func (r *DeploymentRepository) Update(ctx context.Context, deployment *models.Deployment) error {
	exists, err := r.rdb.HExists(ctx, deploymentsKey, deployment.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check deployment: %w", err)
	}
	if !exists {
		return fmt.Errorf("deployment with id %s not found for update", deployment.ID)
	}
	return r.write(ctx, deployment)
}

func (r *DeploymentRepository) write(ctx context.Context, deployment *models.Deployment) error {
	data, err := json.Marshal(deployment)
	if err != nil {
		return fmt.Errorf("failed to marshal deployment: %w", err)
	}

	if err := r.rdb.HSet(ctx, deploymentsKey, deployment.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to store deployment: %w", err)
	}
	return nil
}

// Get возвращает развертывание по id
func (r *DeploymentRepository) Get(ctx context.Context, id string) (*models.Deployment, error) {
	data, err := r.rdb.HGet(ctx, deploymentsKey, id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("deployment with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}

	deployment := &models.Deployment{}
	if err := json.Unmarshal([]byte(data), deployment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deployment %s: %w", id, err)
	}
	deployment.ID = id
	return deployment, nil
}

// List возвращает все развертывания, битые записи пропускаются
func (r *DeploymentRepository) List(ctx context.Context) ([]*models.Deployment, error) {
	entries, err := r.rdb.HGetAll(ctx, deploymentsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	deployments := make([]*models.Deployment, 0, len(entries))
	for id, data := range entries {
		deployment := &models.Deployment{}
		if err := json.Unmarshal([]byte(data), deployment); err != nil {
			continue
		}
		deployment.ID = id
		deployments = append(deployments, deployment)
	}
	return deployments, nil
}

// AssignUnit записывает назначение подразделения на развертывание
func (r *DeploymentRepository) AssignUnit(ctx context.Context, assignment *models.DeploymentUnit) error {
	data, err := json.Marshal(assignment)
	if err != nil {
		return fmt.Errorf("failed to marshal deployment unit: %w", err)
	}

	if err := r.rdb.HSet(ctx, deploymentUnitsKey(assignment.DeploymentID), assignment.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to assign deployment unit: %w", err)
	}
	return nil
}

// ListUnits возвращает подразделения, назначенные на развертывание
func (r *DeploymentRepository) ListUnits(ctx context.Context, deploymentID string) ([]*models.DeploymentUnit, error) {
	entries, err := r.rdb.HGetAll(ctx, deploymentUnitsKey(deploymentID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list deployment units: %w", err)
	}

	units := make([]*models.DeploymentUnit, 0, len(entries))
	for id, data := range entries {
		unit := &models.DeploymentUnit{}
		if err := json.Unmarshal([]byte(data), unit); err != nil {
			continue
		}
		unit.ID = id
		units = append(units, unit)
	}
	return units, nil
}
