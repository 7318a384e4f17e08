package storagemock

import (
	"context"

	"github.com/chargeplan/chargeplan/pkg/storage"
	"github.com/chargeplan/chargeplan/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockDatabase struct {
	mock.Mock
}

var _ storage.Database = (*MockDatabase)(nil)

func (m *MockDatabase) GetProject(ctx context.Context, projectID string) (types.Project, int, error) {
	args := m.Called(ctx, projectID)
	if len(args) > 0 {
		return args.Get(0).(types.Project), args.Int(1), args.Error(2)
	}
	return types.Project{}, 0, nil
}

func (m *MockDatabase) ListProjects(ctx context.Context) ([]types.Project, error) {
	args := m.Called(ctx)
	if len(args) > 0 {
		return args.Get(0).([]types.Project), args.Error(1)
	}
	return nil, nil
}

func (m *MockDatabase) SetProject(ctx context.Context, projectID string, project types.Project, version int) error {
	args := m.Called(ctx, projectID, project, version)
	return args.Error(0)
}

func (m *MockDatabase) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockDatabase) GetUser(ctx context.Context, userID string) (types.User, error) {
	args := m.Called(ctx, userID)
	if len(args) > 0 {
		return args.Get(0).(types.User), args.Error(1)
	}
	return types.User{}, nil
}

func (m *MockDatabase) CreateUser(ctx context.Context, user types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockDatabase) UpdateUser(ctx context.Context, user types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockDatabase) Close() error {
	args := m.Called()
	return args.Error(0)
}
