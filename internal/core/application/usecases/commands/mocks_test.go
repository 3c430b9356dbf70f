package commands_test

import (
	"context"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInNewStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMasterRepository struct{ mock.Mock }

func (m *MockMasterRepository) Add(ctx context.Context, a *master.Master) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMasterRepository) Update(ctx context.Context, a *master.Master) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*master.Master), args.Error(1)
}

func (m *MockMasterRepository) GetAll(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*master.Master), args.Error(1)
}

func (m *MockMasterRepository) GetAllAvailable(ctx context.Context) ([]*master.Master, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*master.Master), args.Error(1)
}

func (m *MockMasterRepository) CountActiveOrders(ctx context.Context, id kernel.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) Add(ctx context.Context, e *order.Evidence) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEvidenceRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.Evidence, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Evidence), args.Error(1)
}

// MockUoW implements every unit of work interface used by the command
// handlers; individual tests only register expectations for the repositories
// the handler under test touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MasterRepository() ports.MasterRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterRepository)
}

func (m *MockUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockEvidenceUoWFactory struct{ mock.Mock }

func (m *MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	args := m.Called()
	return args.Get(0).(commands.EvidenceUoW)
}
