package commands_test

import (
	"errors"
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignHandler(factory commands.AssignmentUoWFactory) commands.AssignMasterCommandHandler {
	return commands.NewAssignMasterCommandHandler(factory, services.NewMasterSelector())
}

func TestAssignMasterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	orderLocation := kernel.NewGeoPoint(55.7558, 37.6173)
	testOrder, _ := order.NewOrder(orderID, "Faucet repair", nil, nil, orderLocation)

	nearID := kernel.NewUUID()
	near, _ := master.NewMaster(nearID, "Near", 4.0, true, kernel.NewGeoPoint(55.7600, 37.6200))
	far, _ := master.NewMaster(kernel.NewUUID(), "Far", 5.0, true, kernel.NewGeoPoint(59.9311, 30.3609))
	masters := []*master.Master{far, near}

	orderRepo := new(MockOrderRepository)
	masterRepo := new(MockMasterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("MasterRepository").Return(masterRepo).Once(),
		masterRepo.On("GetAllAvailable", ctx).Return(masters, nil).Once(),
		masterRepo.On("CountActiveOrders", ctx, far.ID()).Return(0, nil).Once(),
		masterRepo.On("CountActiveOrders", ctx, near.ID()).Return(3, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	require.NotNil(t, testOrder.Master())
	assert.True(t, testOrder.Master().IsEqual(nearID)) // nearest wins regardless of rating/load
	orderRepo.AssertExpectations(t)
	masterRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignMasterCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignMasterCommand{} // not constructed properly

	factory := new(MockAssignmentUoWFactory)
	handler := newAssignHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignMasterCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignMasterCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignMasterCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	existingMasterID := kernel.NewUUID()
	testOrder, _ := order.NewOrder(orderID, "Faucet repair", nil, nil, kernel.NewGeoPoint(1, 2))
	require.NoError(t, testOrder.Assign(existingMasterID))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrMasterAlreadyAssigned)
	assert.True(t, testOrder.Master().IsEqual(existingMasterID)) // assignment unchanged
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignMasterCommandHandler_Handle_NoAvailableMasters(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Faucet repair", nil, nil, kernel.NewGeoPoint(1, 2))

	orderRepo := new(MockOrderRepository)
	masterRepo := new(MockMasterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("MasterRepository").Return(masterRepo).Once(),
		masterRepo.On("GetAllAvailable", ctx).Return([]*master.Master{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableMasters)
	assert.Equal(t, order.New, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignMasterCommandHandler_Handle_CountActiveOrdersError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Faucet repair", nil, nil, kernel.NewGeoPoint(1, 2))
	m, _ := master.NewMaster(kernel.NewUUID(), "Alice", 4.0, true, kernel.NewGeoPoint(1, 2))

	orderRepo := new(MockOrderRepository)
	masterRepo := new(MockMasterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("MasterRepository").Return(masterRepo).Once(),
		masterRepo.On("GetAllAvailable", ctx).Return([]*master.Master{m}, nil).Once(),
		masterRepo.On("CountActiveOrders", ctx, m.ID()).Return(0, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}

func TestAssignMasterCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignMasterCommand(orderID)
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Faucet repair", nil, nil, kernel.NewGeoPoint(1, 2))
	m, _ := master.NewMaster(kernel.NewUUID(), "Alice", 4.0, true, kernel.NewGeoPoint(1, 2))

	orderRepo := new(MockOrderRepository)
	masterRepo := new(MockMasterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("MasterRepository").Return(masterRepo).Once(),
		masterRepo.On("GetAllAvailable", ctx).Return([]*master.Master{m}, nil).Once(),
		masterRepo.On("CountActiveOrders", ctx, m.ID()).Return(0, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
}
