package commands_test

import (
	"errors"
	"testing"
	"time"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusFixture struct {
	store   *state.OrderStore
	gateway *MockOrderGateway
	flights *state.FlightRegistry
	notices *state.NoticeBoard
	journal *MockJournalRepository
	handler *commands.ChangeOrderStatusCommandHandler
}

func newStatusFixture(t *testing.T, orders ...*order.Order) *statusFixture {
	t.Helper()
	f := &statusFixture{
		store:   newStore(t, orders...),
		gateway: new(MockOrderGateway),
		flights: state.NewFlightRegistry(time.Second),
		notices: state.NewNoticeBoard(0),
		journal: new(MockJournalRepository),
	}
	f.journal.On("Add", mock.Anything, mock.AnythingOfType("journal.Entry")).Return(nil).Maybe()
	f.handler = commands.NewChangeOrderStatusCommandHandler(
		f.store, f.gateway, f.flights, f.notices, f.journal, discardLogger(),
	)
	return f
}

func mustStatusCommand(t *testing.T, id kernel.ID, status order.Status) commands.ChangeOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	require.NoError(t, err)
	return cmd
}

func TestChangeOrderStatusCommandHandler_PendingReachesOnlyAdminChoices(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Accepted, order.Declined,
		order.Assigning, order.Delivering, order.Completed,
	}

	for _, next := range all {
		t.Run(next.String(), func(t *testing.T) {
			f := newStatusFixture(t, newOrder(t, 7, order.Pending))
			f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), next).Return(next, nil).Maybe()

			ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, next))

			if next == order.Accepted || next == order.Declined {
				require.NoError(t, err)
				_, err = waitTicket(t, ticket)
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
			assert.Nil(t, ticket)
			assert.Equal(t, order.Pending, getOrder(t, f.store, 7).Status())
			f.gateway.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestChangeOrderStatusCommandHandler_NonPendingOffersNothing(t *testing.T) {
	for _, current := range []order.Status{order.Accepted, order.Declined, order.Assigning, order.Delivering, order.Completed} {
		t.Run(current.String(), func(t *testing.T) {
			f := newStatusFixture(t, newOrder(t, 7, current))

			_, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Declined))

			require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
			assert.Equal(t, current, getOrder(t, f.store, 7).Status())
		})
	}
}

func TestChangeOrderStatusCommandHandler_FailureRollsBack(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	g := newGate()
	backendErr := errors.New("500 internal server error")
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Run(g.run).
		Return(order.Unknown, backendErr).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	g.waitStarted(t)

	assert.Equal(t, order.Accepted, getOrder(t, f.store, 7).Status())
	assert.Equal(t, order.Accepted, ticket.Applied().Status())
	assert.True(t, f.flights.Busy(7))

	close(g.release)
	settled, err := waitTicket(t, ticket)

	require.ErrorIs(t, err, backendErr)
	assert.Equal(t, order.Pending, settled.Status())
	assert.Equal(t, order.Pending, getOrder(t, f.store, 7).Status())
	assert.False(t, f.flights.Busy(7))

	notices := f.notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, state.NoticeError, notices[0].Level)
	assert.Equal(t, kernel.ID(7), notices[0].OrderID)
}

// newDispatchConsole wires both order controllers over one store, the way the
// console runs them.
func newDispatchConsole(t *testing.T, drivers []*driver.Driver, orders ...*order.Order) (
	*statusFixture, *commands.AssignDriverCommandHandler, queries.GetOrderQueryHandler,
) {
	t.Helper()
	f := newStatusFixture(t, orders...)

	driverGateway := new(MockDriverGateway)
	driverGateway.On("ListDrivers", mock.Anything).Return(drivers, nil).Once()
	directory := state.NewDriverDirectory(driverGateway)
	require.NoError(t, directory.Load(t.Context()))

	driverFlights := state.NewFlightRegistry(time.Second)
	assign := commands.NewAssignDriverCommandHandler(
		f.store, directory, f.gateway, driverFlights, f.flights, f.notices, f.journal,
		commands.KeepOnFailure, discardLogger(),
	)
	return f, assign, queries.NewGetOrderQueryHandler(f.store, f.flights, driverFlights)
}

func viewOrder(t *testing.T, handler queries.GetOrderQueryHandler, id kernel.ID) queries.OrderView {
	t.Helper()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	view, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	return view
}

func TestChangeOrderStatusCommandHandler_AssignmentWaitsForAccept(t *testing.T) {
	sam := newDriver(t, 3, "Sam")
	f, assign, orders := newDispatchConsole(t, []*driver.Driver{sam}, newOrder(t, 7, order.Pending))
	g := newGate()
	backendErr := errors.New("boom")
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Run(g.run).
		Return(order.Unknown, backendErr).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	g.waitStarted(t)

	view := viewOrder(t, orders, 7)
	assert.Equal(t, order.Accepted, view.Order.Status())
	assert.True(t, view.StatusBusy)
	assert.False(t, view.CanAssignDriver)

	_, err = assign.Handle(t.Context(), mustAssignCommand(t, 7, 3))
	require.ErrorIs(t, err, order.ErrAssignmentNotAllowed)

	close(g.release)
	settled, err := waitTicket(t, ticket)
	require.ErrorIs(t, err, backendErr)

	assert.Equal(t, order.Pending, settled.Status())
	assert.Nil(t, settled.Driver())
	view = viewOrder(t, orders, 7)
	assert.Equal(t, order.Pending, view.Order.Status())
	assert.False(t, view.StatusBusy)
	assert.False(t, view.CanAssignDriver)
	f.gateway.AssertNotCalled(t, "AssignDriver", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_AssignmentAfterConfirmedAccept(t *testing.T) {
	sam := newDriver(t, 3, "Sam")
	f, assign, orders := newDispatchConsole(t, []*driver.Driver{sam}, newOrder(t, 7, order.Pending))
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).Return(order.Accepted, nil).Once()
	f.gateway.On("AssignDriver", mock.Anything, kernel.ID(7), kernel.ID(3)).Return(sam, nil).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	_, err = waitTicket(t, ticket)
	require.NoError(t, err)
	assert.True(t, viewOrder(t, orders, 7).CanAssignDriver)

	assigned, err := assign.Handle(t.Context(), mustAssignCommand(t, 7, 3))
	require.NoError(t, err)
	settled, err := waitTicket(t, assigned)
	require.NoError(t, err)

	assert.Equal(t, order.Assigning, settled.Status())
	assert.Equal(t, kernel.ID(3), settled.Driver().ID())
	assert.False(t, viewOrder(t, orders, 7).CanAssignDriver)
}

func TestChangeOrderStatusCommandHandler_RollbackDropsDriverRestoredStatusForbids(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	g := newGate()
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Run(g.run).
		Return(order.Unknown, errors.New("boom")).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	g.waitStarted(t)

	_, err = f.store.Patch(7, order.NewPatch().WithStatus(order.Assigning).WithDriver(newDriver(t, 3, "Sam")))
	require.NoError(t, err)
	close(g.release)

	settled, err := waitTicket(t, ticket)
	require.Error(t, err)
	assert.Equal(t, order.Pending, settled.Status())
	assert.Nil(t, settled.Driver())
}

func TestChangeOrderStatusCommandHandler_SuccessTakesBackendStatus(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Return(order.Declined, nil).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)

	settled, err := waitTicket(t, ticket)
	require.NoError(t, err)
	assert.Equal(t, order.Declined, settled.Status())
	assert.Equal(t, order.Declined, getOrder(t, f.store, 7).Status())

	notices := f.notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, state.NoticeSuccess, notices[0].Level)
}

func TestChangeOrderStatusCommandHandler_DeclineScenario(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Declined).
		Return(order.Declined, nil).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Declined))
	require.NoError(t, err)
	_, err = waitTicket(t, ticket)
	require.NoError(t, err)

	final := getOrder(t, f.store, 7)
	assert.Equal(t, kernel.ID(7), final.ID())
	assert.Equal(t, order.Declined, final.Status())
	assert.Nil(t, final.Driver())
	f.gateway.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_SupersededRequestIsDiscarded(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	g := newGate()

	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Run(g.run).
		Return(order.Accepted, nil).Once()
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Declined).
		Return(order.Declined, nil).Once()

	first, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	g.waitStarted(t)

	// a reload brings the order back to pending while the first request is outstanding
	require.NoError(t, f.store.Replace([]*order.Order{newOrder(t, 7, order.Pending)}))

	second, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Declined))
	require.NoError(t, err)
	_, err = waitTicket(t, second)
	require.NoError(t, err)

	close(g.release)
	_, err = waitTicket(t, first)
	require.ErrorIs(t, err, state.ErrSuperseded)

	assert.Equal(t, order.Declined, getOrder(t, f.store, 7).Status())
	f.journal.AssertCalled(t, "Add", mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return e.Outcome == journal.OutcomeSuperseded && e.ToStatus == order.Accepted
	}))
}

func TestChangeOrderStatusCommandHandler_RecordsJournal(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))
	f.gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).
		Return(order.Accepted, nil).Once()

	ticket, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	_, err = waitTicket(t, ticket)
	require.NoError(t, err)

	f.journal.AssertCalled(t, "Add", mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return e.OrderID == 7 &&
			e.Action == journal.ActionStatusChange &&
			e.FromStatus == order.Pending &&
			e.ToStatus == order.Accepted &&
			e.Outcome == journal.OutcomeConfirmed &&
			e.FlightID == ticket.FlightID()
	}))
}

func TestChangeOrderStatusCommandHandler_JournalFailureIsNotSurfaced(t *testing.T) {
	store := newStore(t, newOrder(t, 7, order.Pending))
	gateway := new(MockOrderGateway)
	repo := new(MockJournalRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).Return(order.Accepted, nil).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(
		store, gateway, state.NewFlightRegistry(time.Second), state.NewNoticeBoard(0), repo, discardLogger(),
	)

	ticket, err := handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	_, err = waitTicket(t, ticket)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_WithoutJournal(t *testing.T) {
	store := newStore(t, newOrder(t, 7, order.Pending))
	gateway := new(MockOrderGateway)
	gateway.On("ChangeStatus", mock.Anything, kernel.ID(7), order.Accepted).Return(order.Accepted, nil).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(
		store, gateway, state.NewFlightRegistry(time.Second), state.NewNoticeBoard(0), nil, discardLogger(),
	)

	ticket, err := handler.Handle(t.Context(), mustStatusCommand(t, 7, order.Accepted))
	require.NoError(t, err)
	_, err = waitTicket(t, ticket)
	require.NoError(t, err)
}

func TestChangeOrderStatusCommandHandler_OrderNotInStore(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))

	_, err := f.handler.Handle(t.Context(), mustStatusCommand(t, 8, order.Accepted))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, f.flights.Busy(8))
}

func TestChangeOrderStatusCommandHandler_InvalidCommand(t *testing.T) {
	f := newStatusFixture(t, newOrder(t, 7, order.Pending))

	_, err := f.handler.Handle(t.Context(), commands.ChangeOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	f.gateway.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything, mock.Anything)
}
