package http

import (
	"time"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/generated/servers"
)

func toUser(u account.User) servers.User {
	return servers.User{Id: u.ID, Name: u.Name, Email: u.Email, RoleId: u.RoleID}
}

func toDriver(d *driver.Driver) *servers.Driver {
	if d == nil {
		return nil
	}
	return &servers.Driver{Id: d.ID(), Name: d.Name()}
}

func toDrivers(drivers []*driver.Driver) []servers.Driver {
	response := make([]servers.Driver, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, *toDriver(d))
	}
	return response
}

func toOrder(o *order.Order) *servers.Order {
	if o == nil {
		return nil
	}

	response := &servers.Order{
		Id:              o.ID(),
		OrderNumber:     o.Number(),
		Status:          o.Status().String(),
		Customer:        servers.Customer{Name: o.Customer().Name, Email: o.Customer().Email},
		Driver:          toDriver(o.Driver()),
		OrderDetails:    make([]servers.LineItem, 0, len(o.Details())),
		Quantity:        o.Quantity(),
		Total:           o.Total(),
		PaymentMethod:   o.PaymentMethod(),
		CreatedAt:       timeOrNil(o.CreatedAt()),
		UpdatedAt:       timeOrNil(o.UpdatedAt()),
		AllowedStatuses: statusStrings(o.AdminChoices()),
		CanAssignDriver: o.CanAssignDriver(),
	}
	if addr := o.Address(); addr != nil {
		response.Address = &servers.Address{Id: addr.ID, Address: addr.Line}
	}
	for _, item := range o.Details() {
		response.OrderDetails = append(response.OrderDetails, servers.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal(),
		})
	}
	return response
}

func toOrderView(v queries.OrderView) *servers.Order {
	response := toOrder(v.Order)
	response.AllowedStatuses = statusStrings(v.AllowedStatuses)
	response.CanAssignDriver = v.CanAssignDriver
	response.StatusBusy = v.StatusBusy
	response.DriverBusy = v.DriverBusy
	return response
}

func toTicket(t *commands.Ticket) servers.Ticket {
	response := servers.Ticket{FlightId: t.FlightID().Bytes(), Order: toOrder(t.Applied())}
	select {
	case <-t.Done():
		response.Settled = true
	default:
		// The applied order is still waiting on the backend.
		response.Order.CanAssignDriver = false
	}
	return response
}

func toDetail(d state.Detail) servers.Detail {
	response := servers.Detail{OrderId: d.OrderID, State: d.State.String(), Order: toOrder(d.Order)}
	if d.Err != nil {
		response.Error = stringOrNil(d.Err.Error())
	}
	return response
}

func toNotices(notices []state.Notice) []servers.Notice {
	response := make([]servers.Notice, 0, len(notices))
	for _, n := range notices {
		notice := servers.Notice{
			Id:    n.ID.Bytes(),
			Level: string(n.Level),
			Text:  n.Text,
			At:    n.At,
		}
		if n.OrderID != 0 {
			orderID := n.OrderID
			notice.OrderId = &orderID
		}
		response = append(response, notice)
	}
	return response
}

func toJournalEntry(e queries.GetJournalQueryResponse) servers.JournalEntry {
	return servers.JournalEntry{
		Id:         e.ID.Bytes(),
		FlightId:   e.FlightID.Bytes(),
		OrderId:    e.OrderID,
		Action:     e.Action,
		FromStatus: stringOrNil(e.FromStatus),
		ToStatus:   stringOrNil(e.ToStatus),
		DriverId:   e.DriverID,
		Outcome:    e.Outcome,
		Error:      stringOrNil(e.Error),
		RecordedAt: e.RecordedAt,
	}
}

func toJournal(entries []queries.GetJournalQueryResponse) []servers.JournalEntry {
	response := make([]servers.JournalEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, toJournalEntry(e))
	}
	return response
}

func statusStrings(statuses []order.Status) []string {
	response := make([]string, 0, len(statuses))
	for _, s := range statuses {
		response = append(response, s.String())
	}
	return response
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
