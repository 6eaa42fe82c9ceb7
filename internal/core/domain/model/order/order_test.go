package order_test

import (
	"testing"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline = baseTime.Add(time.Hour)
)

func validDetails(t *testing.T) order.Details {
	t.Helper()
	item, err := order.NewItem("water bottles", 2)
	require.NoError(t, err)

	return order.Details{
		CustomerName:  "Cafe Corner",
		Location:      "Main Street 5",
		MapLink:       "https://maps.example.com/x",
		DeliveryTime:  deadline,
		ReceiverName:  "Sami",
		ReceiverPhone: "0500000000",
		Note:          "leave at the door",
		Items:         []order.Item{item},
	}
}

func newOrder(t *testing.T, owner string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), owner, validDetails(t), baseTime)
	require.NoError(t, err)
	return o
}

func principal(t *testing.T, email string, role account.Role) account.Principal {
	t.Helper()
	p, err := account.NewPrincipal(email, role)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_new_status", func(t *testing.T) {
		o := newOrder(t, "manager@example.com")

		assert.Equal(t, order.StatusNew, o.Status())
		assert.Nil(t, o.DeliveryPerson())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.EndedAt())
		assert.False(t, o.IsDeleted())
		assert.Equal(t, "manager@example.com", o.UserEmail())
	})

	t.Run("missing_required_fields_rejected", func(t *testing.T) {
		details := validDetails(t)
		details.CustomerName = ""
		details.MapLink = ""

		_, err := order.NewOrder(kernel.NewUUID(), "manager@example.com", details, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_delivery_time_rejected", func(t *testing.T) {
		details := validDetails(t)
		details.DeliveryTime = time.Time{}

		_, err := order.NewOrder(kernel.NewUUID(), "manager@example.com", details, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	courierB := principal(t, "b@example.com", account.RoleMurasel)
	courierC := principal(t, "c@example.com", account.RoleMurasel)
	admin := principal(t, "admin@example.com", account.RoleAdmin)
	manager := principal(t, "manager@example.com", account.RoleManager)

	t.Run("courier_first_acceptance", func(t *testing.T) {
		o := newOrder(t, manager.Email())

		require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, baseTime))

		assert.Equal(t, order.StatusInProgress, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.Equal(t, "b@example.com", *o.DeliveryPerson())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, baseTime, *o.StartedAt())
		assert.Nil(t, o.EndedAt())
	})

	t.Run("second_courier_gets_conflict", func(t *testing.T) {
		o := newOrder(t, manager.Email())
		require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, baseTime))

		err := o.TransitionTo(courierC, order.StatusInProgress, baseTime)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "b@example.com", *o.DeliveryPerson())
	})

	t.Run("reconfirmation_by_assigned_courier_keeps_startedAt", func(t *testing.T) {
		o := newOrder(t, manager.Email())
		require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, baseTime))
		first := *o.StartedAt()

		later := baseTime.Add(10 * time.Minute)
		require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, later))

		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, first, *o.StartedAt())
		assert.Equal(t, "b@example.com", *o.DeliveryPerson())
	})

	t.Run("admin_may_accept", func(t *testing.T) {
		o := newOrder(t, manager.Email())

		require.NoError(t, o.TransitionTo(admin, order.StatusInProgress, baseTime))

		assert.Equal(t, order.StatusInProgress, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.Equal(t, admin.Email(), *o.DeliveryPerson())
	})

	t.Run("manager_may_not_accept", func(t *testing.T) {
		o := newOrder(t, manager.Email())

		err := o.TransitionTo(manager, order.StatusInProgress, baseTime)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.StatusNew, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	courierB := principal(t, "b@example.com", account.RoleMurasel)
	courierC := principal(t, "c@example.com", account.RoleMurasel)
	admin := principal(t, "admin@example.com", account.RoleAdmin)

	accepted := func(t *testing.T) *order.Order {
		t.Helper()
		o := newOrder(t, "manager@example.com")
		require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, baseTime))
		return o
	}

	t.Run("on_time_completion_is_delivered", func(t *testing.T) {
		o := accepted(t)
		onTime := deadline.Add(-time.Minute)

		require.NoError(t, o.TransitionTo(courierB, order.StatusDelivered, onTime))

		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.EndedAt())
		assert.Equal(t, onTime, *o.EndedAt())
	})

	t.Run("late_completion_is_delivered_late", func(t *testing.T) {
		o := accepted(t)
		late := deadline.Add(time.Minute)

		// the stored variant is derived from the clock even when the caller
		// asks for plain delivered
		require.NoError(t, o.TransitionTo(courierB, order.StatusDelivered, late))

		assert.Equal(t, order.StatusDeliveredLate, o.Status())
	})

	t.Run("not_received", func(t *testing.T) {
		o := accepted(t)

		require.NoError(t, o.TransitionTo(courierB, order.StatusNotReceived, baseTime))

		assert.Equal(t, order.StatusNotReceived, o.Status())
		require.NotNil(t, o.EndedAt())
	})

	t.Run("unassigned_courier_forbidden", func(t *testing.T) {
		o := accepted(t)

		err := o.TransitionTo(courierC, order.StatusDelivered, baseTime)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("admin_may_complete", func(t *testing.T) {
		o := accepted(t)

		require.NoError(t, o.TransitionTo(admin, order.StatusDelivered, baseTime))
	})

	t.Run("terminal_states_are_final", func(t *testing.T) {
		o := accepted(t)
		require.NoError(t, o.TransitionTo(courierB, order.StatusDelivered, baseTime))

		err := o.TransitionTo(courierB, order.StatusInProgress, baseTime)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		err = o.TransitionTo(admin, order.StatusNotReceived, baseTime)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("completing_a_new_order_rejected", func(t *testing.T) {
		o := newOrder(t, "manager@example.com")

		err := o.TransitionTo(courierB, order.StatusDelivered, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Edit(t *testing.T) {
	owner := principal(t, "manager@example.com", account.RoleManager)
	otherManager := principal(t, "other@example.com", account.RoleManager)
	admin := principal(t, "admin@example.com", account.RoleAdmin)
	courier := principal(t, "b@example.com", account.RoleMurasel)

	t.Run("owner_edits_new_order", func(t *testing.T) {
		o := newOrder(t, owner.Email())
		details := validDetails(t)
		details.CustomerName = "Renamed"

		require.NoError(t, o.Edit(owner, details))
		assert.Equal(t, "Renamed", o.Details().CustomerName)
	})

	t.Run("admin_edits_any_new_order", func(t *testing.T) {
		o := newOrder(t, owner.Email())

		require.NoError(t, o.Edit(admin, validDetails(t)))
	})

	t.Run("non_owner_manager_forbidden", func(t *testing.T) {
		o := newOrder(t, owner.Email())

		require.ErrorIs(t, o.Edit(otherManager, validDetails(t)), errs.ErrForbidden)
	})

	t.Run("edit_after_acceptance_rejected", func(t *testing.T) {
		o := newOrder(t, owner.Email())
		require.NoError(t, o.TransitionTo(courier, order.StatusInProgress, baseTime))

		require.ErrorIs(t, o.Edit(owner, validDetails(t)), errs.ErrValueIsInvalid)
	})
}

func TestOrder_SetCourierNote(t *testing.T) {
	owner := principal(t, "manager@example.com", account.RoleManager)
	courierB := principal(t, "b@example.com", account.RoleMurasel)
	courierC := principal(t, "c@example.com", account.RoleMurasel)
	admin := principal(t, "admin@example.com", account.RoleAdmin)

	o := newOrder(t, owner.Email())
	require.NoError(t, o.TransitionTo(courierB, order.StatusInProgress, baseTime))

	require.NoError(t, o.SetCourierNote(courierB, "receiver asked to call first"))
	assert.Equal(t, "receiver asked to call first", o.CourierNote())

	require.NoError(t, o.SetCourierNote(admin, "override"))
	require.ErrorIs(t, o.SetCourierNote(courierC, "nope"), errs.ErrForbidden)
	require.ErrorIs(t, o.SetCourierNote(owner, "nope"), errs.ErrForbidden)
}

func TestOrder_MarkDeleted(t *testing.T) {
	owner := principal(t, "manager@example.com", account.RoleManager)
	otherManager := principal(t, "other@example.com", account.RoleManager)
	courier := principal(t, "b@example.com", account.RoleMurasel)
	admin := principal(t, "admin@example.com", account.RoleAdmin)

	t.Run("owner_soft_deletes", func(t *testing.T) {
		o := newOrder(t, owner.Email())

		require.NoError(t, o.MarkDeleted(owner))
		assert.True(t, o.IsDeleted())
	})

	t.Run("others_forbidden", func(t *testing.T) {
		o := newOrder(t, owner.Email())

		require.ErrorIs(t, o.MarkDeleted(otherManager), errs.ErrForbidden)
		require.ErrorIs(t, o.MarkDeleted(courier), errs.ErrForbidden)
		// admins hard-delete at the repository level instead
		require.ErrorIs(t, o.MarkDeleted(admin), errs.ErrForbidden)
	})
}

func TestOrder_VisibleTo(t *testing.T) {
	owner := principal(t, "manager@example.com", account.RoleManager)
	courier := principal(t, "b@example.com", account.RoleMurasel)
	admin := principal(t, "admin@example.com", account.RoleAdmin)

	o := newOrder(t, owner.Email())
	require.NoError(t, o.MarkDeleted(owner))

	assert.False(t, o.VisibleTo(owner))
	assert.False(t, o.VisibleTo(courier))
	assert.True(t, o.VisibleTo(admin))
}

func TestRestoreOrder_Invariants(t *testing.T) {
	email := "b@example.com"
	started := baseTime
	ended := baseTime.Add(time.Hour)

	t.Run("assigned_new_order_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID:             kernel.NewUUID(),
			UserEmail:      "manager@example.com",
			Details:        validDetails(t),
			Status:         order.StatusNew,
			DeliveryPerson: &email,
			CreatedAt:      baseTime,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unassigned_in_progress_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID:        kernel.NewUUID(),
			UserEmail: "manager@example.com",
			Details:   validDetails(t),
			Status:    order.StatusInProgress,
			CreatedAt: baseTime,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal_without_endedAt_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID:             kernel.NewUUID(),
			UserEmail:      "manager@example.com",
			Details:        validDetails(t),
			Status:         order.StatusDelivered,
			DeliveryPerson: &email,
			StartedAt:      &started,
			CreatedAt:      baseTime,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("consistent_snapshot_restores", func(t *testing.T) {
		o, err := order.RestoreOrder(order.Snapshot{
			ID:             kernel.NewUUID(),
			UserEmail:      "manager@example.com",
			Details:        validDetails(t),
			Status:         order.StatusDelivered,
			DeliveryPerson: &email,
			StartedAt:      &started,
			EndedAt:        &ended,
			CourierNote:    "left with neighbor",
			CreatedAt:      baseTime,
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, "left with neighbor", o.CourierNote())
	})
}
