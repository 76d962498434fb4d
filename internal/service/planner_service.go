package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/showerplanner/internal/codec"
	"github.com/mmynk/showerplanner/internal/middleware"
	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/storage"
	"github.com/mmynk/showerplanner/internal/summary"
	"github.com/mmynk/showerplanner/pkg/api"
)

// Ensure PlannerService implements api.PlannerServiceHandler
var _ api.PlannerServiceHandler = (*PlannerService)(nil)

// PlannerService implements the Connect PlannerService. Every RPC acts on
// the collections of the signed-in user; list mutations read the current
// value, change it and write the whole value back.
type PlannerService struct {
	store       storage.Store
	titleJoiner string
	now         func() time.Time
}

// NewPlannerService creates a PlannerService over the given store.
// titleJoiner joins twin names in the dashboard title; empty uses the default.
func NewPlannerService(store storage.Store, titleJoiner string) *PlannerService {
	return &PlannerService{
		store:       store,
		titleJoiner: titleJoiner,
		now:         time.Now,
	}
}

// caller returns the signed-in username.
func caller(ctx context.Context) (string, error) {
	username := middleware.GetUsername(ctx)
	if username == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errNotSignedIn)
	}
	return username, nil
}

// writer returns the signed-in username after checking the account still
// exists. Collection rows must never be written for unknown users.
func (s *PlannerService) writer(ctx context.Context) (string, error) {
	username, err := caller(ctx)
	if err != nil {
		return "", err
	}
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return "", storeError("load account", err)
	}
	if user == nil {
		return "", connect.NewError(connect.CodeFailedPrecondition, errAccountGone)
	}
	return username, nil
}

// GetEvent returns the user's event; an unconfigured event has no babies.
func (s *PlannerService) GetEvent(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.EventResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	event, err := s.store.GetEvent(ctx, username)
	if err != nil {
		slog.Error("GetEvent failed", "username", username, "error", err)
		return nil, storeError("load event", err)
	}

	return connect.NewResponse(&api.EventResponse{Event: toAPIEvent(event)}), nil
}

// SetupEvent configures (or reconfigures) the event.
func (s *PlannerService) SetupEvent(ctx context.Context, req *connect.Request[api.SetupEventRequest]) (*connect.Response[api.EventResponse], error) {
	slog.Info("SetupEvent request received",
		"babies_count", len(req.Msg.Babies),
		"twins", req.Msg.Twins,
		"date", req.Msg.Date,
	)

	event, err := eventFromRequest(req.Msg)
	if err != nil {
		return nil, err
	}

	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetEvent(ctx, username, event); err != nil {
		slog.Error("SetupEvent failed", "username", username, "error", err)
		return nil, storeError("save event", err)
	}

	slog.Info("Event configured", "username", username, "babies", event.BabyNames())
	return connect.NewResponse(&api.EventResponse{Event: toAPIEvent(event)}), nil
}

// eventFromRequest validates a setup form. At least one baby must be named;
// twins need exactly two names, otherwise exactly one is allowed.
func eventFromRequest(msg *api.SetupEventRequest) (models.Event, error) {
	var event models.Event

	want := 1
	if msg.Twins {
		want = models.MaxBabies
	}
	if len(msg.Babies) != want {
		return event, invalidArgument("expected %d baby names, got %d", want, len(msg.Babies))
	}

	for i, b := range msg.Babies {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return event, invalidArgument("baby %d needs a name", i+1)
		}
		sex := models.Sex(b.Sex)
		if sex == "" {
			sex = models.SexUndisclosed
		}
		if !sex.Valid() {
			return event, invalidArgument("unknown sex %q", b.Sex)
		}
		event.Babies = append(event.Babies, models.Baby{Name: name, Sex: sex})
	}

	if msg.Date != "" {
		date, err := time.Parse(codec.DateLayout, msg.Date)
		if err != nil {
			return event, invalidArgument("date must be YYYY-MM-DD, got %q", msg.Date)
		}
		event.Date = date
	}
	event.Title = strings.TrimSpace(msg.Title)
	event.Twins = msg.Twins
	return event, nil
}

// GetDashboard summarizes the user's planning. Requires a configured event.
func (s *PlannerService) GetDashboard(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.DashboardResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	event, err := s.store.GetEvent(ctx, username)
	if err != nil {
		return nil, storeError("load event", err)
	}
	if !event.Configured() {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errEventNotSetUp)
	}

	guests, err := s.store.GetGuests(ctx, username)
	if err != nil {
		return nil, storeError("load guests", err)
	}
	tasks, err := s.store.GetChecklist(ctx, username)
	if err != nil {
		return nil, storeError("load checklist", err)
	}
	budget, err := s.store.GetBudget(ctx, username)
	if err != nil {
		return nil, storeError("load budget", err)
	}
	expenses, err := s.store.GetExpenses(ctx, username)
	if err != nil {
		return nil, storeError("load expenses", err)
	}

	d := summary.Build(event, guests, tasks, budget, expenses, s.now(), s.titleJoiner)
	slog.Info("GetDashboard successful", "username", username, "guests", d.GuestCount, "pending_tasks", d.PendingTasks)
	return connect.NewResponse(&api.DashboardResponse{Dashboard: toAPIDashboard(d)}), nil
}

// ResetAll clears every collection of the user, keeping the account.
func (s *PlannerService) ResetAll(ctx context.Context, req *connect.Request[api.ResetAllRequest]) (*connect.Response[emptypb.Empty], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !req.Msg.Confirm {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errResetUnconfirmed)
	}

	slog.Warn("ResetAll request received", "username", username)
	if err := s.store.ResetAllDataForUser(ctx, username); err != nil {
		slog.Error("ResetAll failed", "username", username, "error", err)
		return nil, storeError("reset data", err)
	}

	slog.Info("User data reset", "username", username)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// removeAt returns a copy of items without entry i.
func removeAt[T any](items []T, i int) ([]T, error) {
	if err := checkIndex(len(items), i); err != nil {
		return nil, err
	}
	return slices.Delete(slices.Clone(items), i, i+1), nil
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return connect.NewError(connect.CodeOutOfRange, fmt.Errorf("index %d out of range [0, %d)", i, n))
	}
	return nil
}
