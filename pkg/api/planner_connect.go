package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
)

// PlannerServiceName is the fully-qualified name of the PlannerService service.
const PlannerServiceName = "showerplanner.v1.PlannerService"

// PlannerService procedure paths.
const (
	PlannerServiceGetEventProcedure         = "/showerplanner.v1.PlannerService/GetEvent"
	PlannerServiceSetupEventProcedure       = "/showerplanner.v1.PlannerService/SetupEvent"
	PlannerServiceGetDashboardProcedure     = "/showerplanner.v1.PlannerService/GetDashboard"
	PlannerServiceListGuestsProcedure       = "/showerplanner.v1.PlannerService/ListGuests"
	PlannerServiceAddGuestProcedure         = "/showerplanner.v1.PlannerService/AddGuest"
	PlannerServiceRemoveGuestProcedure      = "/showerplanner.v1.PlannerService/RemoveGuest"
	PlannerServiceGetChecklistProcedure     = "/showerplanner.v1.PlannerService/GetChecklist"
	PlannerServiceAddTaskProcedure          = "/showerplanner.v1.PlannerService/AddTask"
	PlannerServiceSetTaskDoneProcedure      = "/showerplanner.v1.PlannerService/SetTaskDone"
	PlannerServiceRemoveTaskProcedure       = "/showerplanner.v1.PlannerService/RemoveTask"
	PlannerServiceGetBudgetProcedure        = "/showerplanner.v1.PlannerService/GetBudget"
	PlannerServiceSetBudgetProcedure        = "/showerplanner.v1.PlannerService/SetBudget"
	PlannerServiceListExpensesProcedure     = "/showerplanner.v1.PlannerService/ListExpenses"
	PlannerServiceAddExpenseProcedure       = "/showerplanner.v1.PlannerService/AddExpense"
	PlannerServiceRemoveExpenseProcedure    = "/showerplanner.v1.PlannerService/RemoveExpense"
	PlannerServiceListGiftsProcedure        = "/showerplanner.v1.PlannerService/ListGifts"
	PlannerServiceAddGiftProcedure          = "/showerplanner.v1.PlannerService/AddGift"
	PlannerServiceSetGiftThankedProcedure   = "/showerplanner.v1.PlannerService/SetGiftThanked"
	PlannerServiceRemoveGiftProcedure       = "/showerplanner.v1.PlannerService/RemoveGift"
	PlannerServiceListSuggestionsProcedure  = "/showerplanner.v1.PlannerService/ListSuggestions"
	PlannerServiceAddSuggestionProcedure    = "/showerplanner.v1.PlannerService/AddSuggestion"
	PlannerServiceRemoveSuggestionProcedure = "/showerplanner.v1.PlannerService/RemoveSuggestion"
	PlannerServiceListGamesProcedure        = "/showerplanner.v1.PlannerService/ListGames"
	PlannerServiceAddGameProcedure          = "/showerplanner.v1.PlannerService/AddGame"
	PlannerServiceRemoveGameProcedure       = "/showerplanner.v1.PlannerService/RemoveGame"
	PlannerServiceResetAllProcedure         = "/showerplanner.v1.PlannerService/ResetAll"
)

// PlannerServiceHandler is implemented by the planner service. Every call
// acts on the signed-in user's data.
type PlannerServiceHandler interface {
	GetEvent(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[EventResponse], error)
	SetupEvent(context.Context, *connect.Request[SetupEventRequest]) (*connect.Response[EventResponse], error)
	GetDashboard(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[DashboardResponse], error)
	ListGuests(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GuestsResponse], error)
	AddGuest(context.Context, *connect.Request[AddGuestRequest]) (*connect.Response[GuestsResponse], error)
	RemoveGuest(context.Context, *connect.Request[RemoveGuestRequest]) (*connect.Response[GuestsResponse], error)
	GetChecklist(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ChecklistResponse], error)
	AddTask(context.Context, *connect.Request[AddTaskRequest]) (*connect.Response[ChecklistResponse], error)
	SetTaskDone(context.Context, *connect.Request[SetTaskDoneRequest]) (*connect.Response[ChecklistResponse], error)
	RemoveTask(context.Context, *connect.Request[IndexRequest]) (*connect.Response[ChecklistResponse], error)
	GetBudget(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[BudgetResponse], error)
	SetBudget(context.Context, *connect.Request[SetBudgetRequest]) (*connect.Response[BudgetResponse], error)
	ListExpenses(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[ExpensesResponse], error)
	RemoveExpense(context.Context, *connect.Request[IndexRequest]) (*connect.Response[ExpensesResponse], error)
	ListGifts(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GiftsResponse], error)
	AddGift(context.Context, *connect.Request[AddGiftRequest]) (*connect.Response[GiftsResponse], error)
	SetGiftThanked(context.Context, *connect.Request[SetGiftThankedRequest]) (*connect.Response[GiftsResponse], error)
	RemoveGift(context.Context, *connect.Request[IndexRequest]) (*connect.Response[GiftsResponse], error)
	ListSuggestions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[SuggestionsResponse], error)
	AddSuggestion(context.Context, *connect.Request[AddSuggestionRequest]) (*connect.Response[SuggestionsResponse], error)
	RemoveSuggestion(context.Context, *connect.Request[IndexRequest]) (*connect.Response[SuggestionsResponse], error)
	ListGames(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GamesResponse], error)
	AddGame(context.Context, *connect.Request[AddGameRequest]) (*connect.Response[GamesResponse], error)
	RemoveGame(context.Context, *connect.Request[IndexRequest]) (*connect.Response[GamesResponse], error)
	ResetAll(context.Context, *connect.Request[ResetAllRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewPlannerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPlannerServiceHandler(svc PlannerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(PlannerServiceName, map[string]http.Handler{
		PlannerServiceGetEventProcedure:         connect.NewUnaryHandler(PlannerServiceGetEventProcedure, svc.GetEvent, opts...),
		PlannerServiceSetupEventProcedure:       connect.NewUnaryHandler(PlannerServiceSetupEventProcedure, svc.SetupEvent, opts...),
		PlannerServiceGetDashboardProcedure:     connect.NewUnaryHandler(PlannerServiceGetDashboardProcedure, svc.GetDashboard, opts...),
		PlannerServiceListGuestsProcedure:       connect.NewUnaryHandler(PlannerServiceListGuestsProcedure, svc.ListGuests, opts...),
		PlannerServiceAddGuestProcedure:         connect.NewUnaryHandler(PlannerServiceAddGuestProcedure, svc.AddGuest, opts...),
		PlannerServiceRemoveGuestProcedure:      connect.NewUnaryHandler(PlannerServiceRemoveGuestProcedure, svc.RemoveGuest, opts...),
		PlannerServiceGetChecklistProcedure:     connect.NewUnaryHandler(PlannerServiceGetChecklistProcedure, svc.GetChecklist, opts...),
		PlannerServiceAddTaskProcedure:          connect.NewUnaryHandler(PlannerServiceAddTaskProcedure, svc.AddTask, opts...),
		PlannerServiceSetTaskDoneProcedure:      connect.NewUnaryHandler(PlannerServiceSetTaskDoneProcedure, svc.SetTaskDone, opts...),
		PlannerServiceRemoveTaskProcedure:       connect.NewUnaryHandler(PlannerServiceRemoveTaskProcedure, svc.RemoveTask, opts...),
		PlannerServiceGetBudgetProcedure:        connect.NewUnaryHandler(PlannerServiceGetBudgetProcedure, svc.GetBudget, opts...),
		PlannerServiceSetBudgetProcedure:        connect.NewUnaryHandler(PlannerServiceSetBudgetProcedure, svc.SetBudget, opts...),
		PlannerServiceListExpensesProcedure:     connect.NewUnaryHandler(PlannerServiceListExpensesProcedure, svc.ListExpenses, opts...),
		PlannerServiceAddExpenseProcedure:       connect.NewUnaryHandler(PlannerServiceAddExpenseProcedure, svc.AddExpense, opts...),
		PlannerServiceRemoveExpenseProcedure:    connect.NewUnaryHandler(PlannerServiceRemoveExpenseProcedure, svc.RemoveExpense, opts...),
		PlannerServiceListGiftsProcedure:        connect.NewUnaryHandler(PlannerServiceListGiftsProcedure, svc.ListGifts, opts...),
		PlannerServiceAddGiftProcedure:          connect.NewUnaryHandler(PlannerServiceAddGiftProcedure, svc.AddGift, opts...),
		PlannerServiceSetGiftThankedProcedure:   connect.NewUnaryHandler(PlannerServiceSetGiftThankedProcedure, svc.SetGiftThanked, opts...),
		PlannerServiceRemoveGiftProcedure:       connect.NewUnaryHandler(PlannerServiceRemoveGiftProcedure, svc.RemoveGift, opts...),
		PlannerServiceListSuggestionsProcedure:  connect.NewUnaryHandler(PlannerServiceListSuggestionsProcedure, svc.ListSuggestions, opts...),
		PlannerServiceAddSuggestionProcedure:    connect.NewUnaryHandler(PlannerServiceAddSuggestionProcedure, svc.AddSuggestion, opts...),
		PlannerServiceRemoveSuggestionProcedure: connect.NewUnaryHandler(PlannerServiceRemoveSuggestionProcedure, svc.RemoveSuggestion, opts...),
		PlannerServiceListGamesProcedure:        connect.NewUnaryHandler(PlannerServiceListGamesProcedure, svc.ListGames, opts...),
		PlannerServiceAddGameProcedure:          connect.NewUnaryHandler(PlannerServiceAddGameProcedure, svc.AddGame, opts...),
		PlannerServiceRemoveGameProcedure:       connect.NewUnaryHandler(PlannerServiceRemoveGameProcedure, svc.RemoveGame, opts...),
		PlannerServiceResetAllProcedure:         connect.NewUnaryHandler(PlannerServiceResetAllProcedure, svc.ResetAll, opts...),
	})
}

// PlannerServiceClient is a client for the PlannerService service.
type PlannerServiceClient interface {
	GetEvent(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[EventResponse], error)
	SetupEvent(context.Context, *connect.Request[SetupEventRequest]) (*connect.Response[EventResponse], error)
	GetDashboard(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[DashboardResponse], error)
	ListGuests(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GuestsResponse], error)
	AddGuest(context.Context, *connect.Request[AddGuestRequest]) (*connect.Response[GuestsResponse], error)
	RemoveGuest(context.Context, *connect.Request[RemoveGuestRequest]) (*connect.Response[GuestsResponse], error)
	GetChecklist(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ChecklistResponse], error)
	AddTask(context.Context, *connect.Request[AddTaskRequest]) (*connect.Response[ChecklistResponse], error)
	SetTaskDone(context.Context, *connect.Request[SetTaskDoneRequest]) (*connect.Response[ChecklistResponse], error)
	RemoveTask(context.Context, *connect.Request[IndexRequest]) (*connect.Response[ChecklistResponse], error)
	GetBudget(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[BudgetResponse], error)
	SetBudget(context.Context, *connect.Request[SetBudgetRequest]) (*connect.Response[BudgetResponse], error)
	ListExpenses(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[ExpensesResponse], error)
	RemoveExpense(context.Context, *connect.Request[IndexRequest]) (*connect.Response[ExpensesResponse], error)
	ListGifts(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GiftsResponse], error)
	AddGift(context.Context, *connect.Request[AddGiftRequest]) (*connect.Response[GiftsResponse], error)
	SetGiftThanked(context.Context, *connect.Request[SetGiftThankedRequest]) (*connect.Response[GiftsResponse], error)
	RemoveGift(context.Context, *connect.Request[IndexRequest]) (*connect.Response[GiftsResponse], error)
	ListSuggestions(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[SuggestionsResponse], error)
	AddSuggestion(context.Context, *connect.Request[AddSuggestionRequest]) (*connect.Response[SuggestionsResponse], error)
	RemoveSuggestion(context.Context, *connect.Request[IndexRequest]) (*connect.Response[SuggestionsResponse], error)
	ListGames(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[GamesResponse], error)
	AddGame(context.Context, *connect.Request[AddGameRequest]) (*connect.Response[GamesResponse], error)
	RemoveGame(context.Context, *connect.Request[IndexRequest]) (*connect.Response[GamesResponse], error)
	ResetAll(context.Context, *connect.Request[ResetAllRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewPlannerServiceClient constructs a client for the PlannerService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewPlannerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PlannerServiceClient {
	opts = clientOptions(opts)
	return &plannerServiceClient{
		getEvent:         connect.NewClient[emptypb.Empty, EventResponse](httpClient, baseURL+PlannerServiceGetEventProcedure, opts...),
		setupEvent:       connect.NewClient[SetupEventRequest, EventResponse](httpClient, baseURL+PlannerServiceSetupEventProcedure, opts...),
		getDashboard:     connect.NewClient[emptypb.Empty, DashboardResponse](httpClient, baseURL+PlannerServiceGetDashboardProcedure, opts...),
		listGuests:       connect.NewClient[emptypb.Empty, GuestsResponse](httpClient, baseURL+PlannerServiceListGuestsProcedure, opts...),
		addGuest:         connect.NewClient[AddGuestRequest, GuestsResponse](httpClient, baseURL+PlannerServiceAddGuestProcedure, opts...),
		removeGuest:      connect.NewClient[RemoveGuestRequest, GuestsResponse](httpClient, baseURL+PlannerServiceRemoveGuestProcedure, opts...),
		getChecklist:     connect.NewClient[emptypb.Empty, ChecklistResponse](httpClient, baseURL+PlannerServiceGetChecklistProcedure, opts...),
		addTask:          connect.NewClient[AddTaskRequest, ChecklistResponse](httpClient, baseURL+PlannerServiceAddTaskProcedure, opts...),
		setTaskDone:      connect.NewClient[SetTaskDoneRequest, ChecklistResponse](httpClient, baseURL+PlannerServiceSetTaskDoneProcedure, opts...),
		removeTask:       connect.NewClient[IndexRequest, ChecklistResponse](httpClient, baseURL+PlannerServiceRemoveTaskProcedure, opts...),
		getBudget:        connect.NewClient[emptypb.Empty, BudgetResponse](httpClient, baseURL+PlannerServiceGetBudgetProcedure, opts...),
		setBudget:        connect.NewClient[SetBudgetRequest, BudgetResponse](httpClient, baseURL+PlannerServiceSetBudgetProcedure, opts...),
		listExpenses:     connect.NewClient[emptypb.Empty, ExpensesResponse](httpClient, baseURL+PlannerServiceListExpensesProcedure, opts...),
		addExpense:       connect.NewClient[AddExpenseRequest, ExpensesResponse](httpClient, baseURL+PlannerServiceAddExpenseProcedure, opts...),
		removeExpense:    connect.NewClient[IndexRequest, ExpensesResponse](httpClient, baseURL+PlannerServiceRemoveExpenseProcedure, opts...),
		listGifts:        connect.NewClient[emptypb.Empty, GiftsResponse](httpClient, baseURL+PlannerServiceListGiftsProcedure, opts...),
		addGift:          connect.NewClient[AddGiftRequest, GiftsResponse](httpClient, baseURL+PlannerServiceAddGiftProcedure, opts...),
		setGiftThanked:   connect.NewClient[SetGiftThankedRequest, GiftsResponse](httpClient, baseURL+PlannerServiceSetGiftThankedProcedure, opts...),
		removeGift:       connect.NewClient[IndexRequest, GiftsResponse](httpClient, baseURL+PlannerServiceRemoveGiftProcedure, opts...),
		listSuggestions:  connect.NewClient[emptypb.Empty, SuggestionsResponse](httpClient, baseURL+PlannerServiceListSuggestionsProcedure, opts...),
		addSuggestion:    connect.NewClient[AddSuggestionRequest, SuggestionsResponse](httpClient, baseURL+PlannerServiceAddSuggestionProcedure, opts...),
		removeSuggestion: connect.NewClient[IndexRequest, SuggestionsResponse](httpClient, baseURL+PlannerServiceRemoveSuggestionProcedure, opts...),
		listGames:        connect.NewClient[emptypb.Empty, GamesResponse](httpClient, baseURL+PlannerServiceListGamesProcedure, opts...),
		addGame:          connect.NewClient[AddGameRequest, GamesResponse](httpClient, baseURL+PlannerServiceAddGameProcedure, opts...),
		removeGame:       connect.NewClient[IndexRequest, GamesResponse](httpClient, baseURL+PlannerServiceRemoveGameProcedure, opts...),
		resetAll:         connect.NewClient[ResetAllRequest, emptypb.Empty](httpClient, baseURL+PlannerServiceResetAllProcedure, opts...),
	}
}

type plannerServiceClient struct {
	getEvent         *connect.Client[emptypb.Empty, EventResponse]
	setupEvent       *connect.Client[SetupEventRequest, EventResponse]
	getDashboard     *connect.Client[emptypb.Empty, DashboardResponse]
	listGuests       *connect.Client[emptypb.Empty, GuestsResponse]
	addGuest         *connect.Client[AddGuestRequest, GuestsResponse]
	removeGuest      *connect.Client[RemoveGuestRequest, GuestsResponse]
	getChecklist     *connect.Client[emptypb.Empty, ChecklistResponse]
	addTask          *connect.Client[AddTaskRequest, ChecklistResponse]
	setTaskDone      *connect.Client[SetTaskDoneRequest, ChecklistResponse]
	removeTask       *connect.Client[IndexRequest, ChecklistResponse]
	getBudget        *connect.Client[emptypb.Empty, BudgetResponse]
	setBudget        *connect.Client[SetBudgetRequest, BudgetResponse]
	listExpenses     *connect.Client[emptypb.Empty, ExpensesResponse]
	addExpense       *connect.Client[AddExpenseRequest, ExpensesResponse]
	removeExpense    *connect.Client[IndexRequest, ExpensesResponse]
	listGifts        *connect.Client[emptypb.Empty, GiftsResponse]
	addGift          *connect.Client[AddGiftRequest, GiftsResponse]
	setGiftThanked   *connect.Client[SetGiftThankedRequest, GiftsResponse]
	removeGift       *connect.Client[IndexRequest, GiftsResponse]
	listSuggestions  *connect.Client[emptypb.Empty, SuggestionsResponse]
	addSuggestion    *connect.Client[AddSuggestionRequest, SuggestionsResponse]
	removeSuggestion *connect.Client[IndexRequest, SuggestionsResponse]
	listGames        *connect.Client[emptypb.Empty, GamesResponse]
	addGame          *connect.Client[AddGameRequest, GamesResponse]
	removeGame       *connect.Client[IndexRequest, GamesResponse]
	resetAll         *connect.Client[ResetAllRequest, emptypb.Empty]
}

func (c *plannerServiceClient) GetEvent(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[EventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *plannerServiceClient) SetupEvent(ctx context.Context, req *connect.Request[SetupEventRequest]) (*connect.Response[EventResponse], error) {
	return c.setupEvent.CallUnary(ctx, req)
}

func (c *plannerServiceClient) GetDashboard(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[DashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ListGuests(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[GuestsResponse], error) {
	return c.listGuests.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddGuest(ctx context.Context, req *connect.Request[AddGuestRequest]) (*connect.Response[GuestsResponse], error) {
	return c.addGuest.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveGuest(ctx context.Context, req *connect.Request[RemoveGuestRequest]) (*connect.Response[GuestsResponse], error) {
	return c.removeGuest.CallUnary(ctx, req)
}

func (c *plannerServiceClient) GetChecklist(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ChecklistResponse], error) {
	return c.getChecklist.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddTask(ctx context.Context, req *connect.Request[AddTaskRequest]) (*connect.Response[ChecklistResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *plannerServiceClient) SetTaskDone(ctx context.Context, req *connect.Request[SetTaskDoneRequest]) (*connect.Response[ChecklistResponse], error) {
	return c.setTaskDone.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveTask(ctx context.Context, req *connect.Request[IndexRequest]) (*connect.Response[ChecklistResponse], error) {
	return c.removeTask.CallUnary(ctx, req)
}

func (c *plannerServiceClient) GetBudget(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[BudgetResponse], error) {
	return c.getBudget.CallUnary(ctx, req)
}

func (c *plannerServiceClient) SetBudget(ctx context.Context, req *connect.Request[SetBudgetRequest]) (*connect.Response[BudgetResponse], error) {
	return c.setBudget.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[ExpensesResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveExpense(ctx context.Context, req *connect.Request[IndexRequest]) (*connect.Response[ExpensesResponse], error) {
	return c.removeExpense.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ListGifts(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[GiftsResponse], error) {
	return c.listGifts.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddGift(ctx context.Context, req *connect.Request[AddGiftRequest]) (*connect.Response[GiftsResponse], error) {
	return c.addGift.CallUnary(ctx, req)
}

func (c *plannerServiceClient) SetGiftThanked(ctx context.Context, req *connect.Request[SetGiftThankedRequest]) (*connect.Response[GiftsResponse], error) {
	return c.setGiftThanked.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveGift(ctx context.Context, req *connect.Request[IndexRequest]) (*connect.Response[GiftsResponse], error) {
	return c.removeGift.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ListSuggestions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[SuggestionsResponse], error) {
	return c.listSuggestions.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddSuggestion(ctx context.Context, req *connect.Request[AddSuggestionRequest]) (*connect.Response[SuggestionsResponse], error) {
	return c.addSuggestion.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveSuggestion(ctx context.Context, req *connect.Request[IndexRequest]) (*connect.Response[SuggestionsResponse], error) {
	return c.removeSuggestion.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ListGames(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[GamesResponse], error) {
	return c.listGames.CallUnary(ctx, req)
}

func (c *plannerServiceClient) AddGame(ctx context.Context, req *connect.Request[AddGameRequest]) (*connect.Response[GamesResponse], error) {
	return c.addGame.CallUnary(ctx, req)
}

func (c *plannerServiceClient) RemoveGame(ctx context.Context, req *connect.Request[IndexRequest]) (*connect.Response[GamesResponse], error) {
	return c.removeGame.CallUnary(ctx, req)
}

func (c *plannerServiceClient) ResetAll(ctx context.Context, req *connect.Request[ResetAllRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.resetAll.CallUnary(ctx, req)
}
