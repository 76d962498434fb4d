package api

// Baby is one entry of the event's baby list. Sex is one of "girl", "boy",
// "surprise" or "undisclosed"; empty means undisclosed.
type Baby struct {
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

// Event is the shower being planned. Date is YYYY-MM-DD, or empty while undecided.
type Event struct {
	Babies     []Baby `json:"babies"`
	Date       string `json:"date"`
	Title      string `json:"title"`
	Twins      bool   `json:"twins"`
	Configured bool   `json:"configured"`
}

type EventResponse struct {
	Event *Event `json:"event"`
}

type SetupEventRequest struct {
	Babies []Baby `json:"babies"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Twins  bool   `json:"twins"`
}

type Dashboard struct {
	Title        string  `json:"title"`
	GuestCount   int     `json:"guestCount"`
	TotalTasks   int     `json:"totalTasks"`
	PendingTasks int     `json:"pendingTasks"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Progress     float64 `json:"progress"`
	HasDate      bool    `json:"hasDate"`
	DaysUntil    int     `json:"daysUntil"`
}

type DashboardResponse struct {
	Dashboard *Dashboard `json:"dashboard"`
}

// IndexRequest addresses one entry of a list by its position.
type IndexRequest struct {
	Index int `json:"index"`
}

type GuestsResponse struct {
	Guests []string `json:"guests"`
}

type AddGuestRequest struct {
	Name string `json:"name"`
}

type RemoveGuestRequest struct {
	Name string `json:"name"`
}

type Task struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type ChecklistResponse struct {
	Tasks   []Task `json:"tasks"`
	Pending int    `json:"pending"`
}

type AddTaskRequest struct {
	Name string `json:"name"`
}

type SetTaskDoneRequest struct {
	Index int  `json:"index"`
	Done  bool `json:"done"`
}

type BudgetResponse struct {
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Progress  float64 `json:"progress"`
}

type SetBudgetRequest struct {
	Budget float64 `json:"budget"`
}

// Expense payment methods are "pix", "credit_card", "cash" and "other".
type Expense struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type ExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
	Total    float64   `json:"total"`
}

type AddExpenseRequest struct {
	Expense *Expense `json:"expense"`
}

type Gift struct {
	Guest        string `json:"guest"`
	Description  string `json:"description"`
	ThankYouSent bool   `json:"thankYouSent"`
}

type GiftsResponse struct {
	Gifts []Gift `json:"gifts"`
}

type AddGiftRequest struct {
	Guest       string `json:"guest"`
	Description string `json:"description"`
}

type SetGiftThankedRequest struct {
	Index int  `json:"index"`
	Sent  bool `json:"sent"`
}

type Suggestion struct {
	Item    string `json:"item"`
	Details string `json:"details"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type AddSuggestionRequest struct {
	Suggestion *Suggestion `json:"suggestion"`
}

type Game struct {
	Name  string `json:"name"`
	Rules string `json:"rules"`
}

type GamesResponse struct {
	Games []Game `json:"games"`
}

type AddGameRequest struct {
	Game *Game `json:"game"`
}

// ResetAllRequest must carry Confirm=true; the reset cannot be undone.
type ResetAllRequest struct {
	Confirm bool `json:"confirm"`
}
