package agent

import (
	"context"
	"fmt"

	"github.com/finboard/finboard"
	"github.com/finboard/finboard/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// SnapshotFunc provides the current snapshot to the analyst's tools.
type SnapshotFunc func() (*finboard.Snapshot, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: where the money goes,
			whether budgets hold, what bills are coming, how his savings goals and investments are doing.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.

			The user will assume that you already know his transactions and budgets, check the dashboard first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounding answers in web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of financial products, banks, subscription services and market news.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance products and markets. You can search and find
			anything related to banks, cards, subscription services, rates and investment products.
			You leverage Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst creates the expert reading the user's dashboard data.
func NewAnalyst(snapshot SnapshotFunc) *Expert {
	lib := []Function{
		dashboardFunc(snapshot),
		searchFunc(snapshot),
		budgetsFunc(snapshot),
		billsFunc(snapshot),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read access to the user's transactions, budgets,
		bills, savings goals and investments, and can compute the relevant figures about them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's personal finance data.
				You know how to use the Tools to extract relevant information:
				  - the dashboard summary
				  - transaction search
				  - budget usage
				  - upcoming bills
				You are part of a team of experts; yours is everything in the user's own data.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func dashboardFunc(snapshot SnapshotFunc) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard returns the summary of the user's finances on a given day:
			balance, monthly income and expenses, savings rate, budget usage, investments and upcoming bills.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The date of the summary in YYYY-MM-DD format. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard summary.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "Dashboard", err)
			}
			snap, err := snapshot()
			if err != nil {
				return errResponse(id, "Dashboard", err)
			}
			s := finboard.NewSummary(snap, on, snap.Currency())
			return okResponse(id, "Dashboard", renderer.Summary(renderer.NewFormatter("en"), s))
		},
	}
}

func searchFunc(snapshot SnapshotFunc) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SearchTransactions",
			Description: `SearchTransactions lists the user's transactions whose description or
			category contains the given text, case-insensitive. An empty query lists everything.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "Text to search in the description or category name.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of matching transactions, most recent first.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			query, _ := args["query"].(string)
			snap, err := snapshot()
			if err != nil {
				return errResponse(id, "SearchTransactions", err)
			}
			records := finboard.Filter{Query: query}.Apply(snap.All())
			md := renderer.Transactions(renderer.NewFormatter("en"), finboard.Today(), records, snap.Len())
			return okResponse(id, "SearchTransactions", md)
		},
	}
}

func budgetsFunc(snapshot SnapshotFunc) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budgets",
			Description: `Budgets lists every budget category with its limit, the amount spent
			and its status: on-track, near-limit or over-budget.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of budget categories and their usage.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			snap, err := snapshot()
			if err != nil {
				return errResponse(id, "Budgets", err)
			}
			md := renderer.Budgets(renderer.NewFormatter("en"), finboard.Today(), snap.Budgets())
			return okResponse(id, "Budgets", md)
		},
	}
}

func billsFunc(snapshot SnapshotFunc) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "UpcomingBills",
			Description: `UpcomingBills lists the user's bills with the days until their due date
			and the total due in the next 30 days.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The reference date in YYYY-MM-DD format. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of bills with due-date context.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "UpcomingBills", err)
			}
			snap, err := snapshot()
			if err != nil {
				return errResponse(id, "UpcomingBills", err)
			}
			md := renderer.Bills(renderer.NewFormatter("en"), on, snap.Bills(), snap.Currency())
			return okResponse(id, "UpcomingBills", md)
		},
	}
}

func parseDate(args map[string]any) (finboard.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return finboard.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return finboard.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := finboard.ParseDate(sdate)
	if err != nil {
		return finboard.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return date, nil
}
