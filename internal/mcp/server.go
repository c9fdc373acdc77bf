package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/gymtrack/internal/app"
	"github.com/meltforce/gymtrack/internal/history"
	"github.com/meltforce/gymtrack/internal/models"
	"github.com/meltforce/gymtrack/internal/stats"
)

// DataSource is the slice of app functionality the MCP surface reads from.
type DataSource interface {
	Workouts(search, category string) []models.WorkoutDefinition
	History(f history.Filter) []models.Session
	SessionByID(id string) (models.Session, bool)
	Stats() stats.Summary
	VolumeSeries() []stats.SeriesPoint
	CardioSeries() []stats.SeriesPoint
}

var _ DataSource = (*app.App)(nil)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Gymtrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Gymtrack workout journal. Query past training sessions, the workout catalog, and aggregate statistics. All data is local to this machine."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListSessions, Handler: h.listSessions},
		server.ServerTool{Tool: toolGetSession, Handler: h.getSession},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetStats, Handler: h.getStats},
		server.ServerTool{Tool: toolGetChartSeries, Handler: h.getChartSeries},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resStatsSummary, Handler: h.statsSummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resStatsSummary = mcp.NewResource(
	"gymtrack://stats_summary",
	"Stats Summary",
	mcp.WithResourceDescription("Aggregate training statistics plus volume and cardio chart series over recent sessions"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) statsSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary := map[string]any{
		"stats":        h.ds.Stats(),
		"volumeSeries": h.ds.VolumeSeries(),
		"cardioSeries": h.ds.CardioSeries(),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
