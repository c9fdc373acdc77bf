package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/gymtrack/internal/history"
	"github.com/meltforce/gymtrack/internal/models"
)

// parseDay parses a YYYY-MM-DD date in the local time zone. Sessions are
// matched by the calendar day they started on.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func categoryNames() []string {
	names := []string{string(models.CategoryAll)}
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return names
}

// --- Tool definitions ---

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("Query completed training sessions, newest first. Each session includes its exercise entries with weight/reps/sets or cardio minutes."),
	mcp.WithString("search", mcp.Description("Filter to sessions containing an exercise whose name matches (case-insensitive substring, e.g. 'bench')")),
	mcp.WithString("category", mcp.Description("Filter to sessions containing an exercise in this category"), mcp.Enum(categoryNames()...)),
	mcp.WithString("on", mcp.Description("Filter to sessions started on this calendar day (YYYY-MM-DD, local time)")),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Retrieve one completed session by ID, including all exercise entries."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session ID")),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List the workout catalog: built-in exercises followed by custom ones. Supports name search and category filter."),
	mcp.WithString("search", mcp.Description("Case-insensitive substring match on workout name")),
	mcp.WithString("category", mcp.Description("Filter by category ('All' returns everything)"), mcp.Enum(categoryNames()...)),
)

var toolGetStats = mcp.NewTool("get_stats",
	mcp.WithDescription("Aggregate training statistics: session/exercise/set counts, total strength volume, total cardio minutes, average session duration, and most-performed exercise."),
)

var toolGetChartSeries = mcp.NewTool("get_chart_series",
	mcp.WithDescription("Per-session chart series over the most recent sessions, newest first. 'volume' is strength volume (weight * reps * sets) per session; 'cardio' is cardio minutes per session."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Which series to return"), mcp.Enum("volume", "cardio")),
)

// --- Tool handlers ---

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := history.Filter{
		Search:   req.GetString("search", ""),
		Category: req.GetString("category", ""),
	}
	if on := req.GetString("on", ""); on != "" {
		day, err := parseDay(on)
		if err != nil {
			return mcp.NewToolResultError("invalid date format, want YYYY-MM-DD: " + err.Error()), nil
		}
		f.On = &day
	}

	sessions := h.ds.History(f)

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	sess, ok := h.ds.SessionByID(id)
	if !ok {
		return mcp.NewToolResultError("no session with id " + id), nil
	}

	result, err := mcp.NewToolResultJSON(sess)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts := h.ds.Workouts(req.GetString("search", ""), req.GetString("category", ""))

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.ds.Stats())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getChartSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}

	var points any
	switch kind {
	case "volume":
		points = h.ds.VolumeSeries()
	case "cardio":
		points = h.ds.CardioSeries()
	default:
		return mcp.NewToolResultError("kind must be 'volume' or 'cardio'"), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
